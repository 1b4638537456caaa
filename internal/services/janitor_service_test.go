package services

import (
	"Bagged/internal/config"
	"Bagged/internal/events"
	"Bagged/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJanitor(t *testing.T, schedule string) (*Janitor, func() (int64, int64), func(interface{}, uint)) {
	db, store := setupTestStore(t)
	cfg := &config.Configuration{Server: config.ServerConfig{CleanConfig: config.CleanConfig{
		Schedule:  schedule,
		Retention: time.Hour,
	}}}
	logService := NewDiscardLogService()
	janitor := NewJanitorService(
		NewCuboidService(store, events.NopPublisher{}, logService),
		NewBagService(store),
		logService,
		cfg,
	)

	bag := createBag(t, db, 3, 3, 3)
	createCuboid(t, db, bag.ID, 1, 1, 1)
	createCuboid(t, db, bag.ID, 1, 1, 1)
	createBag(t, db, 1, 1, 1)

	counts := func() (int64, int64) {
		var cuboids, bags int64
		db.Unscoped().Model(&models.Cuboid{}).Count(&cuboids)
		db.Unscoped().Model(&models.Bag{}).Count(&bags)
		return cuboids, bags
	}
	softDelete := func(model interface{}, id uint) {
		require.NoError(t, db.Delete(model, id).Error)
	}
	return janitor, counts, softDelete
}

func TestJanitor_StartCleanPurgesExpired(t *testing.T) {
	janitor, counts, softDelete := newTestJanitor(t, "@daily")
	softDelete(&models.Cuboid{}, 1)
	softDelete(&models.Bag{}, 2)

	// nothing has been deleted for longer than the retention yet
	assert.Zero(t, janitor.startClean(false))

	janitor.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	purged := janitor.startClean(true)

	assert.Equal(t, 2, purged)
	cuboids, bags := counts()
	assert.Equal(t, int64(1), cuboids)
	assert.Equal(t, int64(1), bags)
}

func TestJanitor_ForceStartCleanCycleWhileCleaning(t *testing.T) {
	janitor, _, _ := newTestJanitor(t, "@daily")
	require.True(t, janitor.tryStart())

	err := janitor.ForceStartCleanCycle()

	assert.EqualError(t, err, "cleaning is in progress")
	assert.True(t, janitor.IsCleaning())
	janitor.finish()
	assert.False(t, janitor.IsCleaning())
}

func TestJanitor_ForceStartCleanCycle(t *testing.T) {
	janitor, counts, softDelete := newTestJanitor(t, "@daily")
	softDelete(&models.Cuboid{}, 2)
	janitor.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	require.NoError(t, janitor.ForceStartCleanCycle())

	assert.Eventually(t, func() bool {
		cuboids, _ := counts()
		return cuboids == 1 && !janitor.IsCleaning()
	}, time.Second, 10*time.Millisecond)
}

func TestJanitor_StartCleanCycle(t *testing.T) {
	janitor, _, _ := newTestJanitor(t, "@every 1h")

	assert.NoError(t, janitor.StartCleanCycle())
	assert.Len(t, janitor.cron.Entries(), 1)
	janitor.StopClean()
}

func TestJanitor_StartCleanCycle_InvalidSchedule(t *testing.T) {
	janitor, _, _ := newTestJanitor(t, "not a schedule")

	assert.Error(t, janitor.StartCleanCycle())
}
