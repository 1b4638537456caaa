package services

import (
	"Bagged/internal/events"
	"Bagged/internal/models"
	"Bagged/internal/repository"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(event events.Event) error {
	args := m.Called(event.Type)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	return nil
}

func setupTestStore(t *testing.T) (*gorm.DB, repository.Store) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Bag{}, &models.Cuboid{}))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db, repository.NewStore(db)
}

func createBag(t *testing.T, db *gorm.DB, width, height, depth float64) *models.Bag {
	bag := &models.Bag{Title: "bag", Width: width, Height: height, Depth: depth}
	require.NoError(t, db.Create(bag).Error)
	return bag
}

func createCuboid(t *testing.T, db *gorm.DB, bagID uint, width, height, depth float64) *models.Cuboid {
	cuboid := &models.Cuboid{Width: width, Height: height, Depth: depth, BagID: bagID}
	require.NoError(t, db.Create(cuboid).Error)
	return cuboid
}
