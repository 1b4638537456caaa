package repository

import (
	"Bagged/internal/models"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStore_TransactionCommits(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	err := store.Transaction(func(tx Store) error {
		return tx.Bags().Create(&models.Bag{Title: "Committed"})
	})
	assert.NoError(t, err)

	bags, err := store.Bags().FindAll()
	assert.NoError(t, err)
	assert.Len(t, bags, 1)
}

func TestStore_TransactionRollsBack(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	errAbort := errors.New("abort")

	err := store.Transaction(func(tx Store) error {
		if err := tx.Bags().Create(&models.Bag{Title: "Rolled back"}); err != nil {
			return err
		}
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	bags, err := store.Bags().FindAll()
	assert.NoError(t, err)
	assert.Empty(t, bags)
}

func TestStore_PostgresLocksBagRow(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "bags" WHERE .*` + regexp.QuoteMeta("FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "width", "height", "depth"}).
			AddRow(1, "Locked", 2, 2, 2))
	mock.ExpectQuery(`SELECT \* FROM "cuboids" WHERE bag_id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "width", "height", "depth", "bag_id"}).
			AddRow(5, 1, 2, 2, 1))
	mock.ExpectCommit()

	var payload float64
	err = store.Transaction(func(tx Store) error {
		bag, err := tx.Bags().FindByIDForUpdate(1)
		if err != nil {
			return err
		}
		cuboids, err := tx.Cuboids().FindByBagID(bag.ID)
		if err != nil {
			return err
		}
		payload = models.PayloadVolume(cuboids)
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 4.0, payload)
	assert.NoError(t, mock.ExpectationsWereMet())
}
