package repository

import (
	"Bagged/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BagRepository interface {
	GenericRepository[models.Bag]
	FindByIDForUpdate(id uint) (*models.Bag, error)
	FindByIDWithCuboids(id uint) (*models.Bag, error)
	FindAllWithCuboids() ([]models.Bag, error)
}

type BagRepositoryImpl[T models.Bag] struct {
	GenericRepository[models.Bag]
	db *gorm.DB
}

func NewBagRepository(db *gorm.DB) BagRepository {
	return &BagRepositoryImpl[models.Bag]{
		GenericRepository: NewGenericRepository[models.Bag](db),
		db:                db,
	}
}

// FindByIDForUpdate takes a row lock on the bag for the rest of the enclosing
// transaction. SQLite drops the locking clause.
func (r *BagRepositoryImpl[T]) FindByIDForUpdate(id uint) (*models.Bag, error) {
	var bag models.Bag
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&bag, id).Error
	if err != nil {
		return nil, err
	}
	return &bag, nil
}

func (r *BagRepositoryImpl[T]) FindByIDWithCuboids(id uint) (*models.Bag, error) {
	var bag models.Bag
	err := r.db.Preload("Cuboids").First(&bag, id).Error
	if err != nil {
		return nil, err
	}
	return &bag, nil
}

func (r *BagRepositoryImpl[T]) FindAllWithCuboids() ([]models.Bag, error) {
	var bags []models.Bag
	err := r.db.Preload("Cuboids").Order("id").Find(&bags).Error
	if err != nil {
		return nil, err
	}
	return bags, nil
}
