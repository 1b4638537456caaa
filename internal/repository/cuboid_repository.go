package repository

import (
	"Bagged/internal/models"
	"gorm.io/gorm"
)

type CuboidRepository interface {
	GenericRepository[models.Cuboid]
	FindByIDsWithBag(ids []uint) ([]models.Cuboid, error)
	FindByBagID(bagID uint) ([]models.Cuboid, error)
	CountByBagID(bagID uint) (int64, error)
}

type CuboidRepositoryImpl[T models.Cuboid] struct {
	GenericRepository[models.Cuboid]
	db *gorm.DB
}

func NewCuboidRepository(db *gorm.DB) CuboidRepository {
	return &CuboidRepositoryImpl[models.Cuboid]{
		GenericRepository: NewGenericRepository[models.Cuboid](db),
		db:                db,
	}
}

func (r *CuboidRepositoryImpl[T]) FindByIDsWithBag(ids []uint) ([]models.Cuboid, error) {
	cuboids := make([]models.Cuboid, 0, len(ids))
	if len(ids) == 0 {
		return cuboids, nil
	}
	err := r.db.Preload("Bag").Where("id IN ?", ids).Order("id").Find(&cuboids).Error
	if err != nil {
		return nil, err
	}
	return cuboids, nil
}

func (r *CuboidRepositoryImpl[T]) FindByBagID(bagID uint) ([]models.Cuboid, error) {
	var cuboids []models.Cuboid
	err := r.db.Where("bag_id = ?", bagID).Find(&cuboids).Error
	if err != nil {
		return nil, err
	}
	return cuboids, nil
}

func (r *CuboidRepositoryImpl[T]) CountByBagID(bagID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Cuboid{}).Where("bag_id = ?", bagID).Count(&count).Error
	return count, err
}
