package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// FindByID returns gorm.ErrRecordNotFound when no live row has the id.
func (r *GenericRepositoryImpl[T]) FindByID(id uint) (*T, error) {
	var entity T
	err := r.db.First(&entity, id).Error
	return &entity, err
}

func (r *GenericRepositoryImpl[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.db.Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) Update(entity *T) error {
	return r.db.Omit(clause.Associations).Save(entity).Error
}

func (r *GenericRepositoryImpl[T]) Delete(id uint) error {
	var entity T
	return r.db.Delete(&entity, id).Error
}

func (r *GenericRepositoryImpl[T]) FindDeletedBefore(cutoff time.Time) ([]T, error) {
	var entities []T
	err := r.db.Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Find(&entities).Error
	return entities, err
}

func (r *GenericRepositoryImpl[T]) HardDelete(entity *T) error {
	return r.db.Unscoped().Delete(entity).Error
}
