package repository

import "time"

type GenericRepository[T any] interface {
	Create(entity *T) error
	FindByID(id uint) (*T, error)
	FindAll() ([]T, error)
	Update(entity *T) error
	Delete(id uint) error
	FindDeletedBefore(cutoff time.Time) ([]T, error)
	HardDelete(entity *T) error
}
