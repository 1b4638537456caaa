package repository

import "gorm.io/gorm"

// Store groups the repositories so a service can run several of them in one transaction.
type Store interface {
	Bags() BagRepository
	Cuboids() CuboidRepository
	Transaction(fn func(tx Store) error) error
}

type gormStore struct {
	db      *gorm.DB
	bags    BagRepository
	cuboids CuboidRepository
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:      db,
		bags:    NewBagRepository(db),
		cuboids: NewCuboidRepository(db),
	}
}

func (s *gormStore) Bags() BagRepository {
	return s.bags
}

func (s *gormStore) Cuboids() CuboidRepository {
	return s.cuboids
}

// Transaction commits when fn returns nil and rolls back otherwise.
func (s *gormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
