package services

import (
	"Bagged/internal/models"
	"Bagged/internal/repository"
	"fmt"
	"time"
)

type BagService interface {
	CreateBag(title string, width, height, depth float64) (*models.Bag, error)
	GetBagByID(id uint) (*models.Bag, error)
	GetBags() ([]models.Bag, error)
	DeleteBag(id uint) error
	FindDeleted(cutoff time.Time) ([]models.Bag, error)
	HardDelete(bag *models.Bag) error
}

func NewBagService(store repository.Store) BagService {
	return &bagServiceImpl{store: store}
}

type bagServiceImpl struct {
	store repository.Store
}

func (s *bagServiceImpl) CreateBag(title string, width, height, depth float64) (*models.Bag, error) {
	if !models.FiniteVolume(width, height, depth) {
		return nil, ErrVolumeOverflow
	}
	bag := &models.Bag{Title: title, Width: width, Height: height, Depth: depth}
	if err := s.store.Bags().Create(bag); err != nil {
		return nil, fmt.Errorf("creating bag: %w", err)
	}
	return bag, nil
}

// GetBagByID returns the bag with its cuboids loaded.
func (s *bagServiceImpl) GetBagByID(id uint) (*models.Bag, error) {
	bag, err := s.store.Bags().FindByIDWithCuboids(id)
	if err != nil {
		return nil, notFoundAs(err, ErrBagNotFound, "finding bag")
	}
	return bag, nil
}

func (s *bagServiceImpl) GetBags() ([]models.Bag, error) {
	return s.store.Bags().FindAllWithCuboids()
}

// DeleteBag refuses to delete a bag that still holds cuboids.
func (s *bagServiceImpl) DeleteBag(id uint) error {
	return s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Bags().FindByIDForUpdate(id); err != nil {
			return notFoundAs(err, ErrBagNotFound, "finding bag")
		}
		count, err := tx.Cuboids().CountByBagID(id)
		if err != nil {
			return fmt.Errorf("counting cuboids of bag %d: %w", id, err)
		}
		if count > 0 {
			return ErrBagNotEmpty
		}
		return tx.Bags().Delete(id)
	})
}

func (s *bagServiceImpl) FindDeleted(cutoff time.Time) ([]models.Bag, error) {
	return s.store.Bags().FindDeletedBefore(cutoff)
}

func (s *bagServiceImpl) HardDelete(bag *models.Bag) error {
	return s.store.Bags().HardDelete(bag)
}
