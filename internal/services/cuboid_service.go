package services

import (
	"Bagged/internal/events"
	"Bagged/internal/metrics"
	"Bagged/internal/models"
	"Bagged/internal/repository"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type CuboidService interface {
	ListCuboids(ids []uint) ([]models.Cuboid, error)
	GetCuboidByID(id uint) (*models.Cuboid, error)
	CreateCuboid(width, height, depth float64, bagID uint) (*models.Cuboid, error)
	UpdateCuboid(id uint, width, height, depth float64, bagID uint) (*models.Cuboid, error)
	DeleteCuboid(id uint) error
	FindDeleted(cutoff time.Time) ([]models.Cuboid, error)
	HardDelete(cuboid *models.Cuboid) error
}

type cuboidServiceImpl struct {
	store      repository.Store
	publisher  events.Publisher
	logService LogService
}

func NewCuboidService(store repository.Store, publisher events.Publisher, logService LogService) CuboidService {
	return &cuboidServiceImpl{
		store:      store,
		publisher:  publisher,
		logService: logService,
	}
}

func (s *cuboidServiceImpl) ListCuboids(ids []uint) ([]models.Cuboid, error) {
	return s.store.Cuboids().FindByIDsWithBag(ids)
}

func (s *cuboidServiceImpl) GetCuboidByID(id uint) (*models.Cuboid, error) {
	cuboid, err := s.store.Cuboids().FindByID(id)
	if err != nil {
		return nil, notFoundAs(err, ErrCuboidNotFound, "finding cuboid")
	}
	return cuboid, nil
}

func (s *cuboidServiceImpl) CreateCuboid(width, height, depth float64, bagID uint) (*models.Cuboid, error) {
	if !models.FiniteVolume(width, height, depth) {
		return nil, ErrVolumeOverflow
	}
	cuboid := &models.Cuboid{Width: width, Height: height, Depth: depth, BagID: bagID}

	err := s.store.Transaction(func(tx repository.Store) error {
		bag, err := tx.Bags().FindByIDForUpdate(bagID)
		if err != nil {
			return notFoundAs(err, ErrBagNotFound, "finding bag")
		}
		existing, err := tx.Cuboids().FindByBagID(bagID)
		if err != nil {
			return fmt.Errorf("loading cuboids of bag %d: %w", bagID, err)
		}
		if err := s.admit(bag, append(existing, *cuboid)); err != nil {
			return err
		}
		return tx.Cuboids().Create(cuboid)
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.CuboidCreated, cuboid)
	return cuboid, nil
}

// UpdateCuboid re-runs the admission check against the target bag with the old
// version of the cuboid left out of the payload.
func (s *cuboidServiceImpl) UpdateCuboid(id uint, width, height, depth float64, bagID uint) (*models.Cuboid, error) {
	if !models.FiniteVolume(width, height, depth) {
		return nil, ErrVolumeOverflow
	}
	var updated *models.Cuboid

	err := s.store.Transaction(func(tx repository.Store) error {
		cuboid, err := tx.Cuboids().FindByID(id)
		if err != nil {
			return notFoundAs(err, ErrCuboidNotFound, "finding cuboid")
		}
		bag, err := tx.Bags().FindByIDForUpdate(bagID)
		if err != nil {
			return notFoundAs(err, ErrBagNotFound, "finding bag")
		}
		existing, err := tx.Cuboids().FindByBagID(bagID)
		if err != nil {
			return fmt.Errorf("loading cuboids of bag %d: %w", bagID, err)
		}
		candidate := models.Cuboid{Width: width, Height: height, Depth: depth, BagID: bagID}
		if err := s.admit(bag, append(withoutCuboid(existing, id), candidate)); err != nil {
			return err
		}

		cuboid.Width = width
		cuboid.Height = height
		cuboid.Depth = depth
		cuboid.BagID = bagID
		if err := tx.Cuboids().Update(cuboid); err != nil {
			return fmt.Errorf("updating cuboid %d: %w", id, err)
		}
		cuboid.Bag = bag
		updated = cuboid
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(events.CuboidUpdated, updated)
	return updated, nil
}

func (s *cuboidServiceImpl) DeleteCuboid(id uint) error {
	cuboid, err := s.store.Cuboids().FindByID(id)
	if err != nil {
		return notFoundAs(err, ErrCuboidNotFound, "finding cuboid")
	}
	if err := s.store.Cuboids().Delete(id); err != nil {
		return fmt.Errorf("deleting cuboid %d: %w", id, err)
	}
	s.publish(events.CuboidDeleted, cuboid)
	return nil
}

func (s *cuboidServiceImpl) FindDeleted(cutoff time.Time) ([]models.Cuboid, error) {
	return s.store.Cuboids().FindDeletedBefore(cutoff)
}

func (s *cuboidServiceImpl) HardDelete(cuboid *models.Cuboid) error {
	return s.store.Cuboids().HardDelete(cuboid)
}

func (s *cuboidServiceImpl) admit(bag *models.Bag, cuboids []models.Cuboid) error {
	accepted := models.Fits(bag, cuboids)
	metrics.RecordAdmission(accepted)
	if accepted {
		return nil
	}
	s.logService.Log.WithFields(logrus.Fields{
		"bag":     bag.ID,
		"volume":  bag.Volume(),
		"payload": models.PayloadVolume(cuboids),
	}).Info("cuboid rejected, bag capacity exceeded")
	return ErrInsufficientCapacity
}

func (s *cuboidServiceImpl) publish(eventType string, cuboid *models.Cuboid) {
	if err := s.publisher.Publish(events.NewCuboidEvent(eventType, cuboid)); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"event":  eventType,
			"cuboid": cuboid.ID,
			"error":  err.Error(),
		}).Warn("failed to publish cuboid event")
	}
}

func withoutCuboid(cuboids []models.Cuboid, id uint) []models.Cuboid {
	kept := make([]models.Cuboid, 0, len(cuboids))
	for _, cuboid := range cuboids {
		if cuboid.ID != id {
			kept = append(kept, cuboid)
		}
	}
	return kept
}
