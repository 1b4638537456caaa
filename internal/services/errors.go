package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrBagNotFound          = errors.New("bag not found")
	ErrCuboidNotFound       = errors.New("cuboid not found")
	ErrInsufficientCapacity = errors.New("insufficient capacity in bag")
	ErrBagNotEmpty          = errors.New("bag is not empty")
	ErrVolumeOverflow       = errors.New("dimensions are too large")
)

// notFoundAs turns gorm.ErrRecordNotFound into the domain error and wraps anything else.
func notFoundAs(err error, notFound error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", action, err)
}
