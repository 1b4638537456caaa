package mapper

import (
	"Bagged/internal/dto"
	"Bagged/internal/models"
)

// ToBagGetDTO computes the derived volumes from the cuboids loaded on the bag.
func ToBagGetDTO(bag *models.Bag) *dto.BagGetDTO {
	cuboids := bag.Cuboids
	if cuboids == nil {
		cuboids = []models.Cuboid{}
	}
	return &dto.BagGetDTO{
		ID:              bag.ID,
		Title:           bag.Title,
		Width:           bag.Width,
		Height:          bag.Height,
		Depth:           bag.Depth,
		Volume:          bag.Volume(),
		PayloadVolume:   models.PayloadVolume(cuboids),
		AvailableVolume: models.AvailableVolume(bag, cuboids),
		Cuboids:         cuboids,
	}
}

func ToBagGetDTOs(bags []models.Bag) []dto.BagGetDTO {
	bagDTOs := make([]dto.BagGetDTO, 0, len(bags))
	for i := range bags {
		bagDTOs = append(bagDTOs, *ToBagGetDTO(&bags[i]))
	}
	return bagDTOs
}
