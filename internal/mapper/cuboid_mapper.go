package mapper

import (
	"Bagged/internal/dto"
	"Bagged/internal/models"
)

func ToCuboidVolumeDTO(id uint, cuboid *models.Cuboid) *dto.CuboidVolumeDTO {
	return &dto.CuboidVolumeDTO{
		ID:     id,
		Volume: cuboid.Volume(),
	}
}
