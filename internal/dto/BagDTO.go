package dto

import "Bagged/internal/models"

type BagWriteDTO struct {
	Title  string  `json:"title" validate:"max=255"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
	Depth  float64 `json:"depth" validate:"gte=0"`
}

type BagGetDTO struct {
	ID              uint            `json:"id"`
	Title           string          `json:"title"`
	Width           float64         `json:"width"`
	Height          float64         `json:"height"`
	Depth           float64         `json:"depth"`
	Volume          float64         `json:"volume"`
	PayloadVolume   float64         `json:"payloadVolume"`
	AvailableVolume float64         `json:"availableVolume"`
	Cuboids         []models.Cuboid `json:"cuboids"`
}
