package dto

// CuboidWriteDTO is the body of cuboid create and update requests. A missing
// bagId decodes to 0, which no bag has, so the bag lookup answers 404.
type CuboidWriteDTO struct {
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
	Depth  float64 `json:"depth" validate:"gte=0"`
	BagID  uint    `json:"bagId"`
}

type CuboidVolumeDTO struct {
	ID     uint    `json:"id"`
	Volume float64 `json:"volume"`
}
