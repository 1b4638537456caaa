package models

type Cuboid struct {
	BaseModel
	Width  float64 `gorm:"not null;default:0" json:"width"`
	Height float64 `gorm:"not null;default:0" json:"height"`
	Depth  float64 `gorm:"not null;default:0" json:"depth"`
	BagID  uint    `gorm:"index;not null" json:"bagId"`
	Bag    *Bag    `gorm:"foreignKey:BagID" json:"bag,omitempty"`
}

func (c *Cuboid) Volume() float64 {
	return Volume(c.Width, c.Height, c.Depth)
}
