package models

type Bag struct {
	BaseModel
	Title   string   `gorm:"type:varchar(255)" json:"title"`
	Width   float64  `gorm:"not null;default:0" json:"width"`
	Height  float64  `gorm:"not null;default:0" json:"height"`
	Depth   float64  `gorm:"not null;default:0" json:"depth"`
	Cuboids []Cuboid `gorm:"foreignKey:BagID" json:"cuboids,omitempty"`
}

// Volume is the capacity of the bag.
func (b *Bag) Volume() float64 {
	return Volume(b.Width, b.Height, b.Depth)
}
