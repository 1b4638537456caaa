package models

import "math"

func Volume(width, height, depth float64) float64 {
	return width * height * depth
}

// PayloadVolume sums the volume of every cuboid in the set.
func PayloadVolume(cuboids []Cuboid) float64 {
	var total float64
	for i := range cuboids {
		total += cuboids[i].Volume()
	}
	return total
}

// AvailableVolume is what is left of the bag once the given cuboids are placed in it.
// It is negative when the cuboids do not fit.
func AvailableVolume(bag *Bag, cuboids []Cuboid) float64 {
	return bag.Volume() - PayloadVolume(cuboids)
}

// Fits reports whether the cuboids together fit in the bag. A payload equal to the
// bag volume fits.
func Fits(bag *Bag, cuboids []Cuboid) bool {
	return PayloadVolume(cuboids) <= bag.Volume()
}

// FiniteVolume reports whether the dimensions multiply out to a finite volume.
// Huge dimensions overflow float64 and cannot be stored or serialized.
func FiniteVolume(width, height, depth float64) bool {
	volume := Volume(width, height, depth)
	return !math.IsInf(volume, 0) && !math.IsNaN(volume)
}
