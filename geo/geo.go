package geo

import "math"

// EarthRadius is the sphere radius in meters used by ComputeDistance.
const EarthRadius = 6371000.0

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// ComputeDistance returns the great-circle distance in meters between from and to
// using the spherical law of cosines.
func ComputeDistance(from, to Coordinates) float64 {
	if from == to {
		return 0
	}
	const dr = math.Pi / 180.0
	cos := math.Sin(from.Lat*dr)*math.Sin(to.Lat*dr) +
		math.Cos(from.Lat*dr)*math.Cos(to.Lat*dr)*math.Cos(math.Abs(from.Lng-to.Lng)*dr)
	// rounding can push nearly-identical points just past 1
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * EarthRadius
}
