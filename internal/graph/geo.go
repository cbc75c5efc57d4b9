package graph

import "math"

const (
	earthRadius = 6371000.0 // meters
	deg2rad     = math.Pi / 180.0
)

// Haversine returns the great-circle distance in meters between two
// latitude/longitude points on the WGS84 mean-radius sphere.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * deg2rad
	dLon := (lon2 - lon1) * deg2rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*deg2rad)*math.Cos(lat2*deg2rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}
