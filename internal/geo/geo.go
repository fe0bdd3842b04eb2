package geo

import "math"

const earthRadiusMiles = 3959.0

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Distance computes the great-circle distance in miles between two
// points using the Haversine formula. NaN coordinates produce a NaN
// result rather than an error.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degreesToRadians(lat1)
	lat2Rad := degreesToRadians(lat2)
	deltaLat := degreesToRadians(lat2 - lat1)
	deltaLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// DistanceFrom computes the distance in miles from the point to the
// given coordinates.
func (p Point) DistanceFrom(lat, lon float64) float64 {
	return Distance(p.Lat, p.Lng, lat, lon)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
