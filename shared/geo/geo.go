// Package geo implements the planar distance the hotel search uses. Latitude and
// longitude are treated as plain x/y coordinates, not as points on a sphere.
package geo

import "math"

// PlanarDistance is the Euclidean distance between two latitude/longitude pairs.
func PlanarDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2

	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// WithinRadius reports whether the second point is at most radius away from the first.
func WithinRadius(lat1, lon1, lat2, lon2, radius float64) bool {
	return PlanarDistance(lat1, lon1, lat2, lon2) <= radius
}
