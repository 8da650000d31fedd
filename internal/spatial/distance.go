package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Earth's mean radius.
const (
	EarthRadiusMeters = 6371000.0
	EarthRadiusKm     = 6371.0
)

// Point is a geographic coordinate in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the point is within the WGS84 coordinate range.
func (p Point) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}

// HaversineKm calculates the great-circle distance between two points in
// kilometers using the Haversine formula on a spherical Earth.
func HaversineKm(a, b Point) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)

	dLat := p2.Lat.Radians() - p1.Lat.Radians()
	dLng := p2.Lng.Radians() - p1.Lng.Radians()

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p1.Lat.Radians())*math.Cos(p2.Lat.Radians())*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// HaversineMeters is HaversineKm in meters.
func HaversineMeters(a, b Point) float64 {
	return HaversineKm(a, b) * 1000
}

// Bearing calculates the initial bearing (forward azimuth) from a to b.
// Returns degrees in [0, 360), where 0 is North and 90 is East.
func Bearing(a, b Point) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)

	lat1 := p1.Lat.Radians()
	lat2 := p2.Lat.Radians()
	dLng := p2.Lng.Radians() - p1.Lng.Radians()

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	bearing := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(bearing+360, 360)
}
