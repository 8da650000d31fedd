package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	london = Point{Latitude: 51.5074, Longitude: -0.1278}
	paris  = Point{Latitude: 48.8566, Longitude: 2.3522}
)

func TestHaversineKnownDistances(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		wantKm float64
		tolKm  float64
	}{
		{"london to paris", london, paris, 343.5, 1.0},
		{"quarter great circle", Point{0, 0}, Point{0, 90}, 10007.5, 5.0},
		{"equator one degree", Point{0, 0}, Point{0, 1}, 111.19, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantKm, HaversineKm(tt.a, tt.b), tt.tolKm)
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	pairs := [][2]Point{
		{london, paris},
		{{0, 0}, {0, 90}},
		{{-33.8688, 151.2093}, {35.6762, 139.6503}},
		{{89.9, 10}, {-89.9, -170}},
	}
	for _, p := range pairs {
		assert.InDelta(t, HaversineKm(p[0], p[1]), HaversineKm(p[1], p[0]), 1e-9)
	}
}

func TestHaversineZero(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(london, london))
	assert.Equal(t, 0.0, HaversineKm(Point{}, Point{}))
}

func TestHaversineMeters(t *testing.T) {
	assert.InDelta(t, HaversineKm(london, paris)*1000, HaversineMeters(london, paris), 1e-6)
}

func TestBearing(t *testing.T) {
	// Due east along the equator.
	assert.InDelta(t, 90.0, Bearing(Point{0, 0}, Point{0, 1}), 1e-6)
	// Due north.
	assert.InDelta(t, 0.0, Bearing(Point{0, 0}, Point{1, 0}), 1e-6)
	// Due south comes back as 180.
	assert.InDelta(t, 180.0, Bearing(Point{1, 0}, Point{0, 0}), 1e-6)
}

func TestPointValid(t *testing.T) {
	assert.True(t, london.Valid())
	assert.True(t, Point{Latitude: -90, Longitude: 180}.Valid())
	assert.False(t, Point{Latitude: 91, Longitude: 0}.Valid())
	assert.False(t, Point{Latitude: 0, Longitude: -181}.Valid())
}
