package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gewnthar/flightmapper/models"
)

func TestGreatCircleMilesSameAirportIsZero(t *testing.T) {
	reg := testRegistry(t)
	for _, a := range reg.Airports() {
		assert.Equal(t, 0.0, GreatCircleMiles(a, a), a.Code)
	}
}

func TestGreatCircleMilesSymmetric(t *testing.T) {
	reg := testRegistry(t)
	airports := reg.Airports()
	for _, a := range airports {
		for _, b := range airports {
			assert.Equal(t, GreatCircleMiles(a, b), GreatCircleMiles(b, a), "%s-%s", a.Code, b.Code)
		}
	}
}

func TestGreatCircleMilesKnownDistances(t *testing.T) {
	reg := testRegistry(t)
	oneDegree := EarthRadiusMiles * math.Pi / 180

	assert.InDelta(t, oneDegree, GreatCircleMiles(testAirport(t, reg, "AAA"), testAirport(t, reg, "BBB")), 1e-9)
	assert.InDelta(t, 2*oneDegree, GreatCircleMiles(testAirport(t, reg, "AAA"), testAirport(t, reg, "CCC")), 1e-9)
	// LHR-JFK is about 3446 statute miles on this sphere.
	assert.InDelta(t, 3446, GreatCircleMiles(testAirport(t, reg, "LHR"), testAirport(t, reg, "JFK")), 1)
}

func TestGreatCircleMilesAntipodes(t *testing.T) {
	a := &models.Airport{Code: "N", Lat: 90, Lon: 0}
	b := &models.Airport{Code: "S", Lat: -90, Lon: 0}
	d := GreatCircleMiles(a, b)
	assert.False(t, math.IsNaN(d))
	assert.InDelta(t, math.Pi*EarthRadiusMiles, d, 1e-6)

	c := &models.Airport{Code: "E", Lat: 0, Lon: 180}
	o := &models.Airport{Code: "O", Lat: 0, Lon: 0}
	assert.InDelta(t, math.Pi*EarthRadiusMiles, GreatCircleMiles(o, c), 1e-6)
}

func TestSegmentMilesZeroLength(t *testing.T) {
	reg := testRegistry(t)
	a := testAirport(t, reg, "LHR")
	assert.Equal(t, 0.0, SegmentMiles(models.Segment{Origin: a, Destination: a}))
}
