// services/geo_distance.go
package services

import (
	"math"

	"github.com/gewnthar/flightmapper/models"
	"github.com/skypies/geo"
)

const (
	// EarthRadiusMiles is the mean Earth radius in statute miles.
	EarthRadiusMiles = 3963.19
	// EarthCircumferenceMiles is used to express a total distance in trips around the Earth.
	EarthCircumferenceMiles = 24901.0
)

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

// haversineMiles is the great-circle distance between two positions.
// Identical positions are exactly 0. The haversine term is clamped to [0,1]
// so rounding near antipodes can never produce NaN.
func haversineMiles(a, b geo.Latlong) float64 {
	if a.Lat == b.Lat && a.Long == b.Long {
		return 0
	}

	lat1, lat2 := toRadians(a.Lat), toRadians(b.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.Long) - toRadians(a.Long)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusMiles * math.Asin(math.Sqrt(h))
}

// GreatCircleMiles is the great-circle distance between two airports in statute miles.
func GreatCircleMiles(a, b *models.Airport) float64 {
	return haversineMiles(a.Latlong(), b.Latlong())
}

// SegmentMiles is the great-circle length of a segment; 0 for a zero-length one.
func SegmentMiles(s models.Segment) float64 {
	if s.IsZeroLength() {
		return 0
	}
	return GreatCircleMiles(s.Origin, s.Destination)
}

// FlightMiles sums the segment lengths of a flight.
func FlightMiles(f *models.Flight) float64 {
	total := 0.0
	for _, s := range f.Route.Segments {
		total += SegmentMiles(s)
	}
	return total
}
