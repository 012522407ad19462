package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gewnthar/flightmapper/models"
)

// testRows is a small airport table. AAA, BBB and CCC sit on the equator one
// degree of longitude apart, so distances between them are easy to work out.
var testRows = []models.AirportRow{
	{Code: "AAA", Name: "Alpha", Lat: "0", Lon: "0", IATA: "AAA", Country: "Testland", Continent: "Africa"},
	{Code: "BBB", Name: "Bravo", Lat: "0", Lon: "1", IATA: "BBB", Country: "Testland", Continent: "Africa"},
	{Code: "CCC", Name: "Charlie", Lat: "0", Lon: "2", IATA: "CCC", Country: "Otherland", Continent: "Africa"},
	{Code: "LHR", Name: "Heathrow", Lat: "51.4706", Lon: "-0.461941", IATA: "LHR", ICAO: "EGLL", City: "London", Country: "United Kingdom", Continent: "Europe"},
	{Code: "LGW", Name: "Gatwick", Lat: "51.1481", Lon: "-0.190278", IATA: "LGW", ICAO: "EGKK", City: "London", Country: "United Kingdom", Continent: "Europe"},
	{Code: "JFK", Name: "John F Kennedy Intl", Lat: "40.6398", Lon: "-73.7789", IATA: "JFK", ICAO: "KJFK", City: "New York", Region: "New York", Country: "United States", Continent: "North America"},
	{Code: "BOS", Name: "Logan Intl", Lat: "42.3643", Lon: "-71.0052", IATA: "BOS", ICAO: "KBOS", City: "Boston", Region: "Massachusetts", Country: "United States", Continent: "North America"},
	{Code: "ORD", Name: "O'Hare Intl", Lat: "41.9786", Lon: "-87.9048", IATA: "ORD", ICAO: "KORD", City: "Chicago", Region: "Illinois", Country: "United States", Continent: "North America"},
	{Code: "NNA", Name: "North A", Lat: "60", Lon: "10"},
	{Code: "NNB", Name: "North B", Lat: "60", Lon: "20"},
	{Code: "SSA", Name: "South A", Lat: "-40", Lon: "10"},
	{Code: "SSB", Name: "South B", Lat: "-40", Lon: "20"},
}

func testRegistry(t *testing.T) *AirportRegistry {
	t.Helper()
	reg, err := NewAirportRegistry(testRows)
	require.NoError(t, err)
	return reg
}

func testAirport(t *testing.T, reg *AirportRegistry, code string) *models.Airport {
	t.Helper()
	a, err := reg.Lookup(code)
	require.NoError(t, err)
	return a
}

// testFlight builds a flight from a route string with optional extra fields.
func testFlight(t *testing.T, reg *AirportRegistry, route string, fields map[string]string) *models.Flight {
	t.Helper()
	rec := models.FlightRecord{Line: 1, Fields: map[string]string{"route": route, "date": "20190302"}}
	for k, v := range fields {
		rec.Fields[k] = v
	}
	f, err := BuildFlight(rec, reg)
	require.NoError(t, err)
	return f
}
