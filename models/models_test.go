package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogDate(t *testing.T) {
	d, err := ParseLogDate("20190302")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.March, 2, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"", "2019032", "2019-03-02", "20190230", "201903021"} {
		_, err := ParseLogDate(bad)
		var dateErr *MalformedDateError
		require.ErrorAs(t, err, &dateErr, bad)
		assert.Equal(t, "date", dateErr.Field)
		assert.Equal(t, bad, dateErr.Value)
	}
}

func TestParsePartialDate(t *testing.T) {
	tests := []struct {
		in        string
		want      time.Time
		precision DatePrecision
		display   string
	}{
		{"19940214", time.Date(1994, time.February, 14, 0, 0, 0, 0, time.UTC), PrecisionDay, "1994 Feb 14"},
		{"199402", time.Date(1994, time.February, 14, 0, 0, 0, 0, time.UTC), PrecisionMonth, "1994 Feb"},
		{"1994", time.Date(1994, time.June, 14, 0, 0, 0, 0, time.UTC), PrecisionYear, "1994"},
	}
	for _, tt := range tests {
		got, p, err := ParsePartialDate("first_flight", tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.precision, p, tt.in)
		assert.Equal(t, tt.display, got.Format(p.Layout()), tt.in)
	}

	for _, bad := range []string{"19941", "94", "1994021", "abcd", "199413"} {
		_, _, err := ParsePartialDate("first_flight", bad)
		var dateErr *MalformedDateError
		require.ErrorAs(t, err, &dateErr, bad)
		assert.Equal(t, "first_flight", dateErr.Field)
	}
}

func TestAirportFromRow(t *testing.T) {
	a, err := AirportFromRow(AirportRow{
		Code: " JFK ", Name: "John F Kennedy Intl", Lat: "40.6398", Lon: "-73.7789",
		IATA: "JFK", ICAO: "KJFK", Elevation: "13", City: "New York", Region: "New York",
		Country: "United States", Continent: " ",
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, "JFK", a.Code)
	assert.Equal(t, 13.0, *a.Elevation)
	assert.Nil(t, a.Continent)
	assert.Equal(t, "John F Kennedy Intl, New York, New York (KJFK)", a.String())

	_, err = AirportFromRow(AirportRow{Code: "X", Lat: "1", Lon: "1", Elevation: "high"}, 7)
	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "elevation", dataErr.Field)
	assert.Equal(t, "row 7: invalid elevation for airport X", dataErr.Error())

	_, err = AirportFromRow(AirportRow{Code: "X", Lat: "1"}, 8)
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "lon", dataErr.Field)
}

func TestAirportLabels(t *testing.T) {
	iata, city, country := "LHR", "London", "United Kingdom"
	lhr := &Airport{Code: "LHR", Name: "Heathrow", IATA: &iata, City: &city, Country: &country}
	assert.Equal(t, "LHR", lhr.ShortLabel())
	assert.Equal(t, "LHR", lhr.SortLabel())
	assert.Equal(t, "Heathrow, London, United Kingdom", lhr.String())

	strip := &Airport{Code: "X01", Name: "Ærø Airstrip"}
	assert.Equal(t, "Ærø…", strip.ShortLabel())
	assert.Equal(t, "Ærø Airstrip", strip.SortLabel())

	ll := lhr.Latlong()
	assert.Equal(t, lhr.Lat, ll.Lat)
	assert.Equal(t, lhr.Lon, ll.Long)
}

func TestFlightHelpers(t *testing.T) {
	f := &Flight{Desig: "AA", Number: "100", MktCxr: "American", AdmCxr: "Envoy"}
	assert.Equal(t, "AA100", f.FlightNumber())
	assert.Equal(t, "Envoy", f.Operator())

	f.AdmCxr = "American"
	assert.Equal(t, "", f.Operator())
}

func TestStopKindJSON(t *testing.T) {
	out, err := json.Marshal([]StopKind{StopLanded, StopScheduled, StopDiverted})
	require.NoError(t, err)
	assert.JSONEq(t, `["normal","scheduled","diverted"]`, string(out))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `unknown airport code "XXX"`, (&UnknownAirportError{Code: "XXX"}).Error())
	assert.Equal(t, `route "AAA" has no flown segments`, (&EmptyRouteError{Route: "AAA"}).Error())
	assert.Equal(t, `malformed date "2019"`, (&MalformedDateError{Field: "date", Value: "2019"}).Error())
	assert.Equal(t, "superlatives: no flown segments", (&NoSegmentsError{Operation: "superlatives"}).Error())
	assert.Equal(t, "no code", (&DataError{Message: "no code"}).Error())
}
