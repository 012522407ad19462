package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewnthar/flightmapper/models"
)

func TestBuildFlight(t *testing.T) {
	reg := testRegistry(t)
	rec := models.FlightRecord{Line: 4, Fields: map[string]string{
		"route":        "LHR-JFK",
		"date":         "20190302",
		"desig":        "BA",
		"number":       "117",
		"mkt_cxr":      "British Airways",
		"adm_cxr":      "British Airways",
		"manufacturer": "Boeing",
		"type2":        "747",
		"type3":        "747-400",
		"registration": "G-CIVB",
		"first_flight": "199402",
		"pics":         " one.jpg ; ;two.jpg",
	}}

	f, err := BuildFlight(rec, reg)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, time.March, 2, 0, 0, 0, 0, time.UTC), f.Date)
	assert.Equal(t, "BA117", f.FlightNumber())
	assert.Equal(t, "", f.Operator())
	assert.Equal(t, "G-CIVB", f.Registration)
	assert.Equal(t, []string{"one.jpg", "two.jpg"}, f.Pics)
	require.Len(t, f.Route.Segments, 1)
	assert.Equal(t, "JFK", f.Route.Segments[0].Destination.Code)
}

func TestBuildFlightErrors(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name   string
		fields map[string]string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "missing route",
			fields: map[string]string{"date": "20190302"},
			check: func(t *testing.T, err error) {
				var e *models.EmptyRouteError
				assert.ErrorAs(t, err, &e)
			},
		},
		{
			name:   "missing date",
			fields: map[string]string{"route": "AAA-BBB"},
			check: func(t *testing.T, err error) {
				var e *models.MalformedDateError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, "date", e.Field)
			},
		},
		{
			name:   "impossible date",
			fields: map[string]string{"route": "AAA-BBB", "date": "20191340"},
			check: func(t *testing.T, err error) {
				var e *models.MalformedDateError
				assert.ErrorAs(t, err, &e)
			},
		},
		{
			name:   "first flight with odd length",
			fields: map[string]string{"route": "AAA-BBB", "date": "20190302", "first_flight": "19941"},
			check: func(t *testing.T, err error) {
				var e *models.MalformedDateError
				require.ErrorAs(t, err, &e)
				assert.Equal(t, "first_flight", e.Field)
			},
		},
		{
			name:   "unknown airport",
			fields: map[string]string{"route": "AAA-ZZZ", "date": "20190302"},
			check: func(t *testing.T, err error) {
				var e *models.UnknownAirportError
				assert.ErrorAs(t, err, &e)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildFlight(models.FlightRecord{Line: 1, Fields: tt.fields}, reg)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
