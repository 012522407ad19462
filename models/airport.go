// models/airport.go
package models

import (
	"strconv"
	"strings"

	"github.com/skypies/geo"
)

// AirportRow represents one row of the airport reference table (airports.csv).
// Every column is read as text; AirportFromRow turns blanks into nil values
// and parses the numeric columns.
type AirportRow struct {
	Code      string `csv:"code"`
	Name      string `csv:"name"`
	Lat       string `csv:"lat"`
	Lon       string `csv:"lon"`
	IATA      string `csv:"iata"`
	ICAO      string `csv:"icao"`
	Elevation string `csv:"elevation"`
	City      string `csv:"city"`
	Region    string `csv:"region"`
	Country   string `csv:"country"`
	Continent string `csv:"continent"`
}

// Airport is an immutable airport record keyed by its internal code.
type Airport struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	IATA      *string  `json:"iata,omitempty"`
	ICAO      *string  `json:"icao,omitempty"`
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Elevation *float64 `json:"elevation,omitempty"`
	City      *string  `json:"city,omitempty"`
	Region    *string  `json:"region,omitempty"`
	Country   *string  `json:"country,omitempty"`
	Continent *string  `json:"continent,omitempty"`
}

// CountryUnitedStates is the country value whose airports are described by region (state).
const CountryUnitedStates = "United States"

// AirportFromRow converts a raw CSV row into an Airport.
// rowNum is the 1-based data row used in error messages.
func AirportFromRow(row AirportRow, rowNum int) (*Airport, error) {
	code := strings.TrimSpace(row.Code)
	if code == "" {
		return nil, &DataError{Row: rowNum, Field: "code", Message: "airport row has no code"}
	}

	lat, err := parseCoordinate(row.Lat)
	if err != nil {
		return nil, &DataError{Row: rowNum, Field: "lat", Value: row.Lat, Message: "invalid latitude for airport " + code}
	}
	lon, err := parseCoordinate(row.Lon)
	if err != nil {
		return nil, &DataError{Row: rowNum, Field: "lon", Value: row.Lon, Message: "invalid longitude for airport " + code}
	}

	a := &Airport{
		Code:      code,
		Name:      strings.TrimSpace(row.Name),
		Lat:       lat,
		Lon:       lon,
		IATA:      nullable(row.IATA),
		ICAO:      nullable(row.ICAO),
		City:      nullable(row.City),
		Region:    nullable(row.Region),
		Country:   nullable(row.Country),
		Continent: nullable(row.Continent),
	}

	if elev := strings.TrimSpace(row.Elevation); elev != "" {
		v, err := strconv.ParseFloat(elev, 64)
		if err != nil {
			return nil, &DataError{Row: rowNum, Field: "elevation", Value: row.Elevation, Message: "invalid elevation for airport " + code}
		}
		a.Elevation = &v
	}
	return a, nil
}

func parseCoordinate(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Latlong returns the airport position.
func (a *Airport) Latlong() geo.Latlong {
	return geo.Latlong{Lat: a.Lat, Long: a.Lon}
}

// ShortLabel is the IATA code, or the first three characters of the name
// followed by an ellipsis when the airport has no IATA code.
func (a *Airport) ShortLabel() string {
	if iata := Deref(a.IATA); iata != "" {
		return iata
	}
	name := []rune(a.Name)
	if len(name) > 3 {
		name = name[:3]
	}
	return string(name) + "…"
}

// SortLabel is the key the airports table sorts on: IATA, else the name.
func (a *Airport) SortLabel() string {
	if iata := Deref(a.IATA); iata != "" {
		return iata
	}
	return a.Name
}

// String renders "Name, City, Region" for US airports and "Name, City, Country"
// elsewhere, with the ICAO code appended in parentheses when known.
func (a *Airport) String() string {
	last := Deref(a.Country)
	if last == CountryUnitedStates {
		last = Deref(a.Region)
	}
	s := a.Name + ", " + Deref(a.City) + ", " + last
	if icao := Deref(a.ICAO); icao != "" {
		s += " (" + icao + ")"
	}
	return s
}
