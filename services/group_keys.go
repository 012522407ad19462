// services/group_keys.go
package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gewnthar/flightmapper/models"
)

// FlightKeyFunc extracts the grouping value of a flight. "" means "no value".
type FlightKeyFunc func(f *models.Flight) string

// AirportKeyFunc extracts the grouping value of an airport.
type AirportKeyFunc func(a *models.Airport) string

var flightKeys = map[string]FlightKeyFunc{
	"carrier":      func(f *models.Flight) string { return f.MktCxr },
	"mkt_cxr":      func(f *models.Flight) string { return f.MktCxr },
	"adm_cxr":      func(f *models.Flight) string { return f.AdmCxr },
	"manufacturer": func(f *models.Flight) string { return f.Manufacturer },
	"type2":        func(f *models.Flight) string { return f.Type2 },
	"type3":        func(f *models.Flight) string { return f.Type3 },
	"airplane":     airplaneKey,
	"registration": func(f *models.Flight) string { return f.Registration },
	"cabin":        func(f *models.Flight) string { return f.Cabin },
	"seat_type":    func(f *models.Flight) string { return f.SeatType },
	"year":         func(f *models.Flight) string { return strconv.Itoa(f.Date.Year()) },
}

var airportKeys = map[string]AirportKeyFunc{
	"code":      func(a *models.Airport) string { return a.Code },
	"iata":      func(a *models.Airport) string { return models.Deref(a.IATA) },
	"icao":      func(a *models.Airport) string { return models.Deref(a.ICAO) },
	"name":      func(a *models.Airport) string { return a.Name },
	"city":      func(a *models.Airport) string { return models.Deref(a.City) },
	"region":    func(a *models.Airport) string { return models.Deref(a.Region) },
	"country":   func(a *models.Airport) string { return models.Deref(a.Country) },
	"continent": func(a *models.Airport) string { return models.Deref(a.Continent) },
}

// airplaneKey joins manufacturer and type2, e.g. "Boeing 737".
func airplaneKey(f *models.Flight) string {
	return strings.TrimSpace(f.Manufacturer + " " + f.Type2)
}

// FlightKey returns the named flight grouping key.
func FlightKey(name string) (FlightKeyFunc, error) {
	fn, ok := flightKeys[name]
	if !ok {
		return nil, fmt.Errorf("unknown flight grouping key %q", name)
	}
	return fn, nil
}

// AirportKey returns the named airport attribute.
func AirportKey(name string) (AirportKeyFunc, error) {
	fn, ok := airportKeys[name]
	if !ok {
		return nil, fmt.Errorf("unknown airport attribute %q", name)
	}
	return fn, nil
}

// FlightKeyNames lists the registered flight grouping keys.
func FlightKeyNames() []string { return sortedKeys(flightKeys) }

// AirportKeyNames lists the registered airport attributes.
func AirportKeyNames() []string { return sortedKeys(airportKeys) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
