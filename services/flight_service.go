// services/flight_service.go
package services

import (
	"strings"

	"github.com/gewnthar/flightmapper/models"
)

// BuildFlight turns a parsed log record into a Flight. The route is resolved
// against airports; a record without a route is a *models.EmptyRouteError and
// a missing or malformed date is a *models.MalformedDateError.
func BuildFlight(rec models.FlightRecord, airports AirportLookup) (*models.Flight, error) {
	field := func(key string) string { return strings.TrimSpace(rec.Fields[key]) }

	routeString := field("route")
	if routeString == "" {
		return nil, &models.EmptyRouteError{Route: routeString}
	}

	date, err := models.ParseLogDate(field("date"))
	if err != nil {
		return nil, err
	}

	route, err := ParseRoute(routeString, airports)
	if err != nil {
		return nil, err
	}

	f := &models.Flight{
		Date:         date,
		Desig:        field("desig"),
		Number:       field("number"),
		MktCxr:       field("mkt_cxr"),
		AdmCxr:       field("adm_cxr"),
		Type2:        field("type2"),
		Type3:        field("type3"),
		Manufacturer: field("manufacturer"),
		Registration: field("registration"),
		SeatType:     field("seat_type"),
		Cabin:        field("cabin"),
		Seat:         field("seat"),
		MSN:          field("msn"),
		LN:           field("ln"),
		FirstFlight:  field("first_flight"),
		NumEngines:   field("num_engines"),
		Engines:      field("engines"),
		STD:          field("std"),
		STA:          field("sta"),
		ATD:          field("atd"),
		ATA:          field("ata"),
		Price:        field("price"),
		Notes:        field("notes"),
		Gates:        field("gates"),
		Runways:      field("runways"),
		Fare:         field("fare"),
		ActualDist:   field("actual_dist"),
		Fleet:        field("fleet"),
		Plan:         field("plan"),
		Config:       field("config"),
		Route:        route,
	}

	if pics := field("pics"); pics != "" {
		for _, p := range strings.Split(pics, ";") {
			if p = strings.TrimSpace(p); p != "" {
				f.Pics = append(f.Pics, p)
			}
		}
	}

	if f.FirstFlight != "" {
		if _, _, err := models.ParsePartialDate("first_flight", f.FirstFlight); err != nil {
			return nil, err
		}
	}
	return f, nil
}
