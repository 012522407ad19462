// services/route_parser.go
package services

import (
	"fmt"
	"strings"

	"github.com/gewnthar/flightmapper/models"
	"github.com/gewnthar/flightmapper/utils"
)

// Route token prefixes. A prefixed token is exactly one prefix letter plus a
// 3-character code; anything else is read as a plain code.
const (
	scheduledPrefix = 's'
	divertedPrefix  = 'd'
	prefixedLen     = 4
)

// classifyRouteToken splits a non-origin route token into its kind and code.
func classifyRouteToken(token string) (models.StopKind, string) {
	if len(token) == prefixedLen {
		switch token[0] {
		case scheduledPrefix:
			return models.StopScheduled, token[1:]
		case divertedPrefix:
			return models.StopDiverted, token[1:]
		}
	}
	return models.StopLanded, token
}

// ParseRoute turns a hyphenated route string such as "LHR-sJFK-dBOS-ORD" into
// flown segments and display stops.
//
// The first token is the origin. Plain and diverted ("d") tokens are landings:
// each adds a segment from the previous landing and becomes the new previous
// landing. Scheduled ("s") tokens were never reached; they are kept in Stops
// for display and do not move the previous landing.
//
// Any unresolvable code fails the whole route with *models.UnknownAirportError.
// A blank route or one without a flown segment is a *models.EmptyRouteError;
// an empty token such as in "AAA--BBB" is a *models.DataError.
func ParseRoute(routeString string, airports AirportLookup) (models.Route, error) {
	trimmed := strings.TrimSpace(routeString)
	if trimmed == "" {
		return models.Route{}, &models.EmptyRouteError{Route: routeString}
	}
	tokens := strings.Split(trimmed, "-")
	for i, token := range tokens {
		if strings.TrimSpace(token) == "" {
			return models.Route{}, &models.DataError{Field: "route", Value: routeString,
				Message: fmt.Sprintf("empty airport code at position %d", i+1)}
		}
	}

	origin, err := airports.Lookup(utils.NormalizeAirportCode(tokens[0]))
	if err != nil {
		return models.Route{}, err
	}

	route := models.Route{
		Raw:   routeString,
		Stops: []models.RouteStop{{Airport: origin, Kind: models.StopLanded}},
	}

	previous := origin
	for _, token := range tokens[1:] {
		kind, code := classifyRouteToken(utils.NormalizeAirportCode(token))

		airport, err := airports.Lookup(code)
		if err != nil {
			return models.Route{}, err
		}
		route.Stops = append(route.Stops, models.RouteStop{Airport: airport, Kind: kind})

		if kind == models.StopScheduled {
			continue
		}
		route.Segments = append(route.Segments, models.Segment{Origin: previous, Destination: airport})
		previous = airport
	}

	if len(route.Segments) == 0 {
		return models.Route{}, &models.EmptyRouteError{Route: routeString}
	}
	return route, nil
}
