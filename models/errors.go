// models/errors.go
package models

import "fmt"

// DataError reports a malformed or duplicate row in one of the input tables.
type DataError struct {
	Row     int // 1-based data row or log line, 0 when unknown
	Field   string
	Value   string
	Message string
}

func (e *DataError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: %s", e.Row, e.Message)
	}
	return e.Message
}

// UnknownAirportError is returned when a code is not in the airport registry.
type UnknownAirportError struct {
	Code string
}

func (e *UnknownAirportError) Error() string {
	return fmt.Sprintf("unknown airport code %q", e.Code)
}

// EmptyRouteError is returned when a route string yields no flown segment.
type EmptyRouteError struct {
	Route string
}

func (e *EmptyRouteError) Error() string {
	return fmt.Sprintf("route %q has no flown segments", e.Route)
}

// MalformedDateError is returned for a date field that is not in the expected shape.
type MalformedDateError struct {
	Field string
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed %s %q", e.Field, e.Value)
}

// NoSegmentsError is returned by aggregate queries that need at least one
// non-zero-length segment (means, superlatives).
type NoSegmentsError struct {
	Operation string
}

func (e *NoSegmentsError) Error() string {
	return fmt.Sprintf("%s: no flown segments", e.Operation)
}
