// models/flight.go
package models

import (
	"time"
)

// StopKind classifies a node of a route string.
type StopKind int

const (
	StopLanded    StopKind = iota // plain code
	StopScheduled                 // "s" prefix: planned, never reached
	StopDiverted                  // "d" prefix: unplanned landing
)

func (k StopKind) String() string {
	switch k {
	case StopScheduled:
		return "scheduled"
	case StopDiverted:
		return "diverted"
	default:
		return "normal"
	}
}

// MarshalText lets stop kinds appear by name in the JSON dump.
func (k StopKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// RouteStop is one node of a route as written in the log, in display order.
// Scheduled stops appear here but never in Route.Segments.
type RouteStop struct {
	Airport *Airport `json:"airport"`
	Kind    StopKind `json:"kind"`
}

// Segment is one flown leg.
type Segment struct {
	Origin      *Airport `json:"origin"`
	Destination *Airport `json:"destination"`
}

// IsZeroLength reports whether the leg starts and ends at the same airport.
func (s Segment) IsZeroLength() bool {
	return s.Origin.Code == s.Destination.Code
}

// Route is the parsed form of a route string.
type Route struct {
	Raw      string      `json:"raw"`
	Stops    []RouteStop `json:"stops"`
	Segments []Segment   `json:"segments"`
}

// FlightRecord is one line of the flight log split into its key=value fields.
type FlightRecord struct {
	Line   int
	Fields map[string]string
}

// Flight is one entry of the flight log with its route resolved against the
// airport registry. Optional text fields are "" when absent.
type Flight struct {
	Date         time.Time `json:"date"`
	Desig        string    `json:"desig,omitempty"`
	Number       string    `json:"number,omitempty"`
	MktCxr       string    `json:"mkt_cxr,omitempty"`
	AdmCxr       string    `json:"adm_cxr,omitempty"`
	Type2        string    `json:"type2,omitempty"`
	Type3        string    `json:"type3,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	Registration string    `json:"registration,omitempty"`
	SeatType     string    `json:"seat_type,omitempty"`
	Cabin        string    `json:"cabin,omitempty"`
	Seat         string    `json:"seat,omitempty"`
	MSN          string    `json:"msn,omitempty"`
	LN           string    `json:"ln,omitempty"`
	FirstFlight  string    `json:"first_flight,omitempty"`
	NumEngines   string    `json:"num_engines,omitempty"`
	Engines      string    `json:"engines,omitempty"`
	STD          string    `json:"std,omitempty"`
	STA          string    `json:"sta,omitempty"`
	ATD          string    `json:"atd,omitempty"`
	ATA          string    `json:"ata,omitempty"`
	Pics         []string  `json:"pics,omitempty"`
	Price        string    `json:"price,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Gates        string    `json:"gates,omitempty"`
	Runways      string    `json:"runways,omitempty"`
	Fare         string    `json:"fare,omitempty"`
	ActualDist   string    `json:"actual_dist,omitempty"`
	Fleet        string    `json:"fleet,omitempty"`
	Plan         string    `json:"plan,omitempty"`
	Config       string    `json:"config,omitempty"`

	Route Route `json:"route"`
}

// FlightNumber is the designator followed by the number, e.g. "BA" + "117".
func (f *Flight) FlightNumber() string {
	return f.Desig + f.Number
}

// Operator is the administering carrier when it differs from the marketing one,
// otherwise "".
func (f *Flight) Operator() string {
	if f.AdmCxr != "" && f.AdmCxr != f.MktCxr {
		return f.AdmCxr
	}
	return ""
}
