// models/stats.go
package models

// Tally holds the headline counts of a flight collection.
type Tally struct {
	Flights             int     `json:"flights"`
	UniqueAirports      int     `json:"unique_airports"`
	UniqueAirplaneTypes int     `json:"unique_airplane_types"`
	Segments            int     `json:"segments"` // non-zero-length only
	TotalDistance       float64 `json:"total_distance_mi"`
	MeanSegmentDistance float64 `json:"mean_segment_distance_mi"`
}

// SegmentDistance pairs a segment with its great-circle length in statute miles.
type SegmentDistance struct {
	Segment  Segment `json:"segment"`
	Distance float64 `json:"distance_mi"`
}

// Superlatives are the extremal records of a flight collection.
type Superlatives struct {
	Longest      SegmentDistance `json:"longest"`
	Shortest     SegmentDistance `json:"shortest"`
	Northernmost *Airport        `json:"northernmost"`
	Southernmost *Airport        `json:"southernmost"`
}

// GroupCount is one row of a grouped table.
type GroupCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// AirportCount is one row of the airports table.
type AirportCount struct {
	Airport *Airport `json:"airport"`
	Count   int      `json:"count"`
}

// CityCount is one row of the cities table. Members lists every airport of
// the city group, in table order, with its visit count (possibly 0).
type CityCount struct {
	Code    string       `json:"code"`
	Name    string       `json:"name"`
	Count   int          `json:"count"`
	Members []GroupCount `json:"members"`
}

// DropdownGroup is a top-level row of a two-level table. HasSubtable is false
// when every second-level value in the bucket was empty; Sub is then nil.
type DropdownGroup struct {
	GroupCount
	HasSubtable bool         `json:"has_subtable"`
	Sub         []GroupCount `json:"sub,omitempty"`
}
