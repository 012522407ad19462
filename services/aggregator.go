// services/aggregator.go
package services

import (
	"sort"

	"github.com/gewnthar/flightmapper/models"
	"github.com/gewnthar/flightmapper/utils"
)

// Aggregator answers statistics queries over an ingested flight collection.
// Every query is computed on demand and leaves the flights untouched.
type Aggregator struct {
	flights []*models.Flight
	cities  *utils.CityTable
}

// NewAggregator wraps flights in log order. cities may be nil, in which case
// the city rollup is empty.
func NewAggregator(flights []*models.Flight, cities *utils.CityTable) *Aggregator {
	return &Aggregator{flights: flights, cities: cities}
}

// Flights returns the flights in log order.
func (ag *Aggregator) Flights() []*models.Flight { return ag.flights }

// flownSegments returns the non-zero-length segments in flight order, then route order.
func (ag *Aggregator) flownSegments() []models.Segment {
	var segments []models.Segment
	for _, f := range ag.flights {
		for _, s := range f.Route.Segments {
			if !s.IsZeroLength() {
				segments = append(segments, s)
			}
		}
	}
	return segments
}

// visits lists, per flight, the origin of the first segment and the destination
// of every segment. Each airport appears once per time it was reached.
func (ag *Aggregator) visits() []*models.Airport {
	var out []*models.Airport
	for _, f := range ag.flights {
		segs := f.Route.Segments
		if len(segs) == 0 {
			continue
		}
		out = append(out, segs[0].Origin)
		for _, s := range segs {
			out = append(out, s.Destination)
		}
	}
	return out
}

// VisitedAirports returns each visited airport once, in order of first visit.
func (ag *Aggregator) VisitedAirports() []*models.Airport {
	seen := map[string]bool{}
	var out []*models.Airport
	for _, a := range ag.visits() {
		if !seen[a.Code] {
			seen[a.Code] = true
			out = append(out, a)
		}
	}
	return out
}

// TotalDistance sums the great-circle length of every non-zero-length segment.
func (ag *Aggregator) TotalDistance() float64 {
	total := 0.0
	for _, s := range ag.flownSegments() {
		total += SegmentMiles(s)
	}
	return total
}

// MeanSegmentDistance is TotalDistance over the number of non-zero-length segments.
func (ag *Aggregator) MeanSegmentDistance() (float64, error) {
	n := len(ag.flownSegments())
	if n == 0 {
		return 0, &models.NoSegmentsError{Operation: "mean segment distance"}
	}
	return ag.TotalDistance() / float64(n), nil
}

// Tally computes the headline counts.
func (ag *Aggregator) Tally() (models.Tally, error) {
	mean, err := ag.MeanSegmentDistance()
	if err != nil {
		return models.Tally{}, err
	}

	types := map[string]bool{}
	for _, f := range ag.flights {
		types[f.Type2] = true
	}

	return models.Tally{
		Flights:             len(ag.flights),
		UniqueAirports:      len(ag.VisitedAirports()),
		UniqueAirplaneTypes: len(types),
		Segments:            len(ag.flownSegments()),
		TotalDistance:       ag.TotalDistance(),
		MeanSegmentDistance: mean,
	}, nil
}

// Superlatives finds the longest and shortest non-zero-length segments (the
// first one encountered wins a tie) and the northernmost and southernmost
// visited airports (ties go to the lower code).
func (ag *Aggregator) Superlatives() (models.Superlatives, error) {
	segments := ag.flownSegments()
	if len(segments) == 0 {
		return models.Superlatives{}, &models.NoSegmentsError{Operation: "superlatives"}
	}

	var sup models.Superlatives
	for i, s := range segments {
		d := SegmentMiles(s)
		if i == 0 || d > sup.Longest.Distance {
			sup.Longest = models.SegmentDistance{Segment: s, Distance: d}
		}
		if i == 0 || d < sup.Shortest.Distance {
			sup.Shortest = models.SegmentDistance{Segment: s, Distance: d}
		}
	}

	for _, a := range ag.VisitedAirports() {
		if sup.Northernmost == nil || a.Lat > sup.Northernmost.Lat ||
			(a.Lat == sup.Northernmost.Lat && a.Code < sup.Northernmost.Code) {
			sup.Northernmost = a
		}
		if sup.Southernmost == nil || a.Lat < sup.Southernmost.Lat ||
			(a.Lat == sup.Southernmost.Lat && a.Code < sup.Southernmost.Code) {
			sup.Southernmost = a
		}
	}
	return sup, nil
}

// sortGroupCounts orders by count descending, then value ascending.
func sortGroupCounts(counts []models.GroupCount) {
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Value < counts[j].Value
	})
}

func countValues(values []string) []models.GroupCount {
	index := map[string]int{}
	var counts []models.GroupCount
	for _, v := range values {
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, models.GroupCount{Value: v})
		}
		counts[i].Count++
	}
	sortGroupCounts(counts)
	return counts
}

// GroupFlightsBy counts flights per key value. Flights without a value are
// counted under "", so the counts always add up to the number of flights.
func (ag *Aggregator) GroupFlightsBy(key FlightKeyFunc) []models.GroupCount {
	values := make([]string, 0, len(ag.flights))
	for _, f := range ag.flights {
		values = append(values, key(f))
	}
	return countValues(values)
}

// GroupFlights counts flights per value of a registered key.
func (ag *Aggregator) GroupFlights(keyName string) ([]models.GroupCount, error) {
	key, err := FlightKey(keyName)
	if err != nil {
		return nil, err
	}
	return ag.GroupFlightsBy(key), nil
}

// AirportVisits counts visits per airport, sorted by count descending then by
// IATA code (or name when there is none), then by internal code.
func (ag *Aggregator) AirportVisits() []models.AirportCount {
	index := map[string]int{}
	var counts []models.AirportCount
	for _, a := range ag.visits() {
		i, ok := index[a.Code]
		if !ok {
			i = len(counts)
			index[a.Code] = i
			counts = append(counts, models.AirportCount{Airport: a})
		}
		counts[i].Count++
	}
	sort.Slice(counts, func(i, j int) bool {
		a, b := counts[i], counts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if la, lb := a.Airport.SortLabel(), b.Airport.SortLabel(); la != lb {
			return la < lb
		}
		return a.Airport.Code < b.Airport.Code
	})
	return counts
}

// AirportRestriction keeps only airports whose attribute equals Value.
type AirportRestriction struct {
	Attribute string
	Value     string
}

// GroupAirports counts visits per value of an airport attribute, optionally
// restricted, e.g. region where country is "United States".
func (ag *Aggregator) GroupAirports(attribute string, restrict *AirportRestriction) ([]models.GroupCount, error) {
	key, err := AirportKey(attribute)
	if err != nil {
		return nil, err
	}
	var filter AirportKeyFunc
	if restrict != nil {
		if filter, err = AirportKey(restrict.Attribute); err != nil {
			return nil, err
		}
	}

	var values []string
	for _, a := range ag.visits() {
		if filter != nil && filter(a) != restrict.Value {
			continue
		}
		values = append(values, key(a))
	}
	return countValues(values), nil
}

// CityRollup adds airport visit counts into their city groups. Airports that
// belong to no group are dropped. Members carry the per-airport counts of
// every airport in the group, unvisited ones included.
func (ag *Aggregator) CityRollup() []models.CityCount {
	if ag.cities == nil {
		return nil
	}

	perAirport := map[string]int{}
	index := map[string]int{}
	var rollup []models.CityCount
	for _, ac := range ag.AirportVisits() {
		member := ac.Airport.Code
		code, ok := ag.cities.CityFor(member)
		if !ok {
			member = models.Deref(ac.Airport.IATA)
			if code, ok = ag.cities.CityFor(member); !ok {
				continue
			}
		}
		group, _ := ag.cities.Group(code)
		perAirport[member] += ac.Count

		i, seen := index[code]
		if !seen {
			i = len(rollup)
			index[code] = i
			rollup = append(rollup, models.CityCount{Code: code, Name: group.Name})
		}
		rollup[i].Count += ac.Count
	}

	for i := range rollup {
		group, _ := ag.cities.Group(rollup[i].Code)
		for _, member := range group.Airports {
			rollup[i].Members = append(rollup[i].Members, models.GroupCount{Value: member, Count: perAirport[member]})
		}
	}

	sort.Slice(rollup, func(i, j int) bool {
		if rollup[i].Count != rollup[j].Count {
			return rollup[i].Count > rollup[j].Count
		}
		return rollup[i].Code < rollup[j].Code
	})
	return rollup
}

// Dropdown groups flights by key1, then groups each bucket by key2 leaving out
// empty key2 values. A bucket whose key2 values are all empty has no subtable.
func (ag *Aggregator) Dropdown(key1, key2 FlightKeyFunc) []models.DropdownGroup {
	top := ag.GroupFlightsBy(key1)
	groups := make([]models.DropdownGroup, 0, len(top))
	for _, gc := range top {
		var sub []string
		for _, f := range ag.flights {
			if key1(f) != gc.Value {
				continue
			}
			if v := key2(f); v != "" {
				sub = append(sub, v)
			}
		}
		g := models.DropdownGroup{GroupCount: gc}
		if len(sub) > 0 {
			g.HasSubtable = true
			g.Sub = countValues(sub)
		}
		groups = append(groups, g)
	}
	return groups
}

// DropdownByName is Dropdown over two registered flight keys.
func (ag *Aggregator) DropdownByName(key1, key2 string) ([]models.DropdownGroup, error) {
	k1, err := FlightKey(key1)
	if err != nil {
		return nil, err
	}
	k2, err := FlightKey(key2)
	if err != nil {
		return nil, err
	}
	return ag.Dropdown(k1, k2), nil
}
