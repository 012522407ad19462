// report/stats.go
package report

import (
	"fmt"

	"github.com/gewnthar/flightmapper/models"
	"github.com/gewnthar/flightmapper/services"
)

// Stats is everything the report shows apart from the log itself.
type Stats struct {
	Tally               models.Tally           `json:"tally"`
	EarthCircumferences float64                `json:"earth_circumferences"`
	Superlatives        models.Superlatives    `json:"superlatives"`
	Airplanes           []models.GroupCount    `json:"airplanes"`
	Airlines            []models.DropdownGroup `json:"airlines"`
	Manufacturers       []models.GroupCount    `json:"manufacturers"`
	Airports            []models.AirportCount  `json:"airports"`
	Cities              []models.CityCount     `json:"cities"`
	States              []models.GroupCount    `json:"american_states"`
	Countries           []models.GroupCount    `json:"countries"`
	Continents          []models.GroupCount    `json:"continents"`
}

// BuildStats runs every query the report needs. It fails with
// *models.NoSegmentsError when nothing was actually flown.
func BuildStats(ag *services.Aggregator) (*Stats, error) {
	tally, err := ag.Tally()
	if err != nil {
		return nil, err
	}
	sup, err := ag.Superlatives()
	if err != nil {
		return nil, err
	}

	s := &Stats{
		Tally:               tally,
		EarthCircumferences: tally.TotalDistance / services.EarthCircumferenceMiles,
		Superlatives:        sup,
		Airports:            ag.AirportVisits(),
		Cities:              ag.CityRollup(),
	}

	if s.Airplanes, err = ag.GroupFlights("airplane"); err != nil {
		return nil, err
	}
	if s.Manufacturers, err = ag.GroupFlights("manufacturer"); err != nil {
		return nil, err
	}
	if s.Airlines, err = ag.DropdownByName("mkt_cxr", "adm_cxr"); err != nil {
		return nil, err
	}

	us := &services.AirportRestriction{Attribute: "country", Value: models.CountryUnitedStates}
	if s.States, err = ag.GroupAirports("region", us); err != nil {
		return nil, err
	}
	if s.Countries, err = ag.GroupAirports("country", nil); err != nil {
		return nil, err
	}
	if s.Continents, err = ag.GroupAirports("continent", nil); err != nil {
		return nil, err
	}
	return s, nil
}

// Summary is a one-line description for the log.
func (s *Stats) Summary() string {
	return fmt.Sprintf("%d flights, %d airports, %s (%.2f × around the Earth)",
		s.Tally.Flights, s.Tally.UniqueAirports, Miles(s.Tally.TotalDistance), s.EarthCircumferences)
}
