// utils/cities.go
package utils

import "fmt"

// CityGroup is a metropolitan area code with the airports that serve it.
type CityGroup struct {
	Code     string
	Name     string
	Airports []string
}

// CityTable maps airport codes to city groups. It is read-only once built.
type CityTable struct {
	groups    []CityGroup
	byCode    map[string]int
	byAirport map[string]string
}

// NewCityTable builds a table from groups. An airport may belong to one city only.
func NewCityTable(groups []CityGroup) (*CityTable, error) {
	t := &CityTable{
		groups:    make([]CityGroup, 0, len(groups)),
		byCode:    make(map[string]int, len(groups)),
		byAirport: make(map[string]string),
	}
	for _, g := range groups {
		if g.Code == "" {
			return nil, fmt.Errorf("city group with name %q has no code", g.Name)
		}
		if _, dup := t.byCode[g.Code]; dup {
			return nil, fmt.Errorf("duplicate city group %s", g.Code)
		}
		airports := append([]string(nil), g.Airports...)
		for _, a := range airports {
			if other, dup := t.byAirport[a]; dup {
				return nil, fmt.Errorf("airport %s is in both %s and %s", a, other, g.Code)
			}
			t.byAirport[a] = g.Code
		}
		t.byCode[g.Code] = len(t.groups)
		t.groups = append(t.groups, CityGroup{Code: g.Code, Name: g.Name, Airports: airports})
	}
	return t, nil
}

// CityFor returns the city code an airport belongs to.
func (t *CityTable) CityFor(airportCode string) (string, bool) {
	c, ok := t.byAirport[airportCode]
	return c, ok
}

// Group returns the city group for a city code.
func (t *CityTable) Group(cityCode string) (CityGroup, bool) {
	i, ok := t.byCode[cityCode]
	if !ok {
		return CityGroup{}, false
	}
	return t.groups[i], true
}

// Len is the number of city groups.
func (t *CityTable) Len() int { return len(t.groups) }

// DefaultCityGroups is the built-in metropolitan table.
func DefaultCityGroups() []CityGroup {
	return []CityGroup{
		{"LON", "London", []string{"LHR", "LGW", "LCY", "LTN", "STN", "SEN", "BQH"}},
		{"MOW", "Moscow", []string{"SVO", "DME", "VKO"}},
		{"MIL", "Milan", []string{"MXP", "LIN"}},
		{"PAR", "Paris", []string{"CDG", "ORY", "LBG"}},
		{"ROM", "Rome", []string{"FCO", "CIA"}},
		{"STO", "Stockholm", []string{"ARN", "BMA", "NYO"}},
		{"CHI", "Chicago", []string{"ORD", "MDW"}},
		{"QDF", "Dallas-Fort Worth", []string{"DFW", "DAL"}},
		{"QHO", "Houston", []string{"IAH", "HOU"}},
		{"QLA", "Los Angeles", []string{"LAX", "ONT", "SNA", "BUR", "LGB"}},
		{"QMI", "Miami", []string{"MIA", "FLL", "PBI"}},
		{"NYC", "New York City", []string{"JFK", "LGA", "EWR"}},
		{"QSF", "San Francisco", []string{"SFO", "SJC", "OAK"}},
		{"WAS", "Washington DC", []string{"IAD", "DCA", "BWI"}},
		{"BJS", "Beijing", []string{"PEK", "NAY"}},
		{"OSA", "Osaka", []string{"KIX", "ITM", "UKB"}},
		{"SEL", "Seoul", []string{"ICN", "GMP"}},
		{"REK", "Reykjavík", []string{"KEF", "RKV"}},
		{"YTO", "Toronto", []string{"YYZ", "YTZ"}},
	}
}

// DefaultCityTable returns the table built from DefaultCityGroups.
func DefaultCityTable() *CityTable {
	t, err := NewCityTable(DefaultCityGroups())
	if err != nil {
		panic(err) // static data
	}
	return t
}
