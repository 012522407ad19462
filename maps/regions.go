// maps/regions.go
package maps

import (
	"fmt"
	"sort"

	"github.com/skypies/geo"
)

// Region is a rectangular lat/long window rendered as one map page.
type Region struct {
	Name   string
	Box    geo.LatlongBox
	Labels bool // draw airport code labels
}

var regions = map[string]Region{
	"earth": {
		Name: "earth",
		Box:  geo.LatlongBox{SW: geo.Latlong{Lat: -65, Long: -180}, NE: geo.Latlong{Lat: 80, Long: 180}},
	},
	"europe": {
		Name:   "europe",
		Box:    geo.LatlongBox{SW: geo.Latlong{Lat: 35.5, Long: -24}, NE: geo.Latlong{Lat: 71.5, Long: 30}},
		Labels: true,
	},
	"america": {
		Name:   "america",
		Box:    geo.LatlongBox{SW: geo.Latlong{Lat: 16.5, Long: -160}, NE: geo.Latlong{Lat: 62, Long: -58}},
		Labels: true,
	},
}

// LookupRegion returns a named region.
func LookupRegion(name string) (Region, error) {
	r, ok := regions[name]
	if !ok {
		return Region{}, fmt.Errorf("unknown map region %q (have %v)", name, RegionNames())
	}
	return r, nil
}

// RegionNames lists the known regions.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FileName is the output file for a region, e.g. "europe.pdf".
func (r Region) FileName() string { return r.Name + ".pdf" }
