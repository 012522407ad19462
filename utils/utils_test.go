package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAirportCode(t *testing.T) {
	assert.Equal(t, "LHR", NormalizeAirportCode("  LHR\t"))
	assert.Equal(t, "lhr", NormalizeAirportCode("lhr"))
}

func TestExpandEngines(t *testing.T) {
	tests := map[string]string{
		"CFMI CFM56-7B26": "CFM International CFM56-7B26",
		"RR":              "Rolls Royce",
		"PW 4056":         "Pratt & Whitney 4056",
		"Kuznetsov NK-8":  "Kuznetsov NK-8",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ExpandEngines(in), in)
	}
}

func TestDefaultCityTable(t *testing.T) {
	table := DefaultCityTable()
	assert.Equal(t, len(DefaultCityGroups()), table.Len())

	city, ok := table.CityFor("EWR")
	require.True(t, ok)
	assert.Equal(t, "NYC", city)

	group, ok := table.Group("LON")
	require.True(t, ok)
	assert.Equal(t, "London", group.Name)
	assert.Equal(t, "LHR", group.Airports[0])

	_, ok = table.CityFor("BOS")
	assert.False(t, ok)
	_, ok = table.Group("XXX")
	assert.False(t, ok)
}

func TestNewCityTableRejectsBadGroups(t *testing.T) {
	tests := map[string][]CityGroup{
		"missing code":   {{Name: "Nowhere"}},
		"duplicate city": {{Code: "A"}, {Code: "A"}},
		"shared airport": {{Code: "A", Airports: []string{"X"}}, {Code: "B", Airports: []string{"X"}}},
	}
	for name, groups := range tests {
		_, err := NewCityTable(groups)
		assert.Error(t, err, name)
	}
}

func TestCityTableCopiesInput(t *testing.T) {
	groups := []CityGroup{{Code: "A", Name: "Alpha", Airports: []string{"X", "Y"}}}
	table, err := NewCityTable(groups)
	require.NoError(t, err)

	groups[0].Airports[0] = "Z"
	g, _ := table.Group("A")
	assert.Equal(t, []string{"X", "Y"}, g.Airports)
}
