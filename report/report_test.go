package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewnthar/flightmapper/models"
	"github.com/gewnthar/flightmapper/services"
	"github.com/gewnthar/flightmapper/utils"
)

var reportRows = []models.AirportRow{
	{Code: "LHR", Name: "Heathrow", Lat: "51.4706", Lon: "-0.461941", IATA: "LHR", ICAO: "EGLL", City: "London", Country: "United Kingdom", Continent: "Europe"},
	{Code: "JFK", Name: "John F Kennedy Intl", Lat: "40.6398", Lon: "-73.7789", IATA: "JFK", ICAO: "KJFK", City: "New York", Region: "New York", Country: "United States", Continent: "North America"},
	{Code: "BOS", Name: "Logan Intl", Lat: "42.3643", Lon: "-71.0052", IATA: "BOS", ICAO: "KBOS", City: "Boston", Region: "Massachusetts", Country: "United States", Continent: "North America"},
	{Code: "ORD", Name: "O'Hare Intl", Lat: "41.9786", Lon: "-87.9048", IATA: "ORD", ICAO: "KORD", City: "Chicago", Region: "Illinois", Country: "United States", Continent: "North America"},
	{Code: "X01", Name: "Grass Strip", Lat: "52", Lon: "0"},
}

const reportLog = `route=LHR-sJFK-dBOS-ORD,date=20190302,desig=BA,number=297,mkt_cxr=British Airways,adm_cxr=British Airways,manufacturer=Boeing,type2=777,type3=777-200ER,registration=G-YMMA,first_flight=1999,seat=15K,seat_type=window,cabin=economy,engines=RR Trent 895,num_engines=2,pics=a.jpg
route=ORD-JFK,date=20190310,desig=AA,number=4402,mkt_cxr=American,adm_cxr=Envoy,manufacturer=Embraer,type2=E175,std=0710
route=JFK-LHR,date=20190312,mkt_cxr=American,manufacturer=Boeing,type2=777,msn=30306
route=LHR-X01,date=20190401,mkt_cxr=Private
`

func buildTestStats(t *testing.T) (*Stats, []*models.Flight) {
	t.Helper()
	reg, err := services.NewAirportRegistry(reportRows)
	require.NoError(t, err)
	result, err := services.IngestFlightLog(strings.NewReader(reportLog), reg, "abort", nil)
	require.NoError(t, err)

	stats, err := BuildStats(services.NewAggregator(result.Flights, utils.DefaultCityTable()))
	require.NoError(t, err)
	return stats, result.Flights
}

func renderTestPage(t *testing.T) *goquery.Document {
	t.Helper()
	stats, flights := buildTestStats(t)
	page, err := NewPage(stats, flights, []string{"earth.pdf"}, time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, page))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func tableRows(doc *goquery.Document, title string) [][]string {
	var rows [][]string
	doc.Find(`table[data-table="` + title + `"] tr.row`).Each(func(_ int, s *goquery.Selection) {
		var cells []string
		s.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		rows = append(rows, cells)
	})
	return rows
}

func TestBuildStats(t *testing.T) {
	stats, _ := buildTestStats(t)

	assert.Equal(t, 4, stats.Tally.Flights)
	assert.Equal(t, 5, stats.Tally.UniqueAirports)
	assert.Equal(t, 5, stats.Tally.Segments)
	assert.InDelta(t, stats.Tally.TotalDistance/services.EarthCircumferenceMiles, stats.EarthCircumferences, 1e-12)
	assert.Equal(t, "X01", stats.Superlatives.Northernmost.Code)
	assert.Equal(t, "JFK", stats.Superlatives.Southernmost.Code)

	require.Len(t, stats.Cities, 3)
	assert.Equal(t, "LON", stats.Cities[0].Code)
	assert.Equal(t, 3, stats.Cities[0].Count)
}

func TestStatsNeedFlownSegments(t *testing.T) {
	_, err := BuildStats(services.NewAggregator(nil, nil))
	var noSeg *models.NoSegmentsError
	assert.ErrorAs(t, err, &noSeg)
}

func TestHTMLTables(t *testing.T) {
	doc := renderTestPage(t)

	assert.Equal(t, [][]string{
		{"Boeing 777", "2"},
		{"unknown", "1"},
		{"Embraer E175", "1"},
	}, tableRows(doc, "Airplanes"))

	assert.Equal(t, [][]string{
		{"United States", "5"},
		{"United Kingdom", "3"},
		{"unknown", "1"},
	}, tableRows(doc, "Countries"))

	assert.Equal(t, [][]string{
		{"Illinois", "2"},
		{"New York", "2"},
		{"Massachusetts", "1"},
	}, tableRows(doc, "American states"))

	airports := tableRows(doc, "Airports")
	require.Len(t, airports, 5)
	assert.Equal(t, []string{"LHR", "3"}, airports[0])
	assert.Equal(t, []string{"JFK", "2"}, airports[1])
	assert.Equal(t, []string{"Gra…", "1"}, airports[4])

	assert.Equal(t, [][]string{{"LON", "3"}, {"CHI", "2"}, {"NYC", "2"}}, tableRows(doc, "Cities"))
	title, _ := doc.Find(`table[data-table="Cities"] tr.row abbr`).Last().Attr("title")
	assert.Equal(t, "New York City: JFK (2), LGA (0), EWR (0)", title)
}

func TestHTMLAirlinesDropdown(t *testing.T) {
	doc := renderTestPage(t)
	table := doc.Find(`table[data-table="Airlines"]`)

	dropdowns := table.Find("tr.dropdown")
	require.Equal(t, 2, dropdowns.Length())
	american := dropdowns.First()
	assert.Contains(t, american.Find("td").First().Text(), "American")
	sub, _ := american.Attr("data-sub")
	assert.Equal(t, "1", sub)
	assert.Contains(t, american.Next().Text(), "Envoy")

	// Every Private flight lacks adm_cxr, so that row does not expand.
	plain := table.Find("tr.row").Not(".dropdown")
	require.Equal(t, 1, plain.Length())
	assert.Contains(t, plain.Text(), "Private")
	assert.Equal(t, 2, table.Find("tr.subrow").Length())
}

func TestHTMLRouteMarkup(t *testing.T) {
	doc := renderTestPage(t)
	route := doc.Find("#f0-row td.route")

	abbrs := route.Find("abbr")
	require.Equal(t, 4, abbrs.Length())
	assert.Equal(t, "LHR", abbrs.Eq(0).Text())

	scheduled := route.Find("span.scheduled")
	assert.Equal(t, "JFK", scheduled.Text())
	title, _ := scheduled.Parent().Attr("title")
	assert.Equal(t, "John F Kennedy Intl, New York, New York (KJFK) (scheduled)", title)

	assert.Equal(t, "BOS", route.Find("span.diverted").Text())
	assert.Contains(t, route.Text(), "↴")
	assert.Contains(t, route.Text(), "→")
	assert.Equal(t, 2, route.Find("br").Length())
}

func TestHTMLLogDetails(t *testing.T) {
	doc := renderTestPage(t)

	first := doc.Find("#f0-row td")
	assert.Equal(t, "2019 Mar 02", first.Eq(0).Text())
	assert.Equal(t, "BA297", first.Eq(1).Text())
	assert.Equal(t, "British Airways", first.Eq(3).Text())
	assert.Equal(t, "Boeing 777-200ER (G-YMMA)", first.Eq(4).Text())

	details := map[string]string{}
	doc.Find("#f0 table.bare tr").Each(func(_ int, s *goquery.Selection) {
		details[s.Find("td").Eq(0).Text()] = s.Find("td").Eq(1).Text()
	})
	assert.Equal(t, "15K (window, economy)", details["seat"])
	assert.Equal(t, "25 years", details["airplane age"])
	assert.Equal(t, "1999", details["first flight"])
	assert.Equal(t, "2 × Rolls Royce Trent 895", details["engines"])
	assert.Contains(t, details["gc distance"], " mi")

	second := doc.Find("#f1-row td")
	assert.Equal(t, "American (operated by Envoy)", second.Eq(3).Text())

	var departure string
	doc.Find("#f1 table.bare tr").Each(func(_ int, s *goquery.Selection) {
		if s.Find("td").Eq(0).Text() == "std/sta" {
			departure = s.Find("td").Eq(1).Text()
		}
	})
	assert.Equal(t, "0710/", departure)
}

func TestWriteStatsJSON(t *testing.T) {
	stats, _ := buildTestStats(t)

	path := filepath.Join(t.TempDir(), "out", "stats.json")
	require.NoError(t, WriteStatsJSONFile(path, stats))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "tally")
	assert.Contains(t, decoded, "american_states")
	tally := decoded["tally"].(map[string]any)
	assert.Equal(t, 4.0, tally["flights"])
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "3451 mi", Miles(3450.6))
	assert.Equal(t, "12.3 mi", MilesTenths(12.34))
	assert.Equal(t, "51.47°", Latitude(51.4706))
	assert.Equal(t, "−33.95°", Latitude(-33.9461))
	assert.Equal(t, "unknown", Label(""))
}
