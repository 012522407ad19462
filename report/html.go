// report/html.go
package report

import (
	"fmt"
	"html"
	"html/template"
	"io"
	"log"
	"time"

	"github.com/gewnthar/flightmapper/models"
	"github.com/gewnthar/flightmapper/services"
)

// CountRow is one row of a two-column tally table.
type CountRow struct {
	Label template.HTML
	Count int
}

// CountTable is a titled (label, count) table.
type CountTable struct {
	Title string
	Rows  []CountRow
}

// DropdownRow is a top-level row that may expand into a gray subtable.
type DropdownRow struct {
	CountRow
	Sub []CountRow
}

// DropdownTable is a two-level table.
type DropdownTable struct {
	Title string
	Rows  []DropdownRow
}

// ValueRow is a row of the tallies and superlatives tables.
type ValueRow struct {
	Label  string
	Value  template.HTML
	Detail template.HTML
}

// Detail is one line of the expandable part of a log row.
type Detail struct {
	Label string
	Value string
}

// LogRow is one flight of the log table.
type LogRow struct {
	ID       string
	Date     string
	Number   string
	Route    template.HTML
	Airline  string
	Airplane string
	Pics     []string
	Details  []Detail
}

// Page is the data behind the report template.
type Page struct {
	Title         string
	Airplanes     CountTable
	Airlines      DropdownTable
	Manufacturers CountTable
	Locations     []CountTable
	Tallies       []ValueRow
	Superlatives  []ValueRow
	Maps          []string
	Log           []LogRow
}

func countTable(title string, counts []models.GroupCount) CountTable {
	t := CountTable{Title: title}
	for _, c := range counts {
		t.Rows = append(t.Rows, CountRow{Label: template.HTML(html.EscapeString(Label(c.Value))), Count: c.Count})
	}
	return t
}

// NewPage lays out stats and the flight log for rendering. mapFiles are the
// map file names relative to the page. now is used for airplane ages.
func NewPage(stats *Stats, flights []*models.Flight, mapFiles []string, now time.Time) (*Page, error) {
	p := &Page{
		Title:         "Flights",
		Airplanes:     countTable("Airplanes", stats.Airplanes),
		Manufacturers: countTable("Manufacturers", stats.Manufacturers),
		Maps:          mapFiles,
	}

	p.Airlines.Title = "Airlines"
	for _, g := range stats.Airlines {
		row := DropdownRow{CountRow: CountRow{Label: template.HTML(html.EscapeString(Label(g.Value))), Count: g.Count}}
		for _, sub := range g.Sub {
			row.Sub = append(row.Sub, CountRow{Label: template.HTML(html.EscapeString(sub.Value)), Count: sub.Count})
		}
		p.Airlines.Rows = append(p.Airlines.Rows, row)
	}

	airports := CountTable{Title: "Airports"}
	for _, ac := range stats.Airports {
		airports.Rows = append(airports.Rows, CountRow{Label: AirportHTML(ac.Airport, models.StopLanded), Count: ac.Count})
	}
	cities := CountTable{Title: "Cities"}
	for _, c := range stats.Cities {
		cities.Rows = append(cities.Rows, CountRow{Label: CityHTML(c), Count: c.Count})
	}
	p.Locations = []CountTable{
		airports,
		cities,
		countTable("American states", stats.States),
		countTable("Countries", stats.Countries),
		countTable("Continents", stats.Continents),
	}

	t := stats.Tally
	p.Tallies = []ValueRow{
		{Label: "Flights", Value: template.HTML(itoa(t.Flights))},
		{Label: "Unique airports", Value: template.HTML(itoa(t.UniqueAirports))},
		{Label: "Unique airplane types", Value: template.HTML(itoa(t.UniqueAirplaneTypes))},
		{Label: "Total distance", Value: template.HTML(fmt.Sprintf("%s <br> %.02f &#xd7; 2&#x3c0;R<sub>&#x2295;</sub>", Miles(t.TotalDistance), stats.EarthCircumferences))},
		{Label: "Mean segment distance", Value: template.HTML(Miles(t.MeanSegmentDistance))},
	}

	sup := stats.Superlatives
	p.Superlatives = []ValueRow{
		{Label: "Longest segment", Value: SegmentHTML(sup.Longest.Segment), Detail: template.HTML(Miles(sup.Longest.Distance))},
		{Label: "Shortest segment", Value: SegmentHTML(sup.Shortest.Segment), Detail: template.HTML(MilesTenths(sup.Shortest.Distance))},
		{Label: "Northernmost airport", Value: AirportHTML(sup.Northernmost, models.StopLanded), Detail: template.HTML(Latitude(sup.Northernmost.Lat))},
		{Label: "Southernmost airport", Value: AirportHTML(sup.Southernmost, models.StopLanded), Detail: template.HTML(Latitude(sup.Southernmost.Lat))},
	}

	for i, f := range flights {
		row, err := newLogRow(i, f, now)
		if err != nil {
			return nil, err
		}
		p.Log = append(p.Log, row)
	}
	return p, nil
}

func newLogRow(i int, f *models.Flight, now time.Time) (LogRow, error) {
	row := LogRow{
		ID:       fmt.Sprintf("f%d", i),
		Date:     FlightDate(f.Date),
		Number:   f.FlightNumber(),
		Route:    RouteHTML(f.Route),
		Airline:  Airline(f),
		Airplane: Airplane(f),
		Pics:     f.Pics,
	}

	row.Details = append(row.Details, Detail{"gc distance", Miles(services.FlightMiles(f))})
	if f.Seat != "" {
		row.Details = append(row.Details, Detail{"seat", Seat(f)})
	}
	if f.MSN != "" {
		row.Details = append(row.Details, Detail{"msn", f.MSN})
	}
	if f.LN != "" {
		row.Details = append(row.Details, Detail{"ln", f.LN})
	}
	if f.STD != "" || f.STA != "" {
		row.Details = append(row.Details, Detail{"std/sta", f.STD + "/" + f.STA})
	}
	if f.Engines != "" {
		row.Details = append(row.Details, Detail{"engines", Engines(f)})
	}
	if f.FirstFlight != "" {
		age, first, err := FirstFlight(f, now)
		if err != nil {
			return LogRow{}, fmt.Errorf("flight %s on %s: %w", row.Number, row.Date, err)
		}
		row.Details = append(row.Details, Detail{"airplane age", age}, Detail{"first flight", first})
	}
	return row, nil
}

// WriteHTML renders page to w.
func WriteHTML(w io.Writer, page *Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// WriteHTMLFile renders page to path.
func WriteHTMLFile(path string, page *Page) error {
	err := writeFile(path, func(w io.Writer) error { return WriteHTML(w, page) })
	if err == nil {
		log.Printf("Report: %d log rows, %d location tables\n", len(page.Log), len(page.Locations))
	}
	return err
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="robots" content="noindex,nofollow,noimageindex">
<link rel="stylesheet" type="text/css" href="style.css">
<script src="toggle.js"></script>
<script src="jquery-3.1.1.slim.min.js"></script>
<title>{{.Title}}</title>
</head>
<body>
{{define "counts"}}<table class="log-table" data-table="{{.Title}}">
<tr><th colspan="2">{{.Title}}</th></tr>
{{range .Rows}}<tr class="row"><td>{{.Label}}</td><td>{{.Count}}</td></tr>
{{end}}</table>
{{end}}
<div class="titles" onclick="toggle('airplanes','airplanesud')"><span id="airplanesud" class="downarrow"></span>Airplanes</div>
<hr>
<div id="airplanes" class="tab_closed">
{{template "counts" .Airplanes}}
<table class="log-table" data-table="{{.Airlines.Title}}">
<tr><th colspan="2">{{.Airlines.Title}}</th></tr>
{{range .Airlines.Rows}}{{if .Sub}}<tr class="row dropdown" data-sub="{{len .Sub}}"><td>{{.Label}} &#9654;</td><td>{{.Count}}</td></tr>
{{range .Sub}}<tr class="subrow" style="display:none;"><td><span style="color:gray;font-style:italic;">&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;&nbsp;{{.Label}}</span></td><td style="text-align:right;"><span style="color:gray;font-style:italic;">{{.Count}}</span></td></tr>
{{end}}{{else}}<tr class="row"><td>{{.Label}}</td><td>{{.Count}}</td></tr>
{{end}}{{end}}</table>
{{template "counts" .Manufacturers}}
</div>
<div class="titles" onclick="toggle('locations','locationsud')"><span id="locationsud" class="downarrow"></span>Locations</div>
<hr>
<div id="locations" class="tab_closed">
{{range .Locations}}{{template "counts" .}}{{end}}
</div>
<div class="titles" onclick="toggle('misc','miscud')"><span id="miscud" class="downarrow"></span>Misc</div>
<hr>
<div id="misc" class="tab_closed">
<table class="log-table" data-table="Tallies">
<tr><th colspan="2">Tallies</th></tr>
{{range .Tallies}}<tr class="row"><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
<table class="log-table" data-table="Superlatives">
<tr><th colspan="3">Superlatives</th></tr>
{{range .Superlatives}}<tr class="row"><td>{{.Label}}</td><td>{{.Value}}</td><td>{{.Detail}}</td></tr>
{{end}}</table>
</div>
<div class="titles" onclick="toggle('maps','mapsud')"><span id="mapsud" class="uparrow"></span>Maps</div>
<hr>
<div id="maps" style="margin-bottom:18px;display:block;">
{{range .Maps}}<a class="map" href="{{.}}" target="_blank">{{.}}</a>
{{end}}</div>
<div class="titles" onclick="toggle('log','logud')"><span id="logud" class="uparrow"></span>Log</div>
<hr>
<div id="log" style="margin-bottom:18px;display:block;">
<table class="log-table" data-table="Log">
<tr><th>Date</th><th>Number</th><th>Route</th><th>Airline</th><th>Airplane</th><th>Photographs</th><th>...</th></tr>
{{range .Log}}<tr class="flight" id="{{.ID}}-row">
<td>{{.Date}}</td><td>{{.Number}}</td><td class="route">{{.Route}}</td><td>{{.Airline}}</td><td>{{.Airplane}}</td>
<td>{{range .Pics}}<a target="_blank" href="{{.}}"><img src="{{.}}" class="log"></a>{{end}}</td>
<td><a class="expand"><span id="{{.ID}}ud" class="downarrowk"></span></a></td>
</tr>
<tr class="row_closed details" id="{{.ID}}"><td colspan="7" style="text-align:right;"><table class="bare">
{{range .Details}}<tr><td>{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table></td></tr>
{{end}}</table>
</div>
<script>$(".log-table td a.expand").click(function(){$(this).closest("tr").next().toggle();});</script>
<script>$(".log-table tr.dropdown").click(function(){$(this).nextAll(":lt(" + $(this).data("sub") + ")").toggle();});</script>
</body>
</html>
`
