// report/route.go
package report

import (
	"html"
	"html/template"
	"strings"

	"github.com/gewnthar/flightmapper/models"
)

// AirportHTML renders an airport as its short label with the full description
// in an abbr tooltip. Scheduled stops are gray italic, diversions red.
func AirportHTML(a *models.Airport, kind models.StopKind) template.HTML {
	title := a.String()
	label := html.EscapeString(a.ShortLabel())

	var b strings.Builder
	b.WriteString(`<abbr title="`)
	switch kind {
	case models.StopScheduled:
		b.WriteString(html.EscapeString(title + " (scheduled)"))
		b.WriteString(`"><span class="scheduled" style="color:gray;font-style:italic;">` + label + `</span>`)
	case models.StopDiverted:
		b.WriteString(html.EscapeString(title + " (diverted)"))
		b.WriteString(`"><span class="diverted" style="color:red;">` + label + `</span>`)
	default:
		b.WriteString(html.EscapeString(title))
		b.WriteString(`">` + label)
	}
	b.WriteString(`</abbr>`)
	return template.HTML(b.String())
}

// RouteHTML renders a route one leg per line: the origin, then an arrow and
// the next stop. Scheduled stops use a down-turning arrow. Lines after the
// first are indented by a hidden copy of the origin code.
func RouteHTML(r models.Route) template.HTML {
	if len(r.Stops) == 0 {
		return ""
	}
	origin := r.Stops[0].Airport

	var b strings.Builder
	b.WriteString(string(AirportHTML(origin, models.StopLanded)))
	for i, stop := range r.Stops[1:] {
		if i > 0 {
			b.WriteString(`<br><span style="visibility:hidden;">` + html.EscapeString(origin.Code) + `</span>`)
		}
		if stop.Kind == models.StopScheduled {
			b.WriteString(" &#8628; ")
		} else {
			b.WriteString(" &rarr; ")
		}
		b.WriteString(string(AirportHTML(stop.Airport, stop.Kind)))
	}
	return template.HTML(b.String())
}

// SegmentHTML renders "ORIG → DEST".
func SegmentHTML(s models.Segment) template.HTML {
	return AirportHTML(s.Origin, models.StopLanded) + " &rarr; " + AirportHTML(s.Destination, models.StopLanded)
}

// CityHTML renders a city code with its name and member visit counts as a tooltip.
func CityHTML(c models.CityCount) template.HTML {
	members := make([]string, 0, len(c.Members))
	for _, m := range c.Members {
		members = append(members, m.Value+" ("+itoa(m.Count)+")")
	}
	title := c.Name + ": " + strings.Join(members, ", ")
	return template.HTML(`<abbr title="` + html.EscapeString(title) + `">` + html.EscapeString(c.Code) + `</abbr>`)
}
