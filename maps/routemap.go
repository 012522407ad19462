// maps/routemap.go
package maps

import (
	"fmt"
	"io"
	"log"
	"math"
	"sort"

	"github.com/gewnthar/flightmapper/models"
	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/geo"
)

// Page layout, in mm on landscape Letter.
const (
	marginMM   = 10.0
	titleMM    = 8.0
	pageWMM    = 279.4
	pageHMM    = 215.9
	labelFont  = 6.75
	stepDegree = 2.0 // great-circle interpolation step
)

// greatCirclePath interpolates positions along the great circle from a to b,
// roughly one every stepDegree degrees of arc. Both endpoints are included.
func greatCirclePath(a, b geo.Latlong) []geo.Latlong {
	rad := math.Pi / 180
	lat1, lon1 := a.Lat*rad, a.Long*rad
	lat2, lon2 := b.Lat*rad, b.Long*rad

	x1, y1, z1 := math.Cos(lat1)*math.Cos(lon1), math.Cos(lat1)*math.Sin(lon1), math.Sin(lat1)
	x2, y2, z2 := math.Cos(lat2)*math.Cos(lon2), math.Cos(lat2)*math.Sin(lon2), math.Sin(lat2)

	dot := math.Max(-1, math.Min(1, x1*x2+y1*y2+z1*z2))
	angle := math.Acos(dot)
	if angle == 0 || math.Sin(angle) == 0 {
		return []geo.Latlong{a, b}
	}

	n := int(math.Ceil(angle / rad / stepDegree))
	if n < 1 {
		n = 1
	}
	path := make([]geo.Latlong, 0, n+1)
	path = append(path, a)
	for i := 1; i < n; i++ {
		f := float64(i) / float64(n)
		wa := math.Sin((1-f)*angle) / math.Sin(angle)
		wb := math.Sin(f*angle) / math.Sin(angle)
		x, y, z := wa*x1+wb*x2, wa*y1+wb*y2, wa*z1+wb*z2
		path = append(path, geo.Latlong{
			Lat:  math.Atan2(z, math.Hypot(x, y)) / rad,
			Long: math.Atan2(y, x) / rad,
		})
	}
	return append(path, b)
}

// drawPath strokes a polyline, lifting the pen where it wraps around the antimeridian.
func drawPath(g Grid, path []geo.Latlong) {
	for i, ll := range path {
		if i == 0 || math.Abs(ll.Long-path[i-1].Long) > 180 {
			g.MoveTo(ll)
			continue
		}
		g.LineTo(ll)
	}
	g.DrawPath("D")
}

// pathBox is the bounding box of a path of at least two points.
func pathBox(path []geo.Latlong) geo.LatlongBox {
	box := path[0].BoxTo(path[len(path)-1])
	for _, ll := range path {
		box.Enclose(ll)
	}
	return box
}

func boxesMeet(a, b geo.LatlongBox) bool {
	return a.SW.Lat <= b.NE.Lat && b.SW.Lat <= a.NE.Lat &&
		a.SW.Long <= b.NE.Long && b.SW.Long <= a.NE.Long
}

// WriteRouteMap draws every flown segment of flights and every visited airport
// on one PDF page covering region. visits sets the label draw order: the most
// visited airports are drawn last, so they end up on top.
func WriteRouteMap(w io.Writer, region Region, flights []*models.Flight, visits []models.AirportCount) error {
	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(marginMM, marginMM+4, fmt.Sprintf("Flights: %s", region.Name))

	grid := newGrid(pdf, region.Box, marginMM, marginMM+titleMM, pageWMM-2*marginMM, pageHMM-2*marginMM-titleMM)

	pdf.SetFillColor(0xa3, 0xbf, 0xf3)
	pdf.Rect(grid.OffsetU, grid.OffsetV, grid.W, grid.H, "F")

	grid.Clip()
	grid.DrawGridlines(10)

	pdf.SetLineWidth(0.25)
	pdf.SetDrawColor(0, 0, 0)
	segments := 0
	for _, f := range flights {
		for _, s := range f.Route.Segments {
			if s.IsZeroLength() {
				continue
			}
			path := greatCirclePath(s.Origin.Latlong(), s.Destination.Latlong())
			if !boxesMeet(pathBox(path), region.Box) {
				continue
			}
			drawPath(grid, path)
			segments++
		}
	}

	ordered := append([]models.AirportCount(nil), visits...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Count < ordered[j].Count })

	pdf.SetFont("Arial", "", labelFont)
	for _, ac := range ordered {
		ll := ac.Airport.Latlong()
		if !region.Box.Contains(ll) {
			continue
		}
		u, v, _ := grid.UV(ll)

		pdf.SetFillColor(0, 0, 0)
		pdf.Circle(u, v, 0.8, "F")
		pdf.SetFillColor(0xff, 0xff, 0xff)
		pdf.Circle(u, v, 0.35, "F")

		if region.Labels {
			drawLabel(pdf, u, v, ac.Airport.ShortLabel())
		}
	}
	pdf.ClipEnd()

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render %s map: %w", region.Name, err)
	}
	log.Printf("Maps: Drew %s map with %d segments\n", region.Name, segments)
	return nil
}

// drawLabel draws text in a white, outlined box centred on (u, v).
func drawLabel(pdf *gofpdf.Fpdf, u, v float64, text string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text = tr(text)
	w := pdf.GetStringWidth(text) + 1.5
	h := 3.0

	pdf.SetLineWidth(0.1)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFillColor(0xff, 0xff, 0xff)
	pdf.Rect(u-w/2, v-h/2, w, h, "FD")
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(u-w/2+0.75, v+h/2-0.8, text)
}
