// maps/grid.go
package maps

import (
	"github.com/jung-kurt/gofpdf"
	"github.com/skypies/geo"
)

// Grid maps longitude/latitude onto a rectangle of PDF page space with an
// equirectangular projection.
type Grid struct {
	*gofpdf.Fpdf

	OffsetU, OffsetV float64 // top-left corner of the grid, in mm
	W, H             float64 // size of the grid, in mm

	MinX, MinY, MaxX, MaxY float64 // longitude and latitude range
}

// newGrid fits box into a w x h area at (u, v), keeping one degree of
// longitude the same width as one degree of latitude.
func newGrid(pdf *gofpdf.Fpdf, box geo.LatlongBox, u, v, w, h float64) Grid {
	g := Grid{
		Fpdf:    pdf,
		OffsetU: u, OffsetV: v,
		MinX: box.SW.Long, MinY: box.SW.Lat,
		MaxX: box.NE.Long, MaxY: box.NE.Lat,
	}
	spanX, spanY := g.MaxX-g.MinX, g.MaxY-g.MinY
	if w/spanX < h/spanY {
		g.W, g.H = w, spanY*w/spanX
	} else {
		g.W, g.H = spanX*h/spanY, h
	}
	return g
}

// U maps a longitude; the bool is whether it is outside the grid.
func (g Grid) U(x float64) (float64, bool) {
	ratio := (x - g.MinX) / (g.MaxX - g.MinX)
	return g.OffsetU + ratio*g.W, ratio < 0 || ratio > 1
}

// V maps a latitude; the bool is whether it is outside the grid.
func (g Grid) V(y float64) (float64, bool) {
	ratio := (y - g.MinY) / (g.MaxY - g.MinY)
	return g.OffsetV + (g.H - ratio*g.H), ratio < 0 || ratio > 1
}

// UV maps a position into PDF space.
func (g Grid) UV(ll geo.Latlong) (float64, float64, bool) {
	u, oobU := g.U(ll.Long)
	v, oobV := g.V(ll.Lat)
	return u, v, oobU || oobV
}

func (g Grid) MoveTo(ll geo.Latlong) {
	u, v, _ := g.UV(ll)
	g.Fpdf.MoveTo(u, v)
}

func (g Grid) LineTo(ll geo.Latlong) {
	u, v, _ := g.UV(ll)
	g.Fpdf.LineTo(u, v)
}

// Clip restricts drawing to the grid until ClipEnd.
func (g Grid) Clip() {
	g.ClipRect(g.OffsetU, g.OffsetV, g.W, g.H, false)
}

// DrawGridlines draws graticule lines every step degrees.
func (g Grid) DrawGridlines(step float64) {
	g.SetLineWidth(0.05)
	g.SetDrawColor(0xc0, 0xc8, 0xd8)
	for x := firstMultiple(g.MinX, step); x <= g.MaxX; x += step {
		g.MoveTo(geo.Latlong{Lat: g.MinY, Long: x})
		g.LineTo(geo.Latlong{Lat: g.MaxY, Long: x})
	}
	for y := firstMultiple(g.MinY, step); y <= g.MaxY; y += step {
		g.MoveTo(geo.Latlong{Lat: y, Long: g.MinX})
		g.LineTo(geo.Latlong{Lat: y, Long: g.MaxX})
	}
	g.DrawPath("D")
}

// firstMultiple is the smallest multiple of step that is >= lo.
func firstMultiple(lo, step float64) float64 {
	n := float64(int(lo / step))
	if n*step < lo {
		n++
	}
	return n * step
}
