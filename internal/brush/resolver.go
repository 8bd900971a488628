package brush

import (
	"fmt"
	"math"
)

// DefaultPadding is the fraction by which resolved y ranges are widened.
const DefaultPadding = 0.1

// Scale maps between data values and screen coordinates on one axis.
type Scale interface {
	// Domain returns the data range currently displayed.
	Domain() Range

	// Invert maps a screen coordinate back to a data value.
	Invert(px float64) float64
}

// LinearScale is a continuous linear Scale. The pixel range may be
// reversed, as for a y axis whose screen origin is at the top.
type LinearScale struct {
	domain Range
	pixels Range
}

func NewLinearScale(domain, pixels Range) LinearScale {
	return LinearScale{domain: domain, pixels: pixels}
}

func (s LinearScale) Domain() Range { return s.domain }

func (s LinearScale) Invert(px float64) float64 {
	span := s.pixels.Max - s.pixels.Min
	if span == 0 {
		return s.domain.Min
	}
	t := (px - s.pixels.Min) / span
	return s.domain.Min + t*s.domain.Span()
}

// Selection is a screen-space rectangle relative to the plot area's
// top-left corner, with X0 <= X1 and Y0 <= Y1.
type Selection struct {
	X0, Y0, X1, Y1 float64
}

// NewSelection returns the rectangle spanned by two corner points.
func NewSelection(a, b Point) Selection {
	return Selection{
		X0: math.Min(a.X, b.X),
		Y0: math.Min(a.Y, b.Y),
		X1: math.Max(a.X, b.X),
		Y1: math.Max(a.Y, b.Y),
	}
}

func (s Selection) Width() float64  { return s.X1 - s.X0 }
func (s Selection) Height() float64 { return s.Y1 - s.Y0 }

// Cover extends the far edges by one cell, so that a selection between
// cell corners includes the cells it ends on.
func (s Selection) Cover(cell Point) Selection {
	s.X1 += cell.X
	s.Y1 += cell.Y
	return s
}

// View is what the host knows about a chart at the moment a selection is
// resolved.
type View struct {
	XScale Scale
	YScale Scale

	// PlotHeight is the height of the plot area in screen units.
	PlotHeight float64

	// Data is the full, flattened data set of the chart.
	Data []Point

	// Cell is the size of a pointer cell when pointer positions are the
	// top-left corners of cells. Zero means positions are exact.
	Cell Point
}

// Resolver maps screen-space selections to data-space bounds.
//
// Axes selects the behaviour: AxisY alone resolves a vertical band against
// the displayed y domain; any set containing AxisX snaps the x range to
// Interval, guarantees at least one data point and, with AxisY, derives the
// y range from the selected points.
type Resolver struct {
	Axes     Axes
	Interval Interval

	// Padding widens resolved y ranges from the data; zero means no padding.
	Padding float64
}

// NewResolver returns a resolver with DefaultPadding.
func NewResolver(axes Axes, interval Interval) Resolver {
	return Resolver{Axes: axes, Interval: interval, Padding: DefaultPadding}
}

// Resolve converts sel into bounds. Any returned error means the gesture
// must not change the view.
func (r Resolver) Resolve(sel Selection, v View) (Bounds, error) {
	switch {
	case r.Axes.Has(AxisX):
		return r.resolveArea(sel, v)
	case r.Axes.Has(AxisY):
		return r.resolveVertical(sel, v)
	}
	return Bounds{}, fmt.Errorf("brush: resolver has no axes")
}

// resolveVertical maps the selection's vertical extent through the
// currently displayed y domain, so repeated zooms compose.
func (r Resolver) resolveVertical(sel Selection, v View) (Bounds, error) {
	if v.YScale == nil || v.PlotHeight <= 0 {
		return Bounds{}, ErrDegenerateSelection
	}
	d := v.YScale.Domain()
	minY := (1-sel.Y1/v.PlotHeight)*d.Span() + d.Min
	maxY := (1-sel.Y0/v.PlotHeight)*d.Span() + d.Min

	b := YBounds(minY, maxY)
	if !b.Valid() {
		return Bounds{}, fmt.Errorf("%w: y=[%g, %g]", ErrDegenerateSelection, minY, maxY)
	}
	return b, nil
}

// resolveArea snaps the inverted x range to the interval, widens it until
// it holds data, then tightens it to the data it holds.
func (r Resolver) resolveArea(sel Selection, v View) (Bounds, error) {
	if r.Interval == nil {
		return Bounds{}, ErrNoInterval
	}
	if len(v.Data) == 0 {
		return Bounds{}, ErrNoData
	}
	if v.XScale == nil {
		return Bounds{}, ErrDegenerateSelection
	}

	iv := r.Interval
	x0, x1 := v.XScale.Invert(sel.X0), v.XScale.Invert(sel.X1)
	if x0 > x1 {
		x0, x1 = x1, x0
	}

	lo := iv.Round(x0)
	hi := math.Max(iv.Offset(lo, 1), iv.Round(x1))

	matched := filterX(v.Data, lo, hi)
	for attempt := 0; len(matched) == 0 && attempt < len(v.Data); attempt++ {
		x, ok := nearestOutside(v.Data, lo, hi)
		if !ok {
			break
		}
		if x < lo {
			lo = floorTo(iv, x)
		} else {
			hi = ceilTo(iv, x)
		}
		matched = filterX(v.Data, lo, hi)
	}
	if len(matched) == 0 {
		return Bounds{}, ErrNoData
	}

	xr, yr, _ := Extent(matched)
	if !xr.Valid() {
		xr = Range{lo, hi}
	}
	out := Bounds{Axes: AxisX, X: xr}
	if r.Axes.Has(AxisY) {
		out.Axes |= AxisY
		out.Y = r.pad(yr)
	}
	if !out.Valid() {
		return Bounds{}, fmt.Errorf("%w: %s", ErrDegenerateSelection, out)
	}
	return out, nil
}

// pad widens y by the padding factor relative to each end's magnitude.
func (r Resolver) pad(y Range) Range {
	p := r.Padding
	out := Range{
		Min: y.Min - math.Abs(y.Min)*p,
		Max: y.Max + math.Abs(y.Max)*p,
	}
	if out.Min < out.Max || p <= 0 {
		return out
	}
	// A flat series at zero has no magnitude to pad by.
	return Range{Min: y.Min - p, Max: y.Max + p}
}

func filterX(data []Point, lo, hi float64) []Point {
	var out []Point
	for _, p := range data {
		if p.X >= lo && p.X <= hi {
			out = append(out, p)
		}
	}
	return out
}

// nearestOutside returns the x value closest to [lo, hi] among points
// outside it.
func nearestOutside(data []Point, lo, hi float64) (float64, bool) {
	best, bestDist := 0.0, math.Inf(1)
	for _, p := range data {
		if !isFinite(p.X) {
			continue
		}
		var d float64
		switch {
		case p.X < lo:
			d = lo - p.X
		case p.X > hi:
			d = p.X - hi
		default:
			continue
		}
		if d < bestDist {
			best, bestDist = p.X, d
		}
	}
	return best, isFinite(bestDist)
}
