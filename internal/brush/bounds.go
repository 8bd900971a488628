// Package brush implements drag-to-zoom ("brushing") for line charts.
//
// The package is headless: it owns per-chart zoom history, maps screen-space
// selections to data-space bounds and exposes the resulting axis overrides.
// Rendering, scales and input events belong to the host chart.
package brush

import (
	"fmt"
	"math"
	"strings"
)

// Axes is a set of chart axes a brush acts on.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY

	AxesNone Axes = 0
	AxesXY        = AxisX | AxisY
)

// Has reports whether every axis in o is present in a.
func (a Axes) Has(o Axes) bool {
	return o != AxesNone && a&o == o
}

func (a Axes) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxesXY:
		return "xy"
	default:
		return "none"
	}
}

// ParseAxes parses "x", "y" or "xy" (case-insensitive).
func ParseAxes(s string) (Axes, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "xy", "yx", "":
		return AxesXY, nil
	}
	return AxesNone, fmt.Errorf("brush: unknown axes %q", s)
}

// Point is a single data sample.
type Point struct {
	X, Y float64
}

// Range is a closed interval on one axis.
type Range struct {
	Min, Max float64
}

// Valid reports whether the range is finite and non-empty.
func (r Range) Valid() bool {
	return isFinite(r.Min) && isFinite(r.Max) && r.Min < r.Max
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Bounds is a visible data-space window. Only the axes in Axes are
// meaningful; the other range is ignored.
type Bounds struct {
	Axes Axes
	X    Range
	Y    Range
}

// XBounds returns bounds constraining only the x axis.
func XBounds(minX, maxX float64) Bounds {
	return Bounds{Axes: AxisX, X: Range{minX, maxX}}
}

// YBounds returns bounds constraining only the y axis.
func YBounds(minY, maxY float64) Bounds {
	return Bounds{Axes: AxisY, Y: Range{minY, maxY}}
}

// XYBounds returns bounds constraining both axes.
func XYBounds(minX, maxX, minY, maxY float64) Bounds {
	return Bounds{Axes: AxesXY, X: Range{minX, maxX}, Y: Range{minY, maxY}}
}

func (b Bounds) HasX() bool { return b.Axes.Has(AxisX) }
func (b Bounds) HasY() bool { return b.Axes.Has(AxisY) }

// Valid reports whether at least one axis is present and every present
// axis satisfies Min < Max. Invalid bounds are never applied.
func (b Bounds) Valid() bool {
	if b.Axes == AxesNone {
		return false
	}
	if b.HasX() && !b.X.Valid() {
		return false
	}
	if b.HasY() && !b.Y.Valid() {
		return false
	}
	return true
}

// Contains reports whether p lies within the present axes.
func (b Bounds) Contains(p Point) bool {
	if b.HasX() && !b.X.Contains(p.X) {
		return false
	}
	if b.HasY() && !b.Y.Contains(p.Y) {
		return false
	}
	return true
}

// Project keeps only the axes in a.
func (b Bounds) Project(a Axes) Bounds {
	out := Bounds{Axes: b.Axes & a}
	if out.HasX() {
		out.X = b.X
	}
	if out.HasY() {
		out.Y = b.Y
	}
	return out
}

// Fill returns b with any axis it lacks taken from o.
func (b Bounds) Fill(o Bounds) Bounds {
	if !b.HasX() && o.HasX() {
		b.X = o.X
		b.Axes |= AxisX
	}
	if !b.HasY() && o.HasY() {
		b.Y = o.Y
		b.Axes |= AxisY
	}
	return b
}

// Map returns the bounds keyed the way completion callbacks report them:
// min_x, max_x, min_y, max_y, each present only for active axes.
func (b Bounds) Map() map[string]any {
	m := make(map[string]any, 4)
	if b.HasX() {
		m["min_x"] = b.X.Min
		m["max_x"] = b.X.Max
	}
	if b.HasY() {
		m["min_y"] = b.Y.Min
		m["max_y"] = b.Y.Max
	}
	return m
}

func (b Bounds) String() string {
	var parts []string
	if b.HasX() {
		parts = append(parts, fmt.Sprintf("x=[%g, %g]", b.X.Min, b.X.Max))
	}
	if b.HasY() {
		parts = append(parts, fmt.Sprintf("y=[%g, %g]", b.Y.Min, b.Y.Max))
	}
	if len(parts) == 0 {
		return "{}"
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Extent returns the x and y ranges covered by points, and false for an
// empty slice.
func Extent(points []Point) (x, y Range, ok bool) {
	if len(points) == 0 {
		return Range{}, Range{}, false
	}
	x = Range{math.Inf(1), math.Inf(-1)}
	y = Range{math.Inf(1), math.Inf(-1)}
	for _, p := range points {
		x.Min = math.Min(x.Min, p.X)
		x.Max = math.Max(x.Max, p.X)
		y.Min = math.Min(y.Min, p.Y)
		y.Max = math.Max(y.Max, p.Y)
	}
	return x, y, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
