package brushview

import (
	"math"
	"sort"
	"strconv"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/chartbrush/internal/brush"
)

// LineChart is a braille line chart whose view ranges follow a brushing
// session.
type LineChart struct {
	linechart.Model

	target     string
	points     []brush.Point
	graphStyle lipgloss.Style
	natural    brush.Bounds
	brushed    bool
	dirty      bool
}

// NewLineChart creates a chart over points, which must be sorted by x.
func NewLineChart(width, height int, colorIndex int, target string, points []brush.Point) *LineChart {
	natural := naturalBounds(points)
	c := &LineChart{
		Model: linechart.New(width, height,
			natural.X.Min, natural.X.Max, natural.Y.Min, natural.Y.Max,
			linechart.WithXYSteps(4, 5),
			linechart.WithXLabelFormatter(formatLabel),
			linechart.WithYLabelFormatter(formatLabel),
		),
		target:     target,
		points:     points,
		graphStyle: lipgloss.NewStyle().Foreground(GraphColor(colorIndex)),
		natural:    natural,
		dirty:      true,
	}
	c.AxisStyle = axisStyle
	c.LabelStyle = labelStyle
	return c
}

func formatLabel(_ int, f float64) string {
	return strconv.FormatFloat(f, 'g', 4, 64)
}

// naturalBounds is the un-brushed view: the x extent of the data and the
// y extent widened by ten percent of its span.
func naturalBounds(points []brush.Point) brush.Bounds {
	x, y, ok := brush.Extent(points)
	if !ok {
		return brush.XYBounds(0, 1, 0, 1)
	}
	if !x.Valid() {
		x = brush.Range{Min: x.Min - 0.5, Max: x.Max + 0.5}
	}
	pad := y.Span() * 0.1
	if pad == 0 {
		pad = math.Max(math.Abs(y.Max)*0.1, 0.1)
	}
	return brush.XYBounds(x.Min, x.Max, y.Min-pad, y.Max+pad)
}

func (c *LineChart) Target() string        { return c.target }
func (c *LineChart) Points() []brush.Point { return c.points }
func (c *LineChart) Natural() brush.Bounds { return c.natural }
func (c *LineChart) Brushed() bool         { return c.brushed }
func (c *LineChart) Dirty() bool           { return c.dirty }

// ViewBounds returns the x and y ranges currently displayed.
func (c *LineChart) ViewBounds() brush.Bounds {
	return brush.XYBounds(c.ViewMinX(), c.ViewMaxX(), c.ViewMinY(), c.ViewMaxY())
}

// ApplyOverride recomputes the view ranges from the natural ranges and the
// session's overrides.
//
// The x override is clamped to the data. The y override replaces the
// natural range, so the expected y range is widened to admit it.
func (c *LineChart) ApplyOverride(s *brush.Session) {
	n := c.natural

	minX, maxX := n.X.Min, n.X.Max
	if s != nil {
		minX, maxX = s.OverrideXRange(n.X.Min, n.X.Max)
	}
	c.SetXRange(n.X.Min, n.X.Max)
	if !c.SetViewXRange(minX, maxX) {
		c.SetViewXRange(n.X.Min, n.X.Max)
	}

	y, ok := brush.Range{}, false
	if s != nil {
		y, ok = s.OverrideYRange()
	}
	if !ok {
		y = n.Y
	}
	c.SetYRange(math.Min(n.Y.Min, y.Min), math.Max(n.Y.Max, y.Max))
	if !c.SetViewYRange(y.Min, y.Max) {
		c.SetViewYRange(n.Y.Min, n.Y.Max)
	}

	c.brushed = s != nil && s.Brushed()
	c.dirty = true
}

// GraphLeft is the canvas column of the first plot cell.
func (c *LineChart) GraphLeft() int {
	if c.YStep() > 0 {
		return c.Origin().X + 1
	}
	return 0
}

// BrushView describes the plot in cell units for the resolver. Cell rows
// grow downwards, so the y scale is reversed.
func (c *LineChart) BrushView() brush.View {
	w, h := float64(c.GraphWidth()), float64(c.GraphHeight())
	return brush.View{
		XScale: brush.NewLinearScale(
			brush.Range{Min: c.ViewMinX(), Max: c.ViewMaxX()},
			brush.Range{Min: 0, Max: w},
		),
		YScale: brush.NewLinearScale(
			brush.Range{Min: c.ViewMinY(), Max: c.ViewMaxY()},
			brush.Range{Min: h, Max: 0},
		),
		PlotHeight: h,
		Data:       c.points,
		Cell:       brush.Point{X: 1, Y: 1},
	}
}

// PlotPoint maps a canvas cell to the plot coordinates of its top-left
// corner. The result is clamped to the plot; inside reports whether the
// cell was in it.
func (c *LineChart) PlotPoint(x, y int) (p brush.Point, inside bool) {
	col := x - c.GraphLeft()
	row := y
	inside = col >= 0 && col < c.GraphWidth() && row >= 0 && row < c.GraphHeight()

	col = max(0, min(col, c.GraphWidth()-1))
	row = max(0, min(row, c.GraphHeight()-1))
	return brush.Point{X: float64(col), Y: float64(row)}, inside
}

// Draw renders the axes and the visible part of the series.
func (c *LineChart) Draw() {
	c.Clear()
	c.DrawXYAxisAndLabel()
	c.dirty = false

	if len(c.points) == 0 || c.GraphWidth() <= 0 || c.GraphHeight() <= 0 {
		return
	}

	viewMinX, viewMaxX := c.ViewMinX(), c.ViewMaxX()
	eps := c.pixelEpsX(viewMaxX - viewMinX)
	lb := sort.Search(len(c.points), func(i int) bool { return c.points[i].X >= viewMinX-eps })
	ub := sort.Search(len(c.points), func(i int) bool { return c.points[i].X > viewMaxX+eps })
	if ub <= lb {
		return
	}

	w, h := float64(c.GraphWidth()), float64(c.GraphHeight())
	bGrid := graph.NewBrailleGrid(c.GraphWidth(), c.GraphHeight(), 0, w, 0, h)

	xScale := w / (viewMaxX - viewMinX)
	yScale := h / (c.ViewMaxY() - c.ViewMinY())

	visible := make([]canvas.Float64Point, 0, ub-lb)
	for _, p := range c.points[lb:ub] {
		x := (p.X - viewMinX) * xScale
		y := (p.Y - c.ViewMinY()) * yScale
		if x >= 0 && x <= w && y >= 0 && y <= h {
			visible = append(visible, canvas.Float64Point{X: x, Y: y})
		}
	}

	switch len(visible) {
	case 0:
		return
	case 1:
		bGrid.Set(bGrid.GridPoint(visible[0]))
	default:
		for i := 0; i < len(visible)-1; i++ {
			drawLine(bGrid, bGrid.GridPoint(visible[i]), bGrid.GridPoint(visible[i+1]))
		}
	}

	graph.DrawBraillePatterns(&c.Canvas,
		canvas.Point{X: c.GraphLeft(), Y: 0},
		bGrid.BraillePatterns(),
		c.graphStyle)
}

// DrawIfNeeded only draws if the chart is marked as dirty.
func (c *LineChart) DrawIfNeeded() {
	if c.dirty {
		c.Draw()
	}
}

// DrawSelection highlights the cells covered by sel. Axes the resolver
// ignores span the whole plot.
func (c *LineChart) DrawSelection(sel brush.Selection, axes brush.Axes) {
	col0, col1 := 0, c.GraphWidth()-1
	row0, row1 := 0, c.GraphHeight()-1
	if axes.Has(brush.AxisX) {
		col0, col1 = int(math.Floor(sel.X0)), int(math.Floor(sel.X1))
	}
	if axes.Has(brush.AxisY) {
		row0, row1 = int(math.Floor(sel.Y0)), int(math.Floor(sel.Y1))
	}

	left := c.GraphLeft()
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			c.Canvas.SetCellStyle(canvas.Point{X: left + col, Y: row}, selectionStyle)
		}
	}
}

// Resize updates the chart dimensions.
func (c *LineChart) Resize(width, height int) {
	if c.Width() != width || c.Height() != height {
		c.Model.Resize(width, height)
		c.dirty = true
	}
}

// pixelEpsX returns about one horizontal cell in x units.
func (c *LineChart) pixelEpsX(xRange float64) float64 {
	if c.GraphWidth() <= 0 || xRange <= 0 {
		return 0
	}
	return xRange / float64(c.GraphWidth())
}

// drawLine draws a line using Bresenham's algorithm.
//
// See https://en.wikipedia.org/wiki/Bresenham%27s_line_algorithm.
func drawLine(bGrid *graph.BrailleGrid, p1, p2 canvas.Point) {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)

	sx := 1
	if p1.X > p2.X {
		sx = -1
	}
	sy := 1
	if p1.Y > p2.Y {
		sy = -1
	}

	err := dx - dy
	x, y := p1.X, p1.Y
	for {
		bGrid.Set(canvas.Point{X: x, Y: y})
		if x == p2.X && y == p2.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
