package brush_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/chartbrush/internal/brush"
	"github.com/wandb/chartbrush/internal/observability"
)

type recorder struct {
	redraws  []brush.Bounds
	callback []brush.Bounds
}

func newController(t *testing.T, opts brush.Options, rec *recorder) *brush.Controller {
	t.Helper()
	opts.Redraw = func(b brush.Bounds) { rec.redraws = append(rec.redraws, b) }
	opts.OnBrush = func(b brush.Bounds) { rec.callback = append(rec.callback, b) }

	session := brush.NewRegistry().Ensure("chart", brush.XYBounds(0, 10, 0, 30))
	return brush.NewController(
		session,
		brush.NewResolver(brush.AxesXY, brush.Step(1)),
		opts,
		observability.NewNoOpLogger(),
	)
}

func scenarioView() brush.View {
	return brush.View{
		XScale:     identityScale(0, 10),
		YScale:     identityScale(0, 30),
		PlotHeight: 30,
		Data:       []brush.Point{{X: 1, Y: 10}, {X: 2, Y: 20}, {X: 5, Y: 5}},
	}
}

func drag(c *brush.Controller, from, to brush.Point, v brush.View) brush.Outcome {
	c.PointerDown(from)
	c.PointerMove(brush.Point{X: (from.X + to.X) / 2, Y: from.Y})
	c.PointerMove(to)
	return c.PointerUp(to, v)
}

func click(c *brush.Controller, at brush.Point, v brush.View) brush.Outcome {
	c.PointerDown(at)
	return c.PointerUp(at, v)
}

func TestController_GestureStates(t *testing.T) {
	rec := &recorder{}
	c := newController(t, brush.DefaultOptions(), rec)
	require.Equal(t, brush.StateIdle, c.State())

	c.PointerMove(brush.Point{X: 3})
	require.Equal(t, brush.StateIdle, c.State(), "move without press is ignored")

	c.PointerDown(brush.Point{X: 4.6, Y: 2})
	require.Equal(t, brush.StatePressed, c.State())
	c.PointerMove(brush.Point{X: 4.6, Y: 2})
	require.Equal(t, brush.StatePressed, c.State(), "move onto the press position is not a drag")
	require.False(t, c.Brushing())
	sel, ok := c.Selection()
	require.True(t, ok)
	assert.Zero(t, sel.Width())

	c.PointerMove(brush.Point{X: 1.4, Y: 5})
	require.Equal(t, brush.StateDragging, c.State())
	require.True(t, c.Brushing())
	sel, _ = c.Selection()
	assert.Equal(t, brush.Selection{X0: 1.4, Y0: 2, X1: 4.6, Y1: 5}, sel)

	out := c.PointerUp(brush.Point{X: 1.4, Y: 5}, scenarioView())
	require.Equal(t, brush.StateIdle, c.State())
	require.Equal(t, brush.ActionZoomIn, out.Action)
	_, ok = c.Selection()
	require.False(t, ok)
}

func TestController_DragZoomsInAndNotifies(t *testing.T) {
	rec := &recorder{}
	c := newController(t, brush.DefaultOptions(), rec)

	out := drag(c, brush.Point{X: 1.4}, brush.Point{X: 4.6}, scenarioView())
	require.Equal(t, brush.ActionZoomIn, out.Action)
	require.True(t, out.Changed())

	want := brush.XYBounds(1, 5, 4.5, 22)
	require.Len(t, rec.redraws, 1)
	require.Len(t, rec.callback, 1)
	assert.InDelta(t, want.Y.Min, rec.callback[0].Y.Min, 1e-9)
	assert.InDelta(t, want.Y.Max, rec.callback[0].Y.Max, 1e-9)
	assert.Equal(t, want.X, rec.callback[0].X)
	assert.True(t, c.Session().Brushed())
}

func TestController_ZoomTwiceThenClickRestoresFirstZoom(t *testing.T) {
	rec := &recorder{}
	c := newController(t, brush.DefaultOptions(), rec)
	v := scenarioView()

	first := drag(c, brush.Point{X: 1.4}, brush.Point{X: 4.6}, v)
	require.Equal(t, brush.ActionZoomIn, first.Action)
	second := drag(c, brush.Point{X: 0.6}, brush.Point{X: 2.2}, v)
	require.Equal(t, brush.ActionZoomIn, second.Action)
	require.NotEqual(t, first.Bounds, second.Bounds)

	out := click(c, brush.Point{X: 3}, v)
	require.Equal(t, brush.ActionZoomOut, out.Action)
	assert.Equal(t, first.Bounds, out.Bounds)
	assert.True(t, c.Session().Brushed())
	assert.Equal(t, first.Bounds, rec.callback[len(rec.callback)-1])
}

func TestController_ZoomOnceThenClickRestoresOriginal(t *testing.T) {
	rec := &recorder{}
	c := newController(t, brush.DefaultOptions(), rec)
	v := scenarioView()

	drag(c, brush.Point{X: 1.4}, brush.Point{X: 4.6}, v)
	out := click(c, brush.Point{X: 3}, v)
	require.Equal(t, brush.ActionZoomOut, out.Action)
	assert.Equal(t, c.Session().Original(), out.Bounds)
	assert.False(t, c.Session().Brushed())

	// Further clicks change nothing and notify nobody.
	n := len(rec.callback)
	out = click(c, brush.Point{X: 3}, v)
	assert.Equal(t, brush.ActionNone, out.Action)
	assert.Len(t, rec.callback, n)
}

func TestController_RejectedGestureChangesNothing(t *testing.T) {
	rec := &recorder{}
	opts := brush.DefaultOptions()
	c := newController(t, opts, rec)

	// No data at all: the area resolver cannot find a point.
	v := scenarioView()
	v.Data = nil
	before := *c.Session()

	out := drag(c, brush.Point{X: 1}, brush.Point{X: 4}, v)
	require.Equal(t, brush.ActionRejected, out.Action)
	require.ErrorIs(t, out.Err, brush.ErrNoData)
	assert.Empty(t, rec.redraws)
	assert.Empty(t, rec.callback)
	assert.Equal(t, before, *c.Session())

	// Programmatic zoom with inverted bounds is rejected the same way.
	out = c.ZoomIn(brush.XYBounds(5, 1, 0, 1))
	require.Equal(t, brush.ActionRejected, out.Action)
	assert.Empty(t, rec.callback)
}

func TestController_VerticalVariant(t *testing.T) {
	rec := &recorder{}
	opts := brush.DefaultOptions()
	opts.Redraw = func(b brush.Bounds) { rec.redraws = append(rec.redraws, b) }
	opts.OnBrush = func(b brush.Bounds) { rec.callback = append(rec.callback, b) }

	session := brush.NewRegistry().Ensure("v", brush.YBounds(0, 100))
	c := brush.NewController(session, brush.NewResolver(brush.AxisY, nil), opts, nil)
	v := brush.View{
		YScale:     brush.NewLinearScale(brush.Range{Min: 0, Max: 100}, brush.Range{Min: 50, Max: 0}),
		PlotHeight: 50,
	}

	out := drag(c, brush.Point{X: 3, Y: 0}, brush.Point{X: 9, Y: 25}, v)
	require.Equal(t, brush.ActionZoomIn, out.Action)
	assert.Equal(t, brush.YBounds(50, 100), out.Bounds)

	// A purely horizontal drag has no height and is rejected.
	out = drag(c, brush.Point{X: 3, Y: 10}, brush.Point{X: 9, Y: 10}, v)
	require.Equal(t, brush.ActionRejected, out.Action)
	assert.Len(t, rec.callback, 1)
}

func TestController_CellSelectionCoversEndCells(t *testing.T) {
	session := brush.NewRegistry().Ensure("cells", brush.YBounds(0, 100))
	c := brush.NewController(session, brush.NewResolver(brush.AxisY, nil), brush.DefaultOptions(), nil)
	v := brush.View{
		YScale:     brush.NewLinearScale(brush.Range{Min: 0, Max: 100}, brush.Range{Min: 10, Max: 0}),
		PlotHeight: 10,
		Cell:       brush.Point{X: 1, Y: 1},
	}

	// Rows 0 through 9 are the whole plot.
	out := drag(c, brush.Point{X: 0, Y: 0}, brush.Point{X: 0, Y: 9}, v)
	require.Equal(t, brush.ActionZoomIn, out.Action)
	assert.Equal(t, brush.YBounds(0, 100), out.Bounds)
}

func TestController_Options(t *testing.T) {
	t.Run("disabled ignores pointers", func(t *testing.T) {
		rec := &recorder{}
		c := newController(t, brush.Options{Enabled: false, History: true}, rec)
		out := drag(c, brush.Point{X: 1.4}, brush.Point{X: 4.6}, scenarioView())
		assert.Equal(t, brush.ActionNone, out.Action)
		assert.Equal(t, brush.StateIdle, c.State())
		assert.Empty(t, rec.callback)
	})

	t.Run("history off makes clicks inert", func(t *testing.T) {
		rec := &recorder{}
		c := newController(t, brush.Options{Enabled: true, History: false}, rec)
		drag(c, brush.Point{X: 1.4}, brush.Point{X: 4.6}, scenarioView())
		out := click(c, brush.Point{X: 2}, scenarioView())
		assert.Equal(t, brush.ActionNone, out.Action)
		assert.True(t, c.Session().Brushed())
	})

	t.Run("manual redraw only fires callback", func(t *testing.T) {
		rec := &recorder{}
		c := newController(t, brush.Options{Enabled: true, History: true, ManualRedraw: true}, rec)
		drag(c, brush.Point{X: 1.4}, brush.Point{X: 4.6}, scenarioView())
		assert.Empty(t, rec.redraws)
		assert.Len(t, rec.callback, 1)
	})
}

func TestController_ResetAndSetAsBase(t *testing.T) {
	rec := &recorder{}
	c := newController(t, brush.DefaultOptions(), rec)
	v := scenarioView()

	out := c.Reset()
	assert.Equal(t, brush.ActionNone, out.Action, "reset of an un-brushed chart is a no-op")

	drag(c, brush.Point{X: 1.4}, brush.Point{X: 4.6}, v)
	drag(c, brush.Point{X: 0.6}, brush.Point{X: 2.2}, v)

	out = c.Reset()
	require.Equal(t, brush.ActionReset, out.Action)
	assert.Equal(t, c.Session().Original(), out.Bounds)
	assert.Zero(t, c.Session().Depth())

	zoomed := drag(c, brush.Point{X: 1.4}, brush.Point{X: 4.6}, v)
	n := len(rec.callback)
	out = c.SetAsBase()
	require.Equal(t, brush.ActionRebase, out.Action)
	assert.Equal(t, zoomed.Bounds, c.Session().Original())
	assert.Len(t, rec.callback, n)
}
