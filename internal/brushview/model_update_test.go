package brushview_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/chartbrush/internal/brush"
	"github.com/wandb/chartbrush/internal/brushview"
	"github.com/wandb/chartbrush/internal/dataset"
	"github.com/wandb/chartbrush/internal/observability"
	"github.com/wandb/chartbrush/internal/settings"
)

func defaultConfig() settings.Config {
	return settings.Config{
		Brushing:  true,
		History:   true,
		Axes:      "xy",
		Padding:   brush.DefaultPadding,
		XAccessor: "x",
		YAccessor: "y",
	}
}

func newTestModel(t *testing.T, cfg settings.Config, series ...*dataset.Series) *brushview.Model {
	t.Helper()
	if len(series) == 0 {
		series = []*dataset.Series{{Name: "loss", Points: scenario}}
	}
	var m tea.Model = brushview.NewModel(brushview.Params{
		Series: series,
		Config: cfg,
		Logger: observability.NewNoOpLogger(),
	})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m.(*brushview.Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// mouse sends a left-button event at plot cell (col, row) of the active
// chart.
func mouse(m *brushview.Model, action tea.MouseAction, col, row int) {
	c := m.TestChart(m.TestActive())
	m.Update(tea.MouseMsg{
		X:      c.GraphLeft() + col,
		Y:      brushview.HeaderHeight + row,
		Action: action,
		Button: tea.MouseButtonLeft,
	})
}

func dragCols(m *brushview.Model, from, to, row int) {
	mouse(m, tea.MouseActionPress, from, row)
	mouse(m, tea.MouseActionMotion, (from+to)/2, row)
	mouse(m, tea.MouseActionMotion, to, row)
	mouse(m, tea.MouseActionRelease, to, row)
}

func clickAt(m *brushview.Model, col, row int) {
	mouse(m, tea.MouseActionPress, col, row)
	mouse(m, tea.MouseActionRelease, col, row)
}

func TestModel_DragZoomsIntoSnappedData(t *testing.T) {
	var got []brush.Bounds
	var m tea.Model = brushview.NewModel(brushview.Params{
		Series:  []*dataset.Series{{Name: "loss", Points: scenario}},
		Config:  defaultConfig(),
		OnBrush: func(target string, b brush.Bounds) { got = append(got, b) },
	})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model := m.(*brushview.Model)
	chart := model.TestChart(0)

	dragCols(model, 0, chart.GraphWidth()-1, 2)

	require.Len(t, got, 1)
	assert.Equal(t, brush.Range{Min: 1, Max: 5}, got[0].X)
	assert.InDelta(t, 4.5, got[0].Y.Min, 1e-9)
	assert.InDelta(t, 22, got[0].Y.Max, 1e-9)

	assert.True(t, chart.Brushed())
	assert.InDelta(t, 4.5, chart.ViewMinY(), 1e-9)
	assert.Contains(t, model.View(), "brushed")
	assert.Contains(t, model.TestStatus(), "loss")
	assert.Equal(t, got[0], model.Results()["loss"])
}

func TestModel_ClickStepsBackThroughHistory(t *testing.T) {
	m := newTestModel(t, defaultConfig())
	chart := m.TestChart(0)
	session := m.TestController(0).Session()
	w := chart.GraphWidth()

	dragCols(m, 0, w-1, 2)
	first := chart.ViewBounds()

	dragCols(m, 0, w/4, 2)
	require.Equal(t, 1, session.Depth())
	assert.Equal(t, brush.Range{Min: 1, Max: 2}, chart.ViewBounds().X)

	clickAt(m, w/2, 3)
	assert.Equal(t, first, chart.ViewBounds())
	assert.True(t, session.Brushed())

	clickAt(m, w/2, 3)
	assert.False(t, session.Brushed())
	assert.False(t, chart.Brushed())
	assert.Equal(t, chart.Natural(), chart.ViewBounds())
	assert.NotContains(t, m.View(), "brushed")
}

func TestModel_SelectionOverlayWhileDragging(t *testing.T) {
	m := newTestModel(t, defaultConfig())
	ctrl := m.TestController(0)

	mouse(m, tea.MouseActionPress, 1, 1)
	assert.Equal(t, brush.StatePressed, ctrl.State())
	mouse(m, tea.MouseActionMotion, 6, 4)
	assert.True(t, ctrl.Dragging())
	assert.NotEmpty(t, m.View())

	mouse(m, tea.MouseActionRelease, 6, 4)
	assert.Equal(t, brush.StateIdle, ctrl.State())
	assert.True(t, ctrl.Session().Brushed())
}

func TestModel_PressOutsidePlotIsIgnored(t *testing.T) {
	m := newTestModel(t, defaultConfig())
	ctrl := m.TestController(0)

	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, brush.StateIdle, ctrl.State())

	m.Update(tea.MouseMsg{
		X:      m.TestChart(0).GraphLeft() + 2,
		Y:      brushview.HeaderHeight + 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonRight,
	})
	assert.Equal(t, brush.StateIdle, ctrl.State())

	m.Update(tea.MouseMsg{
		X:      m.TestChart(0).GraphLeft() + 2,
		Y:      brushview.HeaderHeight + 2,
		Action: tea.MouseActionRelease,
	})
	assert.False(t, ctrl.Session().Brushed())
}

func TestModel_KeysZoomOutResetAndRebase(t *testing.T) {
	m := newTestModel(t, defaultConfig())
	chart := m.TestChart(0)
	session := m.TestController(0).Session()
	w := chart.GraphWidth()

	dragCols(m, 0, w-1, 2)
	dragCols(m, 0, w/4, 2)

	m.Update(key("backspace"))
	assert.Equal(t, 0, session.Depth())
	assert.True(t, session.Brushed())

	dragCols(m, 0, w/4, 2)
	m.Update(key("r"))
	assert.False(t, session.Brushed())
	assert.Equal(t, chart.Natural(), chart.ViewBounds())

	dragCols(m, 0, w/4, 2)
	zoomed := chart.ViewBounds()
	m.Update(key("b"))
	assert.False(t, session.Brushed())
	assert.Equal(t, zoomed, session.Original())
	assert.Equal(t, zoomed, chart.ViewBounds())
	assert.False(t, chart.Brushed())
	assert.Contains(t, m.TestStatus(), "original")

	// After rebasing, over-popping stays on the new original.
	m.Update(key("u"))
	assert.Equal(t, zoomed, chart.ViewBounds())
}

func TestModel_InvalidIntervalKeepsChartUsable(t *testing.T) {
	cfg := defaultConfig()
	cfg.Interval = "fortnight"
	m := newTestModel(t, cfg)
	chart := m.TestChart(0)
	session := m.TestController(0).Session()

	assert.Contains(t, m.TestWarning(), "invalid brushing interval")

	dragCols(m, 0, chart.GraphWidth()-1, 2)
	assert.False(t, session.Brushed(), "x zoom needs an interval")
	assert.Empty(t, m.Results())

	m.Update(key("u"))
	m.Update(key("r"))
	assert.Equal(t, chart.Natural(), chart.ViewBounds())
}

func TestModel_VerticalBrushingIgnoresInterval(t *testing.T) {
	cfg := defaultConfig()
	cfg.Axes = "y"
	cfg.Interval = "fortnight"
	m := newTestModel(t, cfg)
	chart := m.TestChart(0)
	before := chart.ViewBounds()

	mouse(m, tea.MouseActionPress, 3, 0)
	mouse(m, tea.MouseActionMotion, 3, chart.GraphHeight()/2)
	mouse(m, tea.MouseActionRelease, 3, chart.GraphHeight()/2)

	after := chart.ViewBounds()
	assert.True(t, m.TestController(0).Session().Brushed())
	assert.Equal(t, before.X, after.X)
	assert.Less(t, after.Y.Span(), before.Y.Span())
	assert.InDelta(t, before.Y.Max, after.Y.Max, before.Y.Span()/float64(chart.GraphHeight()))
}

func TestModel_VerticalBrushingFullHeightReachesEdges(t *testing.T) {
	cfg := defaultConfig()
	cfg.Axes = "y"
	m := newTestModel(t, cfg)
	chart := m.TestChart(0)
	before := chart.ViewBounds()

	mouse(m, tea.MouseActionPress, 3, 0)
	mouse(m, tea.MouseActionMotion, 3, chart.GraphHeight()-1)
	mouse(m, tea.MouseActionRelease, 3, chart.GraphHeight()-1)

	require.True(t, m.TestController(0).Session().Brushed())
	after := chart.ViewBounds()
	assert.InDelta(t, before.Y.Min, after.Y.Min, 1e-9)
	assert.InDelta(t, before.Y.Max, after.Y.Max, 1e-9)
}

func TestModel_ManualRedrawWaitsForKey(t *testing.T) {
	cfg := defaultConfig()
	cfg.ManualRedraw = true
	m := newTestModel(t, cfg)
	chart := m.TestChart(0)

	dragCols(m, 0, chart.GraphWidth()/4, 2)
	assert.True(t, m.TestController(0).Session().Brushed())
	assert.Len(t, m.Results(), 1)
	assert.Equal(t, chart.Natural(), chart.ViewBounds())

	m.Update(key("d"))
	assert.Equal(t, brush.Range{Min: 1, Max: 2}, chart.ViewBounds().X)
}

func TestModel_DisabledBrushing(t *testing.T) {
	cfg := defaultConfig()
	cfg.Brushing = false
	m := newTestModel(t, cfg)

	dragCols(m, 0, m.TestChart(0).GraphWidth()-1, 2)
	assert.False(t, m.TestController(0).Session().Brushed())
}

func TestModel_ChartsHaveIndependentSessions(t *testing.T) {
	m := newTestModel(t, defaultConfig(),
		&dataset.Series{Name: "loss", Points: scenario},
		&dataset.Series{Name: "loss", Points: scenario},
		&dataset.Series{Name: "acc", Points: scenario},
	)
	assert.Equal(t, []string{"acc", "loss", "loss#2"}, m.TestRegistry().Targets())

	dragCols(m, 0, m.TestChart(0).GraphWidth()-1, 2)
	m.Update(key("tab"))
	assert.Equal(t, 1, m.TestActive())
	assert.True(t, m.TestController(0).Session().Brushed())
	assert.False(t, m.TestController(1).Session().Brushed())

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, m.TestActive())
}

func TestModel_HelpAndQuit(t *testing.T) {
	m := newTestModel(t, defaultConfig())

	m.Update(key("?"))
	require.True(t, m.TestShowHelp())
	assert.Contains(t, m.View(), "Zoom out one level")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.TestShowHelp())

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_NoSeries(t *testing.T) {
	var m tea.Model = brushview.NewModel(brushview.Params{Config: defaultConfig()})
	assert.Equal(t, "Loading...", m.View())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.View(), "No data")
	m.Update(key("u"))
	m.Update(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}
