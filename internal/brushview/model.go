// Package brushview is a terminal chart viewer with drag-to-zoom brushing.
package brushview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wandb/chartbrush/internal/brush"
	"github.com/wandb/chartbrush/internal/dataset"
	"github.com/wandb/chartbrush/internal/observability"
	"github.com/wandb/chartbrush/internal/settings"
)

// Params configures a Model.
type Params struct {
	Series []*dataset.Series
	Config settings.Config
	Logger *observability.CoreLogger

	// OnBrush is called after a chart's view changed.
	OnBrush func(target string, b brush.Bounds)
}

// Model is the bubbletea model of the chart viewer. It shows one chart at a
// time; each chart has its own brushing session.
type Model struct {
	charts      []*LineChart
	controllers []*brush.Controller
	registry    *brush.Registry

	active        int
	width, height int
	showHelp      bool

	status  string
	warning string
	results map[string]brush.Bounds

	onBrush func(string, brush.Bounds)
	keyMap  map[string]func(*Model, tea.KeyMsg) tea.Cmd
	logger  *observability.CoreLogger
}

func NewModel(params Params) *Model {
	logger := params.Logger
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}

	m := &Model{
		registry: brush.NewRegistry(),
		results:  make(map[string]brush.Bounds),
		onBrush:  params.OnBrush,
		keyMap:   buildKeyMap(ModelKeyBindings()),
		logger:   logger,
	}

	seen := make(map[string]int)
	for _, s := range params.Series {
		target := s.Name
		if n := seen[s.Name]; n > 0 {
			target = fmt.Sprintf("%s#%d", s.Name, n+1)
		}
		seen[s.Name]++
		m.addChart(target, s.Points, params.Config)
	}
	return m
}

func (m *Model) addChart(target string, points []brush.Point, cfg settings.Config) {
	idx := len(m.charts)
	chart := NewLineChart(MinChartWidth, MinChartHeight, idx, target, points)
	session := m.registry.Ensure(target, chart.Natural())

	resolver, err := cfg.Resolver()
	if err != nil {
		// The chart keeps working: zoom-out and reset do not need the
		// interval, and zoom-ins that do are rejected.
		m.logger.CaptureWarn("brushview: invalid brushing settings",
			"target", target, "err", err.Error())
		m.warning = fmt.Sprintf("brushing settings: %v", err)
	}

	opts := cfg.Options()
	opts.Redraw = func(brush.Bounds) { m.redrawChart(idx) }
	opts.OnBrush = func(b brush.Bounds) { m.handleBrushed(target, b) }

	m.charts = append(m.charts, chart)
	m.controllers = append(m.controllers, brush.NewController(session, resolver, opts, m.logger))
	chart.ApplyOverride(session)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m, m.handleMouseMsg(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderChart(),
		m.renderStatusBar(),
	)
}

// Results returns the last bounds reported for each brushed chart.
func (m *Model) Results() map[string]brush.Bounds {
	out := make(map[string]brush.Bounds, len(m.results))
	for k, v := range m.results {
		out[k] = v
	}
	return out
}

func (m *Model) activeChart() (*LineChart, *brush.Controller) {
	if m.active < 0 || m.active >= len(m.charts) {
		return nil, nil
	}
	return m.charts[m.active], m.controllers[m.active]
}

func (m *Model) chartSize() (int, int) {
	w := max(m.width, MinChartWidth)
	h := max(m.height-HeaderHeight-StatusBarHeight, MinChartHeight)
	return w, h
}

func (m *Model) redrawChart(idx int) {
	m.charts[idx].ApplyOverride(m.controllers[idx].Session())
}

func (m *Model) handleBrushed(target string, b brush.Bounds) {
	m.results[target] = b
	m.status = fmt.Sprintf("%s: %s", target, b)
	m.logger.Debug("brushview: brushed", "target", target, "bounds", b.String())
	if m.onBrush != nil {
		m.onBrush(target, b)
	}
}

func (m *Model) renderHeader() string {
	tabs := make([]string, 0, len(m.charts))
	for i, c := range m.charts {
		title := c.Target()
		if c.Brushed() {
			title += " " + brushedMarkerStyle.Render(brushedMarker)
		}
		style := tabStyle
		if i == m.active {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(title))
	}
	return lipgloss.NewStyle().
		MaxWidth(m.width).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m *Model) renderChart() string {
	chart, ctrl := m.activeChart()
	if chart == nil {
		_, h := m.chartSize()
		return lipgloss.Place(m.width, h, lipgloss.Center, lipgloss.Center, "No data")
	}

	if sel, ok := ctrl.Selection(); ok && ctrl.Dragging() {
		chart.Draw()
		chart.DrawSelection(sel, ctrl.Resolver().Axes)
		// Drop the overlay on the next frame.
		chart.dirty = true
	} else {
		chart.DrawIfNeeded()
	}
	return chart.View()
}

func (m *Model) renderStatusBar() string {
	left := m.status
	if m.warning != "" {
		left = warningStyle.Render(m.warning)
	}

	var right string
	if _, ctrl := m.activeChart(); ctrl != nil {
		r := ctrl.Resolver()
		interval := "none"
		if r.Interval != nil {
			interval = fmt.Sprint(r.Interval)
		}
		right = fmt.Sprintf("depth %d · axes %s · interval %s",
			ctrl.Session().Depth(), r.Axes, interval)
	}

	inner := max(m.width-2, 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + right
	return statusBarStyle.MaxWidth(m.width).Render(line)
}
