package brushview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wandb/chartbrush/internal/brush"
)

func (m *Model) handleResize(width, height int) {
	m.width, m.height = width, height
	w, h := m.chartSize()
	for i, c := range m.charts {
		c.Resize(w, h)
		// Label widths depend on the view range, so recompute it too.
		m.redrawChart(i)
	}
}

// handleKeyMsg dispatches through the key map.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if handler, ok := m.keyMap[msg.String()]; ok && handler != nil {
		return handler(m, msg)
	}
	if m.showHelp && msg.Type == tea.KeyEsc {
		m.showHelp = false
	}
	return nil
}

// handleMouseMsg turns left-button gestures on the active chart into
// brushing pointer events.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	chart, ctrl := m.activeChart()
	if chart == nil || m.showHelp {
		return nil
	}

	p, inside := chart.PlotPoint(msg.X, msg.Y-HeaderHeight)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return nil
		}
		ctrl.PointerDown(p)
	case tea.MouseActionMotion:
		ctrl.PointerMove(p)
	case tea.MouseActionRelease:
		m.report(ctrl.PointerUp(p, chart.BrushView()))
	}
	return nil
}

// report updates the status line for outcomes that do not go through the
// brush callback.
func (m *Model) report(out brush.Outcome) {
	switch out.Action {
	case brush.ActionRejected:
		m.logger.Debug("brushview: gesture rejected", "err", out.Err)
	case brush.ActionRebase:
		m.redrawChart(m.active)
		m.status = "current view is now the original"
	}
}

func (m *Model) handleToggleHelp(msg tea.KeyMsg) tea.Cmd {
	m.showHelp = !m.showHelp
	return nil
}

func (m *Model) handleQuit(msg tea.KeyMsg) tea.Cmd {
	m.logger.Debug("brushview: quit requested")
	return tea.Quit
}

func (m *Model) handleNextChart(msg tea.KeyMsg) tea.Cmd {
	m.switchChart(1)
	return nil
}

func (m *Model) handlePrevChart(msg tea.KeyMsg) tea.Cmd {
	m.switchChart(-1)
	return nil
}

func (m *Model) switchChart(delta int) {
	n := len(m.charts)
	if n == 0 {
		return
	}
	m.active = ((m.active+delta)%n + n) % n
	m.charts[m.active].dirty = true
}

func (m *Model) handleZoomOut(msg tea.KeyMsg) tea.Cmd {
	if _, ctrl := m.activeChart(); ctrl != nil {
		m.report(ctrl.ZoomOut())
	}
	return nil
}

func (m *Model) handleReset(msg tea.KeyMsg) tea.Cmd {
	if _, ctrl := m.activeChart(); ctrl != nil {
		m.report(ctrl.Reset())
	}
	return nil
}

func (m *Model) handleSetAsBase(msg tea.KeyMsg) tea.Cmd {
	if _, ctrl := m.activeChart(); ctrl != nil {
		m.report(ctrl.SetAsBase())
	}
	return nil
}

// handleRedraw applies pending zooms when redraws are manual.
func (m *Model) handleRedraw(msg tea.KeyMsg) tea.Cmd {
	for i := range m.charts {
		m.redrawChart(i)
	}
	return nil
}
