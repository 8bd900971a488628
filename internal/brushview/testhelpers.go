package brushview

import "github.com/wandb/chartbrush/internal/brush"

// Accessors for tests in brushview_test.

func (m *Model) TestActive() int { return m.active }

func (m *Model) TestShowHelp() bool { return m.showHelp }

func (m *Model) TestStatus() string { return m.status }

func (m *Model) TestWarning() string { return m.warning }

func (m *Model) TestRegistry() *brush.Registry { return m.registry }

func (m *Model) TestChart(i int) *LineChart { return m.charts[i] }

func (m *Model) TestController(i int) *brush.Controller { return m.controllers[i] }
