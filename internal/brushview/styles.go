package brushview

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	HeaderHeight    = 1
	StatusBarHeight = 1
	MinChartWidth   = 20
	MinChartHeight  = 5
)

const brandColor = lipgloss.Color("#FCBC32")

var graphColors = []string{
	"#E281FE", "#58D3E9", "#7DDB89", "#FCBC32", "#FF7A88", "#A5A5FF",
}

// GraphColor returns the line color for the i-th chart.
func GraphColor(i int) lipgloss.Color {
	return lipgloss.Color(graphColors[i%len(graphColors)])
}

var (
	colorSubtle  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6A6A6A"}
	colorText    = lipgloss.AdaptiveColor{Light: "#111111", Dark: "#EEEEEE"}
	colorWarning = lipgloss.Color("#FF7A88")

	axisStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// selectionStyle highlights the candidate rectangle while dragging.
	selectionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3A3A5A")).
			Foreground(colorText)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(brandColor).
			Bold(true).
			Padding(0, 1)

	brushedMarkerStyle = lipgloss.NewStyle().Foreground(brandColor)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#303030"}).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(brandColor).
			Bold(true).
			Width(22)

	helpDescStyle    = lipgloss.NewStyle().Foreground(colorText)
	helpSectionStyle = lipgloss.NewStyle().
				Foreground(brandColor).
				Bold(true).
				MarginTop(1)
)

// brushedMarker is appended to the title of a brushed chart.
const brushedMarker = "◆ brushed"
