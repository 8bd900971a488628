package settings

import (
	"github.com/spf13/pflag"

	"github.com/wandb/chartbrush/internal/brush"
)

// FlagKeys maps command-line flags to the setting they override.
var FlagKeys = map[string]string{
	"brushing":      KeyBrushing,
	"history":       KeyHistory,
	"manual-redraw": KeyManualRedraw,
	"interval":      KeyInterval,
	"axes":          KeyAxes,
	"padding":       KeyPadding,
	"time-series":   KeyTimeSeries,
	"x":             KeyXAccessor,
	"y":             KeyYAccessor,
	"log-file":      KeyLogFile,
	"log-level":     KeyLogLevel,
}

// AddFlags registers the brushing flags. Their defaults only document the
// built-in values; unset flags leave the config file in charge.
func AddFlags(fs *pflag.FlagSet) {
	fs.Bool("brushing", true, "Enable drag-to-zoom")
	fs.Bool("history", true, "Click without dragging to zoom out")
	fs.Bool("manual-redraw", false, "Only redraw zoomed charts on request")
	fs.String("interval", "", "Snapping interval: a number or second|minute|hour|day|week|month|year")
	fs.String("axes", "xy", "Axes to brush: x, y or xy")
	fs.Float64("padding", brush.DefaultPadding, "Fraction by which resolved y ranges are widened")
	fs.Bool("time-series", false, "Treat x values as unix seconds")
	fs.String("x", "x", "Field holding x values")
	fs.String("y", "y", "Field holding y values")
	fs.String("log-file", "", "Write logs to this file")
	fs.String("log-level", "info", "Log level: debug, info, warn or error")
}
