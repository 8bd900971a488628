// Package settings reads brushing configuration from viper.
package settings

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/viper"

	"github.com/wandb/chartbrush/internal/brush"
	"github.com/wandb/chartbrush/internal/dataset"
)

const (
	KeyBrushing     = "brushing"
	KeyHistory      = "brushing_history"
	KeyManualRedraw = "brushing_manual_redraw"
	KeyInterval     = "brushing_interval"
	KeyAxes         = "brushing_axes"
	KeyPadding      = "brushing_padding"
	KeyTimeSeries   = "time_series"
	KeyXAccessor    = "x_accessor"
	KeyYAccessor    = "y_accessor"
	KeyLogFile      = "log_file"
	KeyLogLevel     = "log_level"
	KeySentryDSN    = "sentry_dsn"
)

// ValidKeys lists the keys accepted by "config set".
var ValidKeys = []string{
	KeyBrushing,
	KeyHistory,
	KeyManualRedraw,
	KeyInterval,
	KeyAxes,
	KeyPadding,
	KeyTimeSeries,
	KeyXAccessor,
	KeyYAccessor,
	KeyLogFile,
	KeyLogLevel,
	KeySentryDSN,
}

// IsValidKey reports whether key is a known setting.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys, key)
}

var ErrInvalidPadding = errors.New("settings: brushing_padding must not be negative")

// Config is the brushing configuration of a chart host.
type Config struct {
	Brushing     bool
	History      bool
	ManualRedraw bool

	// Interval is the raw interval setting; see brush.ParseInterval.
	Interval string
	Axes     string
	Padding  float64

	TimeSeries bool

	XAccessor string
	YAccessor string

	LogFile   string
	LogLevel  string
	SentryDSN string
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBrushing, true)
	v.SetDefault(KeyHistory, true)
	v.SetDefault(KeyManualRedraw, false)
	v.SetDefault(KeyInterval, "")
	v.SetDefault(KeyAxes, "xy")
	v.SetDefault(KeyPadding, brush.DefaultPadding)
	v.SetDefault(KeyTimeSeries, false)
	v.SetDefault(KeyXAccessor, "x")
	v.SetDefault(KeyYAccessor, "y")
	v.SetDefault(KeyLogLevel, "info")
}

// Load reads a Config from v. Call SetDefaults first for unset keys to
// take their defaults.
func Load(v *viper.Viper) Config {
	return Config{
		Brushing:     v.GetBool(KeyBrushing),
		History:      v.GetBool(KeyHistory),
		ManualRedraw: v.GetBool(KeyManualRedraw),
		Interval:     v.GetString(KeyInterval),
		Axes:         v.GetString(KeyAxes),
		Padding:      v.GetFloat64(KeyPadding),
		TimeSeries:   v.GetBool(KeyTimeSeries),
		XAccessor:    v.GetString(KeyXAccessor),
		YAccessor:    v.GetString(KeyYAccessor),
		LogFile:      v.GetString(KeyLogFile),
		LogLevel:     v.GetString(KeyLogLevel),
		SentryDSN:    v.GetString(KeySentryDSN),
	}
}

// Options returns the controller options. Callbacks are left for the host.
func (c Config) Options() brush.Options {
	return brush.Options{
		Enabled:      c.Brushing,
		History:      c.History,
		ManualRedraw: c.ManualRedraw,
	}
}

// Accessors returns the dataset field names for x and y.
func (c Config) Accessors() dataset.Accessors {
	return dataset.Accessors{X: c.XAccessor, Y: c.YAccessor}
}

// Resolver builds the bounds resolver.
//
// The returned resolver is always usable. When the interval is invalid it
// has no interval, so x zooms are rejected while everything else works, and
// the error wraps brush.ErrInvalidInterval.
func (c Config) Resolver() (brush.Resolver, error) {
	var errs []error

	axes, err := brush.ParseAxes(c.Axes)
	if err != nil {
		errs = append(errs, err)
		axes = brush.AxesXY
	}

	interval, err := brush.ParseInterval(c.Interval, c.TimeSeries)
	if err != nil {
		errs = append(errs, err)
	}

	r := brush.NewResolver(axes, interval)
	if c.Padding < 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidPadding, c.Padding))
	} else {
		r.Padding = c.Padding
	}
	return r, errors.Join(errs...)
}
