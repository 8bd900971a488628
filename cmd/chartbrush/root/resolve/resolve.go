package resolve

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wandb/chartbrush/internal/brush"
	"github.com/wandb/chartbrush/internal/cliutil"
	"github.com/wandb/chartbrush/internal/dataset"
	"github.com/wandb/chartbrush/internal/observability"
	"github.com/wandb/chartbrush/internal/settings"
)

func NewResolveCmd() *cobra.Command {
	var x0, x1, y0, y1 float64

	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolve a selection to zoom bounds without a terminal UI",
		Long: heredoc.Doc(`
			Resolve a selection given in data coordinates the way a drag over
			the chart would, and print the resulting bounds.

			With x brushing the x range is snapped to the interval and widened
			until it holds data; with xy brushing the y range is derived from
			the selected points. With y brushing only --y0 and --y1 are used.
		`),
		Example: heredoc.Doc(`
			$ chartbrush resolve loss.csv --x0 1.4 --x1 4.6
			{
			  "max_x": 5,
			  "max_y": 22,
			  "min_x": 1,
			  "min_y": 4.5
			}

			$ chartbrush resolve loss.csv --axes y --y0 5 --y1 10 --template '{{.min_y}}'
		`),
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.BindFlags(cmd, settings.FlagKeys)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings.Load(viper.GetViper())

			logger, closer, err := observability.NewFileLogger(cfg.LogFile, cfg.LogLevel, nil)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer closer.Close()

			resolver, err := cfg.Resolver()
			if err != nil {
				return err
			}

			s, err := dataset.Load(afero.NewOsFs(), args[0], cfg.Accessors())
			if err != nil {
				return err
			}

			natural, ok := extent(s.Points)
			if !ok {
				return brush.ErrNoData
			}
			if !cliutil.Changed(cmd.Flags(), "x0") {
				x0 = natural.X.Min
			}
			if !cliutil.Changed(cmd.Flags(), "x1") {
				x1 = natural.X.Max
			}
			if !cliutil.Changed(cmd.Flags(), "y0") {
				y0 = natural.Y.Min
			}
			if !cliutil.Changed(cmd.Flags(), "y1") {
				y1 = natural.Y.Max
			}

			view, sel := dataView(natural, s.Points, x0, x1, y0, y1)
			b, err := resolver.Resolve(sel, view)
			if err != nil {
				return fmt.Errorf("selection rejected: %w", err)
			}
			logger.Debug("resolve: resolved", "bounds", b.String())
			return cliutil.HandleOutput(cmd, b.Map())
		},
	}

	settings.AddFlags(cmd.Flags())
	cmd.Flags().Float64Var(&x0, "x0", 0, "Selection start on the x axis (default: data minimum)")
	cmd.Flags().Float64Var(&x1, "x1", 0, "Selection end on the x axis (default: data maximum)")
	cmd.Flags().Float64Var(&y0, "y0", 0, "Selection start on the y axis (default: data minimum)")
	cmd.Flags().Float64Var(&y1, "y1", 0, "Selection end on the y axis (default: data maximum)")
	cliutil.AddOutputFlags(cmd)

	return cmd
}

// extent is the displayed range of the data before any zoom.
func extent(points []brush.Point) (brush.Bounds, bool) {
	x, y, ok := brush.Extent(points)
	if !ok {
		return brush.Bounds{}, false
	}
	return brush.XYBounds(x.Min, x.Max, y.Min, y.Max), true
}

// dataView places a selection made in data coordinates on a virtual plot
// whose x pixels equal data values and whose height is one unit, so the
// resolver sees exactly the requested ranges.
func dataView(natural brush.Bounds, points []brush.Point, x0, x1, y0, y1 float64) (brush.View, brush.Selection) {
	view := brush.View{
		XScale:     brush.NewLinearScale(natural.X, natural.X),
		YScale:     brush.NewLinearScale(natural.Y, brush.Range{Min: 1, Max: 0}),
		PlotHeight: 1,
		Data:       points,
	}

	top := func(y float64) float64 {
		if natural.Y.Span() == 0 {
			return 0
		}
		return (natural.Y.Max - y) / natural.Y.Span()
	}
	sel := brush.NewSelection(
		brush.Point{X: x0, Y: top(y1)},
		brush.Point{X: x1, Y: top(y0)},
	)
	return view, sel
}
