package view

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wandb/chartbrush/cmd/chartbrush/root/version"
	"github.com/wandb/chartbrush/internal/brushview"
	"github.com/wandb/chartbrush/internal/cliutil"
	"github.com/wandb/chartbrush/internal/dataset"
	"github.com/wandb/chartbrush/internal/observability"
	"github.com/wandb/chartbrush/internal/sentry_ext"
	"github.com/wandb/chartbrush/internal/settings"
)

func NewViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>...",
		Short: "Open series in the interactive chart viewer",
		Long: heredoc.Doc(`
			Draw each file as a line chart. Drag with the left mouse button to
			zoom into a region; click to step back out.
		`),
		Example: heredoc.Doc(`
			# Browse two runs, snapping selections to whole steps of 10
			$ chartbrush view loss.csv acc.csv --x step --y value --interval 10

			# Daily time series; print the final zoom of each chart on exit
			$ chartbrush view metrics.jsonl --x time --time-series --print
		`),
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.BindFlags(cmd, settings.FlagKeys)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings.Load(viper.GetViper())

			sentry := sentry_ext.New(sentry_ext.Params{
				DSN:     cfg.SentryDSN,
				Release: version.Version,
				Commit:  version.GitCommit,
			})
			defer sentry.Flush(2 * time.Second)

			logger, closer, err := observability.NewFileLogger(cfg.LogFile, cfg.LogLevel, sentry)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer closer.Close()

			fs := afero.NewOsFs()
			series := make([]*dataset.Series, 0, len(args))
			for _, path := range args {
				s, err := dataset.Load(fs, path, cfg.Accessors())
				if err != nil {
					return err
				}
				if s.Skipped > 0 {
					logger.Warn("view: skipped rows without values", "path", path, "rows", s.Skipped)
				}
				series = append(series, s)
			}

			model := brushview.NewModel(brushview.Params{
				Series: series,
				Config: cfg,
				Logger: logger,
			})
			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
			if _, err := program.Run(); err != nil {
				logger.CaptureError(err)
				return err
			}

			if printResults, _ := cmd.Flags().GetBool("print"); printResults {
				out := make(map[string]map[string]any)
				for target, b := range model.Results() {
					out[target] = b.Map()
				}
				return cliutil.HandleOutput(cmd, out)
			}
			return nil
		},
	}

	settings.AddFlags(cmd.Flags())
	cmd.Flags().Bool("print", false, "Print the last zoom of each chart on exit")
	cliutil.AddOutputFlags(cmd)

	return cmd
}
