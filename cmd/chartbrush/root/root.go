package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/wandb/chartbrush/cmd/chartbrush/root/config"
	"github.com/wandb/chartbrush/cmd/chartbrush/root/resolve"
	"github.com/wandb/chartbrush/cmd/chartbrush/root/version"
	"github.com/wandb/chartbrush/cmd/chartbrush/root/view"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chartbrush <command> [flags]",
		Short: "Drag-to-zoom line charts in the terminal",
		Long: heredoc.Doc(`
			chartbrush draws line charts of CSV, JSON Lines or YAML series and
			lets you zoom into them by dragging a selection with the mouse.
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(view.NewViewCmd())
	cmd.AddCommand(resolve.NewResolveCmd())
	cmd.AddCommand(config.NewConfigCmd())
	cmd.AddCommand(version.NewVersionCmd())

	return cmd
}
