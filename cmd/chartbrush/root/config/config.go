package config

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/wandb/chartbrush/cmd/chartbrush/root/config/list"
	"github.com/wandb/chartbrush/cmd/chartbrush/root/config/set"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Read and persist brushing settings",
		Long: heredoc.Doc(`
			Settings live in $HOME/.chartbrush.yaml unless --config names
			another file. Flags of the view and resolve commands override them
			for a single run.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(list.NewListCmd())
	cmd.AddCommand(set.NewSetCmd())

	return cmd
}
