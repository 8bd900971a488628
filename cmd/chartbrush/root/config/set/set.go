package set

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wandb/chartbrush/internal/brush"
	"github.com/wandb/chartbrush/internal/cliutil"
	"github.com/wandb/chartbrush/internal/settings"
)

func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  `Set a configuration value that will be persisted in the config file.`,
		Example: heredoc.Doc(`
			# Snap x selections to whole weeks
			$ chartbrush config set brushing_interval week

			# Only brush the y axis
			$ chartbrush config set brushing_axes y

			# Disable click-to-zoom-out
			$ chartbrush config set brushing_history false
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			if !settings.IsValidKey(key) {
				return fmt.Errorf("invalid config key: %s. Valid keys are: %v", key, settings.ValidKeys)
			}
			if err := validate(key, value); err != nil {
				return err
			}

			viper.Set(key, cliutil.ParseValue(value))

			if err := viper.WriteConfig(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully set %s = %s\n", key, value)
			return nil
		},
	}

	return cmd
}

// validate rejects values that would only fail once a chart is opened.
func validate(key, value string) error {
	switch key {
	case settings.KeyInterval:
		_, err := brush.ParseInterval(value, false)
		return err
	case settings.KeyAxes:
		_, err := brush.ParseAxes(value)
		return err
	}
	return nil
}
