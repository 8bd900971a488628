package list

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wandb/chartbrush/internal/cliutil"
	"github.com/wandb/chartbrush/internal/settings"
)

// Values returns the effective value of every setting in v.
func Values(v *viper.Viper) map[string]any {
	out := make(map[string]any, len(settings.ValidKeys))
	for _, key := range settings.ValidKeys {
		out[key] = v.Get(key)
	}
	return out
}

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the effective brushing and logging settings",
		Long: heredoc.Doc(`
			Print every setting after applying defaults, the config file and
			CHARTBRUSH_* environment variables.
		`),
		Example: heredoc.Doc(`
			$ chartbrush config list --format yaml
			$ chartbrush config list --template '{{.brushing_interval}}'
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.HandleOutput(cmd, Values(viper.GetViper()))
		},
	}

	cliutil.AddOutputFlags(cmd)

	return cmd
}
