package version

import (
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/wandb/chartbrush/internal/cliutil"
)

// Set with -ldflags "-X github.com/wandb/chartbrush/cmd/chartbrush/root/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info is the build information of the running binary. Version and
// GitCommit are also the release tags of Sentry events.
func Info() map[string]any {
	return map[string]any{
		"version":    Version,
		"git_commit": GitCommit,
		"build_date": BuildDate,
		"go_version": runtime.Version(),
		"platform":   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Example: heredoc.Doc(`
			$ chartbrush version --template '{{.version}} ({{.git_commit}})'
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cliutil.HandleOutput(cmd, Info())
		},
	}

	cliutil.AddOutputFlags(cmd)

	return cmd
}
