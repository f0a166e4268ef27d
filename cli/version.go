package cli

import (
	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if fromContext(cmd).output == "json" {
				return writeJSON(out, versionInfo{Version: Version, GitCommit: GitCommit})
			}
			fprintf(out, "wealth %s\n", Version)
			fprintf(out, "  commit: %s\n", GitCommit)
			return nil
		},
	}
}
