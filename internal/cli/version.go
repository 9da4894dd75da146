package cli

import (
	"fmt"

	"github.com/linyuyun1234-arch/opcode/internal/branding"
	"github.com/spf13/cobra"
)

func newVersionCmd(info buildInfo) *cobra.Command {
	var short bool

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, info.Version)
				return nil
			}

			asJSON, _ := cmd.Flags().GetBool("json")
			if asJSON {
				return printJSON(out, info)
			}

			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
			return nil
		},
	}
	versionCmd.Flags().BoolVar(&short, "short", false, "Print version number only")
	return versionCmd
}
