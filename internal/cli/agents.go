package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"github.com/linyuyun1234-arch/opcode/internal/templates"
	"github.com/spf13/cobra"
)

func newAgentsCmd(opts *globalOptions) *cobra.Command {
	agentsCmd := &cobra.Command{
		Use:   "agents",
		Short: "Built-in agent templates",
	}

	var category string
	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "List the built-in agent templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []catalog.AgentTemplate
			if category != "" {
				list = templates.ByCategory(category)
			} else {
				list = templates.All()
			}

			if opts.json {
				if list == nil {
					list = []catalog.AgentTemplate{}
				}
				return printJSON(cmd.OutOrStdout(), list)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tCATEGORY\tDESCRIPTION")
			for _, t := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Category, truncate(t.Description, maxDescription))
			}
			return w.Flush()
		},
	}
	templatesCmd.Flags().StringVar(&category, "category", "", "Only show templates in this category (e.g., Coding)")

	agentsCmd.AddCommand(templatesCmd)
	return agentsCmd
}
