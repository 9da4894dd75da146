package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/linyuyun1234-arch/opcode/internal/config"
	"github.com/linyuyun1234-arch/opcode/internal/credentials"
	"github.com/linyuyun1234-arch/opcode/internal/models"
	"github.com/spf13/cobra"
)

func newModelsCmd(opts *globalOptions) *cobra.Command {
	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "Query the Anthropic model catalog",
	}

	var apiKey string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available Anthropic models",
		Long: `List the models available to an API key.

The key is taken from --api-key, then ANTHROPIC_API_KEY, then CLAUDE_API_KEY.
Unlike marketplace listings this command has no built-in fallback: a missing
key or a rejected request is reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Current()
			lister := models.NewLister(newFetcher(settings), credentials.NewResolver(), settings.AnthropicEndpoint)

			page, err := lister.List(cmd.Context(), apiKey)
			if err != nil {
				return err
			}

			if opts.json {
				return printJSON(cmd.OutOrStdout(), page)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tDISPLAY NAME\tCREATED\tTYPE")
			for _, m := range page.Entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.DisplayName, m.CreatedAt, m.ModelType)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if page.HasMore {
				fmt.Fprintln(cmd.OutOrStdout(), "More models are available.")
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&apiKey, "api-key", "", "Anthropic API key (overrides environment)")

	modelsCmd.AddCommand(listCmd)
	return modelsCmd
}
