package cli

import (
	"fmt"
	"path/filepath"

	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"github.com/linyuyun1234-arch/opcode/internal/config"
	"github.com/linyuyun1234-arch/opcode/internal/installer"
	"github.com/linyuyun1234-arch/opcode/internal/marketplace"
	"github.com/spf13/cobra"
)

func newSkillsCmd(opts *globalOptions) *cobra.Command {
	skillsCmd := &cobra.Command{
		Use:   "skills",
		Short: "Browse and install skills from the skills marketplace",
	}

	listCmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List available skills",
		Long: `List the skills published in the anthropics/skills repository.

The query matches names and descriptions (case-insensitive substring). When the
registry cannot be reached the built-in skills catalog is listed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Current()
			res := marketplace.NewService(newFetcher(settings), settings.GitHubAPIEndpoint).Skills(cmd.Context())
			return printResolution(cmd, opts, res, args)
		},
	}

	var project string
	installCmd := &cobra.Command{
		Use:   "install <name>",
		Short: "Install a skill into a project",
		Long: `Download a skill's SKILL.md and write it to
<project>/.claude/skills/<name>/SKILL.md, replacing any existing copy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(project)
			if err != nil {
				return fmt.Errorf("resolving project path: %w", err)
			}

			settings := config.Current()
			dest, err := installer.New(newFetcher(settings), settings.GitHubRawEndpoint).Install(cmd.Context(), root, args[0])
			if err != nil {
				return err
			}

			if opts.json {
				return printJSON(cmd.OutOrStdout(), map[string]string{"name": args[0], "path": dest})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed %s to %s\n", args[0], dest)
			return nil
		},
	}
	installCmd.Flags().StringVarP(&project, "project", "p", ".", "Project directory to install into")

	skillsCmd.AddCommand(listCmd, installCmd)
	return skillsCmd
}

func newMCPCmd(opts *globalOptions) *cobra.Command {
	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Browse the MCP server marketplace",
	}

	listCmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List reference MCP servers",
		Long: `List the servers published in the modelcontextprotocol/servers repository.

When the registry cannot be reached, is rate limited or lists no servers, a
built-in catalog of eight well-known servers is listed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Current()
			res := marketplace.NewService(newFetcher(settings), settings.GitHubAPIEndpoint).MCPServers(cmd.Context())
			return printResolution(cmd, opts, res, args)
		},
	}

	mcpCmd.AddCommand(listCmd)
	return mcpCmd
}

func newMarketplaceCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "marketplace [query]",
		Short: "List skills and MCP servers together",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := config.Current()
			listing := marketplace.NewService(newFetcher(settings), settings.GitHubAPIEndpoint).All(cmd.Context())

			query := firstArg(args)
			listing.Skills.Entries = catalog.Filter(listing.Skills.Entries, query)
			listing.MCPServers.Entries = catalog.Filter(listing.MCPServers.Entries, query)

			if opts.json {
				return printJSON(cmd.OutOrStdout(), listing)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Skills")
			if err := printEntries(out, listing.Skills); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "MCP servers")
			return printEntries(out, listing.MCPServers)
		},
	}
}

// printResolution filters res by the optional query and prints it.
func printResolution(cmd *cobra.Command, opts *globalOptions, res catalog.Resolution, args []string) error {
	res.Entries = catalog.Filter(res.Entries, firstArg(args))
	if opts.json {
		return printJSON(cmd.OutOrStdout(), res)
	}
	return printEntries(cmd.OutOrStdout(), res)
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
