package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/linyuyun1234-arch/opcode/internal/branding"
	"github.com/linyuyun1234-arch/opcode/internal/config"
	"github.com/linyuyun1234-arch/opcode/internal/credentials"
	"github.com/linyuyun1234-arch/opcode/internal/fetch"
	"github.com/linyuyun1234-arch/opcode/internal/logging"
	"github.com/spf13/cobra"
)

// buildInfo is injected via ldflags at build time.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
	noColor bool
	json    bool
	envFile string
}

// NewRootCmd builds the full command tree.
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &globalOptions{}
	info := buildInfo{Version: version, Commit: commit, Date: date}

	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` aggregates the Anthropic model catalog, the skills marketplace and
the MCP server registry into uniform catalogs, and installs skills into a project.

Marketplace listings never fail: when a registry is unreachable, rate limited
or returns nothing usable, a built-in catalog is shown instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.Load()
			settings := config.Current()
			logging.Setup(cmd.ErrOrStderr(), opts.verbose, opts.noColor, settings.LogLevel)

			if opts.envFile != "" {
				if err := credentials.LoadEnvFile(opts.envFile); err != nil {
					return err
				}
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log requests and fallback decisions to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored log output")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print results and errors as JSON")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Load environment variables (e.g. ANTHROPIC_API_KEY) from a .env file")

	rootCmd.AddCommand(
		newModelsCmd(opts),
		newSkillsCmd(opts),
		newMCPCmd(opts),
		newMarketplaceCmd(opts),
		newAgentsCmd(opts),
		newConfigCmd(),
		newDoctorCmd(),
		newVersionCmd(info),
	)
	return rootCmd
}

// Execute runs the root command with build info injected via ldflags.
// Errors are rendered to stderr before being returned.
func Execute(version, commit, date string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd(version, commit, date)
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		asJSON, _ := rootCmd.PersistentFlags().GetBool("json")
		printError(rootCmd.ErrOrStderr(), err, asJSON)
	}
	return err
}

// newFetcher builds the shared fetcher from the loaded settings.
func newFetcher(s config.Settings) *fetch.HTTPFetcher {
	return fetch.New(
		fetch.WithTimeout(s.FetchTimeout),
		fetch.WithRetries(s.FetchRetries),
	)
}
