package cli

import (
	"fmt"

	"github.com/linyuyun1234-arch/opcode/internal/branding"
	"github.com/linyuyun1234-arch/opcode/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: fmt.Sprintf(`Read and write settings stored at ~/%s/config.yaml.

Keys: %s, %s, %s, %s, %s, %s.`,
			branding.HomeDir(),
			config.KeyFetchTimeout, config.KeyFetchRetries,
			config.KeyAnthropicEndpoint, config.KeyGitHubAPIEndpoint, config.KeyGitHubRawEndpoint,
			config.KeyLogLevel),
	}

	configSetCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}

	configGetCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	}

	configCmd.AddCommand(configSetCmd, configGetCmd)
	return configCmd
}
