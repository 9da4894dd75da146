package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"github.com/linyuyun1234-arch/opcode/internal/config"
	"github.com/linyuyun1234-arch/opcode/internal/credentials"
	"github.com/linyuyun1234-arch/opcode/internal/marketplace"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, credentials and registry access",
		Long: `Run diagnostic checks on the local setup.

Registries that cannot be reached are reported as warnings: listings still work
from the built-in catalogs, but results may be out of date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			settings := config.Current()

			checkConfig(out)
			checkCredentials(out, credentials.NewResolver())

			fmt.Fprintln(out, "Registry check:")
			listing := marketplace.NewService(newFetcher(settings), settings.GitHubAPIEndpoint).All(cmd.Context())
			reportRegistry(out, "skills", listing.Skills)
			reportRegistry(out, "MCP servers", listing.MCPServers)
			return nil
		},
	}
}

func checkConfig(w io.Writer) {
	fmt.Fprintln(w, "Config check:")
	path := config.FilePath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(w, "  [INFO] %s not found, using defaults\n", path)
		return
	} else if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
}

func checkCredentials(w io.Writer, r *credentials.Resolver) {
	fmt.Fprintln(w, "Credentials check:")
	if name := r.Source(); name != "" {
		fmt.Fprintf(w, "  [ OK ] API key found in %s\n", name)
		return
	}
	fmt.Fprintf(w, "  [MISS] no API key (set %s or pass --api-key)\n", strings.Join(credentials.EnvVars(), " or "))
}

func reportRegistry(w io.Writer, label string, res catalog.Resolution) {
	if res.Live {
		fmt.Fprintf(w, "  [ OK ] %s registry reachable (%s)\n", label, printer.Sprintf("%d entries", len(res.Entries)))
		return
	}
	fmt.Fprintf(w, "  [WARN] %s registry unavailable (%s), using built-in catalog\n", label, fallbackReason(res))
}
