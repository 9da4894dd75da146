package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/linyuyun1234-arch/opcode/internal/apperr"
	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// maxDescription bounds the description column in tables.
const maxDescription = 60

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// truncate shortens s to n runes, ending in "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printEntries writes a catalog as a table followed by a one-line summary
// noting whether the listing is live or the built-in catalog.
func printEntries(w io.Writer, res catalog.Resolution) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION\tURL")
	for _, e := range res.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name(), truncate(e.Description(), maxDescription), e.SourceURL())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, summary(res))
	return err
}

func summary(res catalog.Resolution) string {
	if res.Live {
		return printer.Sprintf("%d entries (live)", len(res.Entries))
	}
	return printer.Sprintf("%d entries (built-in catalog, registry unavailable: %s)", len(res.Entries), fallbackReason(res))
}

func fallbackReason(res catalog.Resolution) string {
	if res.Reason == catalog.ReasonStatus {
		return printer.Sprintf("status %d", res.Status)
	}
	return string(res.Reason)
}

// errorJSON is the structured error printed in --json mode.
type errorJSON struct {
	Kind   apperr.Kind `json:"kind"`
	Error  string      `json:"error"`
	Status int         `json:"status,omitempty"`
}

// printError renders err so callers can branch on its kind.
func printError(w io.Writer, err error, asJSON bool) {
	if asJSON {
		out := errorJSON{Kind: apperr.KindOf(err), Error: err.Error()}
		var ae *apperr.Error
		if errors.As(err, &ae) {
			out.Status = ae.Status
		}
		_ = printJSON(w, out)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", strings.TrimSpace(err.Error()))
}
