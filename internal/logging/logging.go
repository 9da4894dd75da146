// Package logging configures the global zerolog logger for the CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at w. Logging is disabled unless verbose is
// set; level falls back to debug when it cannot be parsed.
func Setup(w io.Writer, verbose, noColor bool, level string) {
	if !verbose {
		log.Logger = zerolog.Nop()
		return
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	log.Logger = zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
