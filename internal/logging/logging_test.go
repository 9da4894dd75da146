package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupVerbose(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, true, true, "info")
	t.Cleanup(func() { Setup(nil, false, true, "") })

	log.Debug().Msg("hidden")
	log.Info().Str("registry", "skills").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "registry=skills")
}

func TestSetupQuiet(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false, true, "debug")

	log.Error().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestSetupBadLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, true, true, "chatty")
	t.Cleanup(func() { Setup(nil, false, true, "") })

	log.Debug().Msg("debug line")
	assert.Contains(t, buf.String(), "debug line")
}
