// Package credentials resolves the API key used for model listing.
package credentials

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/linyuyun1234-arch/opcode/internal/apperr"
)

// envVars is probed in order when no explicit key is given.
var envVars = []string{"ANTHROPIC_API_KEY", "CLAUDE_API_KEY"}

// EnvVars returns the environment variable names consulted, highest priority first.
func EnvVars() []string {
	out := make([]string, len(envVars))
	copy(out, envVars)
	return out
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Resolver finds an API key from an explicit value or the environment.
type Resolver struct {
	lookup LookupFunc
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookup replaces the environment lookup (useful for testing).
func WithLookup(fn LookupFunc) Option {
	return func(r *Resolver) {
		r.lookup = fn
	}
}

// NewResolver creates a Resolver backed by the process environment.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns explicit when it is non-empty, otherwise the first
// non-empty variable from EnvVars. It fails with CredentialMissing when
// nothing matches.
func (r *Resolver) Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range envVars {
		if v, ok := r.lookup(name); ok && v != "" {
			return v, nil
		}
	}
	return "", apperr.New(apperr.CredentialMissing, "resolving API key", nil)
}

// Source names the environment variable Resolve would read the key from,
// or returns "" when none is set.
func (r *Resolver) Source() string {
	for _, name := range envVars {
		if v, ok := r.lookup(name); ok && v != "" {
			return name
		}
	}
	return ""
}

// LoadEnvFile reads KEY=VALUE pairs from path into the process environment.
// Variables already set are left untouched.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return apperr.New(apperr.Filesystem, "loading env file "+path, err)
	}
	return nil
}
