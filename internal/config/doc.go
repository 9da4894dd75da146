// Package config manages user-level settings stored at ~/.opcode/config.yaml.
// It exposes the fetch timeout and retry count, the registry base URLs and the
// log level, each overridable through OPCODE_* environment variables.
package config
