// Package cli defines the Cobra command tree for the opcode CLI. Each command
// is one named operation the host shell can invoke (models list, skills list,
// skills install, ...). Commands delegate to internal packages and only handle
// flag parsing and output formatting.
package cli
