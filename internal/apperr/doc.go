// Package apperr defines the tagged error kinds surfaced by catalog, model
// and install operations. Callers branch on Kind instead of parsing messages.
package apperr
