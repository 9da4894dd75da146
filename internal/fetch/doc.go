// Package fetch issues single GET requests against registry endpoints.
// A non-2xx response is returned as data so callers can tell "reachable but
// rejected" apart from "unreachable"; only transport failures are errors.
package fetch
