package catalog

import (
	"context"
	"net/http"
	"strings"

	"github.com/linyuyun1234-arch/opcode/internal/fetch"
	"github.com/rs/zerolog/log"
)

// Normalizer converts a raw response body into catalog entries.
type Normalizer func(body []byte) ([]Entry, error)

// Reason records which branch of the fallback policy produced a result.
type Reason string

const (
	ReasonLive      Reason = "live"
	ReasonTransport Reason = "transport"
	ReasonStatus    Reason = "status"
	ReasonDecode    Reason = "decode"
	ReasonEmpty     Reason = "empty"
)

// Resolution is the outcome of ResolveDetailed.
type Resolution struct {
	Entries []Entry `json:"entries"`
	Live    bool    `json:"live"`
	Reason  Reason  `json:"reason"`
	Status  int     `json:"status,omitempty"`
}

// Resolve fetches endpoint, normalizes the body and returns the live entries,
// or a copy of fallback when the fetch fails, the status is not 2xx, the body
// does not decode or nothing survives normalization.
func Resolve(ctx context.Context, f fetch.Fetcher, normalize Normalizer, endpoint string, headers http.Header, fallback []Entry) []Entry {
	return ResolveDetailed(ctx, f, normalize, endpoint, headers, fallback).Entries
}

// ResolveDetailed is Resolve plus the reason the result was chosen.
func ResolveDetailed(ctx context.Context, f fetch.Fetcher, normalize Normalizer, endpoint string, headers http.Header, fallback []Entry) Resolution {
	degrade := func(reason Reason, status int, err error) Resolution {
		ev := log.Debug().Str("endpoint", endpoint).Str("reason", string(reason))
		if status != 0 {
			ev = ev.Int("status", status)
		}
		if err != nil {
			ev = ev.Err(err)
		}
		ev.Int("fallback_entries", len(fallback)).Msg("serving static catalog")
		return Resolution{Entries: cloneEntries(fallback), Reason: reason, Status: status}
	}

	resp, err := f.Fetch(ctx, endpoint, headers)
	if err != nil {
		return degrade(ReasonTransport, 0, err)
	}
	if resp == nil {
		return degrade(ReasonTransport, 0, nil)
	}
	if !resp.IsSuccess() {
		return degrade(ReasonStatus, resp.StatusCode, nil)
	}

	entries, err := normalize(resp.Body)
	if err != nil {
		return degrade(ReasonDecode, resp.StatusCode, err)
	}
	if len(entries) == 0 {
		return degrade(ReasonEmpty, resp.StatusCode, nil)
	}

	return Resolution{Entries: entries, Live: true, Reason: ReasonLive, Status: resp.StatusCode}
}

// Filter returns the entries whose name or description contains query,
// case-insensitively. An empty query returns entries unchanged.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.name), q) ||
			strings.Contains(strings.ToLower(e.description), q) {
			out = append(out, e)
		}
	}
	return out
}
