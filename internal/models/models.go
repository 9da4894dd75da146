// Package models lists the provider's model catalog. Unlike marketplace
// browsing there is no static equivalent, so every failure is surfaced.
package models

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/linyuyun1234-arch/opcode/internal/apperr"
	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"github.com/linyuyun1234-arch/opcode/internal/fetch"
	"github.com/linyuyun1234-arch/opcode/internal/normalize"
)

// APIVersion is sent as the anthropic-version header.
const APIVersion = "2023-06-01"

const listPath = "/v1/models"

// KeyResolver supplies the API key.
type KeyResolver interface {
	Resolve(explicit string) (string, error)
}

// Lister fetches a single page of models.
type Lister struct {
	fetcher  fetch.Fetcher
	keys     KeyResolver
	endpoint string
}

// NewLister creates a Lister against baseURL (normally https://api.anthropic.com).
func NewLister(f fetch.Fetcher, keys KeyResolver, baseURL string) *Lister {
	return &Lister{
		fetcher:  f,
		keys:     keys,
		endpoint: strings.TrimRight(baseURL, "/") + listPath,
	}
}

// Endpoint returns the full listing URL.
func (l *Lister) Endpoint() string { return l.endpoint }

// List resolves the key, then fetches and decodes one page. A missing key
// fails before any request is made.
func (l *Lister) List(ctx context.Context, explicitKey string) (*catalog.ModelCatalogPage, error) {
	key, err := l.keys.Resolve(explicitKey)
	if err != nil {
		return nil, err
	}

	resp, err := l.fetcher.Fetch(ctx, l.endpoint, Headers(key))
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, apperr.New(apperr.TransportFailure, "GET "+l.endpoint, errors.New("no response"))
	}
	if !resp.IsSuccess() {
		return nil, apperr.Upstream("listing models", resp.StatusCode, resp.Body)
	}

	page, err := normalize.ModelPage(resp.Body)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// Headers returns the identity headers for the model listing endpoint.
func Headers(key string) http.Header {
	h := http.Header{}
	h.Set("x-api-key", key)
	h.Set("anthropic-version", APIVersion)
	h.Set("content-type", "application/json")
	return h
}
