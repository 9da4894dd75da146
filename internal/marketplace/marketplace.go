// Package marketplace answers skill and MCP server browsing queries. Each
// query goes through catalog.ResolveDetailed, so callers always receive a
// catalog and never an error.
package marketplace

import (
	"context"

	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"github.com/linyuyun1234-arch/opcode/internal/fetch"
	"github.com/linyuyun1234-arch/opcode/internal/normalize"
	"github.com/linyuyun1234-arch/opcode/internal/registry"
	"golang.org/x/sync/errgroup"
)

// Service resolves registry listings against a GitHub-compatible API.
type Service struct {
	fetcher fetch.Fetcher
	apiBase string
}

// NewService creates a Service that lists registries under apiBase
// (normally https://api.github.com).
func NewService(f fetch.Fetcher, apiBase string) *Service {
	return &Service{fetcher: f, apiBase: apiBase}
}

// Skills lists the skills marketplace, degrading to the static skills catalog.
func (s *Service) Skills(ctx context.Context) catalog.Resolution {
	return s.Resolve(ctx, registry.Skills, catalog.SkillsFallback())
}

// MCPServers lists the MCP server registry, degrading to the static
// eight-server catalog.
func (s *Service) MCPServers(ctx context.Context) catalog.Resolution {
	return s.Resolve(ctx, registry.MCPServers, catalog.MCPServersFallback())
}

// Resolve lists any directory registry with the given fallback.
func (s *Service) Resolve(ctx context.Context, r registry.Registry, fallback []catalog.Entry) catalog.Resolution {
	return catalog.ResolveDetailed(ctx, s.fetcher, normalize.ForRegistry(r), r.ContentsURL(s.apiBase), registry.ListingHeaders(), fallback)
}

// Listing holds both marketplace catalogs.
type Listing struct {
	Skills     catalog.Resolution `json:"skills"`
	MCPServers catalog.Resolution `json:"mcp_servers"`
}

// All queries both registries concurrently. The two queries do not share
// state and neither can fail.
func (s *Service) All(ctx context.Context) Listing {
	var out Listing
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.Skills = s.Skills(gctx)
		return nil
	})
	g.Go(func() error {
		out.MCPServers = s.MCPServers(gctx)
		return nil
	})
	_ = g.Wait()
	return out
}
