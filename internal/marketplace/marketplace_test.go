package marketplace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"github.com/linyuyun1234-arch/opcode/internal/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []catalog.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func TestMCPServersLiveListing(t *testing.T) {
	var gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`[
			{"name":"filesystem","path":"src/filesystem","type":"dir","html_url":"https://x"},
			{"name":"README.md","path":"src/README.md","type":"file","html_url":"https://y"}
		]`))
	}))
	defer server.Close()

	res := NewService(fetch.New(), server.URL).MCPServers(context.Background())
	assert.True(t, res.Live)
	assert.Equal(t, catalog.ReasonLive, res.Reason)
	assert.Equal(t, []string{"filesystem"}, names(res.Entries))
	assert.Equal(t, "Official MCP Server: filesystem", res.Entries[0].Description())

	assert.Equal(t, "/repos/modelcontextprotocol/servers/contents/src", gotPath)
	assert.Equal(t, "Opcode-Agent", gotUA)
}

func TestMCPServersForbiddenReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	}))
	defer server.Close()

	res := NewService(fetch.New(), server.URL).MCPServers(context.Background())
	assert.False(t, res.Live)
	assert.Equal(t, catalog.ReasonStatus, res.Reason)
	assert.Equal(t, http.StatusForbidden, res.Status)
	assert.Equal(t,
		[]string{"filesystem", "memory", "fetch", "postgres", "sqlite", "github", "slack", "google-drive"},
		names(res.Entries))
}

func TestMCPServersOnlyFilesReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"README.md","path":"src/README.md","type":"file","html_url":"https://y"}]`))
	}))
	defer server.Close()

	res := NewService(fetch.New(), server.URL).MCPServers(context.Background())
	assert.Equal(t, catalog.ReasonEmpty, res.Reason)
	assert.Equal(t, catalog.MCPServersFallback(), res.Entries)
}

func TestSkillsUnreachableReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	res := NewService(fetch.New(), base).Skills(context.Background())
	assert.Equal(t, catalog.ReasonTransport, res.Reason)
	assert.Equal(t, catalog.SkillsFallback(), res.Entries)
}

func TestSkillsMalformedReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"moved"}`))
	}))
	defer server.Close()

	res := NewService(fetch.New(), server.URL).Skills(context.Background())
	assert.Equal(t, catalog.ReasonDecode, res.Reason)
	assert.Equal(t, catalog.SkillsFallback(), res.Entries)
}

func TestAllQueriesBothRegistries(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/anthropics/skills/contents/skills", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[{"name":"pdf","path":"skills/pdf","type":"dir","html_url":"https://github.com/anthropics/skills/tree/main/skills/pdf"}]`))
	})
	mux.HandleFunc("/repos/modelcontextprotocol/servers/contents/src", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	listing := NewService(fetch.New(), server.URL).All(context.Background())
	require.Equal(t, int32(2), hits.Load())

	assert.True(t, listing.Skills.Live)
	assert.Equal(t, []string{"pdf"}, names(listing.Skills.Entries))

	assert.False(t, listing.MCPServers.Live)
	assert.Len(t, listing.MCPServers.Entries, 8)
}
