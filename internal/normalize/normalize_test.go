package normalize

import (
	"testing"

	"github.com/linyuyun1234-arch/opcode/internal/apperr"
	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"github.com/linyuyun1234-arch/opcode/internal/registry"
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

func TestListingKeepsOnlyDirectories(t *testing.T) {
	body := []byte(`[
		{"name":"filesystem","path":"src/filesystem","type":"dir","html_url":"https://x"},
		{"name":"README.md","path":"src/README.md","type":"file","html_url":"https://y"}
	]`)

	entries, err := ForRegistry(registry.MCPServers)(body)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "filesystem", entries[0].Name())
	assert.Equal(t, "Official MCP Server: filesystem", entries[0].Description())
	assert.Equal(t, "https://x", entries[0].SourceURL())
}

func TestListingPreservesDirectoryOrder(t *testing.T) {
	body := []byte(`[
		{"name":"zeta","path":"skills/zeta","type":"dir","html_url":"https://github.com/a/zeta"},
		{"name":"LICENSE","path":"skills/LICENSE","type":"file","html_url":"https://github.com/a/LICENSE"},
		{"name":"alpha","path":"skills/alpha","type":"dir","html_url":"https://github.com/a/alpha"},
		{"name":"vendor","path":"skills/vendor","type":"submodule","html_url":"https://github.com/a/vendor"},
		{"name":"mid","path":"skills/mid","type":"dir","html_url":"https://github.com/a/mid"},
		{"name":"link","path":"skills/link","type":"symlink","html_url":"https://github.com/a/link"}
	]`)

	entries, err := ForRegistry(registry.Skills)(body)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names(entries))
	assert.Equal(t, "Official Skill: alpha", entries[1].Description())
}

func TestListingWithoutDirectoriesIsEmptyNotError(t *testing.T) {
	body := []byte(`[{"name":"README.md","path":"README.md","type":"file","html_url":"https://y"}]`)

	entries, err := ForRegistry(registry.Skills)(body)
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = ForRegistry(registry.Skills)([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListingDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `[{"name":`},
		{"object instead of array", `{"message":"Not Found","documentation_url":"https://docs.github.com"}`},
		{"missing html_url", `[{"name":"a","path":"a","type":"dir"}]`},
		{"missing type", `[{"name":"a","path":"a","html_url":"https://x"}]`},
		{"wrong field type", `[{"name":42,"path":"a","type":"dir","html_url":"https://x"}]`},
		{"empty name", `[{"name":"","path":"a","type":"dir","html_url":"https://x"}]`},
		{"relative html_url on dir", `[{"name":"a","path":"a","type":"dir","html_url":"/a"}]`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ForRegistry(registry.MCPServers)([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.DecodeError), "got %v", err)
		})
	}
}

func TestListingIssueNamesField(t *testing.T) {
	_, err := Listing([]byte(`[{"name":"a","path":"a","type":"dir"}]`), registry.Skills.Description)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "html_url")
	assert.Contains(t, err.Error(), "/0")
}

func TestModelPage(t *testing.T) {
	body := []byte(`{
		"data": [
			{"id":"claude-opus-4-1","display_name":"Claude Opus 4.1","created_at":"2025-08-05T00:00:00Z","type":"model"},
			{"id":"claude-3-5-haiku","display_name":"Claude Haiku 3.5","created_at":"2024-10-22T00:00:00Z","type":"model"}
		],
		"has_more": true,
		"first_id": "claude-opus-4-1",
		"last_id": "claude-3-5-haiku"
	}`)

	page, err := ModelPage(body)
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "claude-opus-4-1", page.Entries[0].ID)
	assert.Equal(t, "Claude Haiku 3.5", page.Entries[1].DisplayName)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.LastID)
	assert.Equal(t, "claude-3-5-haiku", *page.LastID)
}

func TestModelPageNullIDsAndEmptyData(t *testing.T) {
	page, err := ModelPage([]byte(`{"data":[],"has_more":false,"first_id":null,"last_id":null}`))
	require.NoError(t, err)
	assert.NotNil(t, page.Entries)
	assert.Empty(t, page.Entries)
	assert.Nil(t, page.FirstID)
	assert.Nil(t, page.LastID)
}

func TestModelPageDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing has_more", `{"data":[]}`},
		{"missing data", `{"has_more":false}`},
		{"record missing id", `{"data":[{"display_name":"x","created_at":"y","type":"model"}],"has_more":false}`},
		{"array body", `[]`},
		{"not json", `<html>rate limited</html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ModelPage([]byte(tt.body))
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.DecodeError))
		})
	}
}

func TestUnknownSchemaKind(t *testing.T) {
	_, err := validate([]byte(`[]`), SchemaKind("nope.json"))
	assert.Error(t, err)
}
