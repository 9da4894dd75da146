package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentsURL(t *testing.T) {
	assert.Equal(t,
		"https://api.github.com/repos/modelcontextprotocol/servers/contents/src",
		MCPServers.ContentsURL("https://api.github.com"))
	assert.Equal(t,
		"http://127.0.0.1:8080/repos/anthropics/skills/contents/skills",
		Skills.ContentsURL("http://127.0.0.1:8080/"))
}

func TestRawURL(t *testing.T) {
	assert.Equal(t,
		"https://raw.githubusercontent.com/anthropics/skills/main/skills/pdf/SKILL.md",
		Skills.RawURL("https://raw.githubusercontent.com", "pdf", "SKILL.md"))
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Official Skill: pdf", Skills.Description("pdf"))
	assert.Equal(t, "Official MCP Server: filesystem", MCPServers.Description("filesystem"))
}

func TestListingHeaders(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	h := ListingHeaders()
	assert.Equal(t, "Opcode-Agent", h.Get("User-Agent"))
	assert.Equal(t, "application/vnd.github+json", h.Get("Accept"))
	assert.Empty(t, h.Get("Authorization"))

	t.Setenv("GITHUB_TOKEN", "ghp_test")
	assert.Equal(t, "Bearer ghp_test", ListingHeaders().Get("Authorization"))
}

func TestRawHeaders(t *testing.T) {
	h := RawHeaders()
	assert.Equal(t, "Opcode-Agent", h.Get("User-Agent"))
	assert.Len(t, h, 1)
}
