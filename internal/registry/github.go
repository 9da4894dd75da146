package registry

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/linyuyun1234-arch/opcode/internal/branding"
)

// Registry locates a directory listing on the GitHub contents API. Each
// subdirectory under Path is one installable unit.
type Registry struct {
	Name   string // short id, e.g. "skills"
	Kind   string // display kind used in generated descriptions
	Owner  string
	Repo   string
	Path   string
	Branch string
}

var (
	// Skills is the anthropics/skills marketplace.
	Skills = Registry{
		Name:   "skills",
		Kind:   "Skill",
		Owner:  "anthropics",
		Repo:   "skills",
		Path:   "skills",
		Branch: "main",
	}

	// MCPServers is the modelcontextprotocol/servers reference server list.
	MCPServers = Registry{
		Name:   "mcp",
		Kind:   "MCP Server",
		Owner:  "modelcontextprotocol",
		Repo:   "servers",
		Path:   "src",
		Branch: "main",
	}
)

// ContentsURL returns the contents API URL for the registry's listing path.
func (r Registry) ContentsURL(apiBase string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", strings.TrimRight(apiBase, "/"), r.Owner, r.Repo, r.Path)
}

// RawURL returns the raw content URL for file inside the entry directory.
// entryID must already be validated by the caller.
func (r Registry) RawURL(rawBase, entryID, file string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s/%s/%s", strings.TrimRight(rawBase, "/"), r.Owner, r.Repo, r.Branch, r.Path, entryID, file)
}

// Description returns the generated description for a listed entry.
func (r Registry) Description(name string) string {
	return fmt.Sprintf("Official %s: %s", r.Kind, name)
}

// ListingHeaders returns the headers sent to the contents API. GITHUB_TOKEN,
// when set, is forwarded for higher rate limits.
func ListingHeaders() http.Header {
	h := RawHeaders()
	h.Set("Accept", "application/vnd.github+json")
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// RawHeaders returns the headers sent when downloading raw file content.
func RawHeaders() http.Header {
	h := http.Header{}
	h.Set("User-Agent", branding.UserAgent())
	return h
}
