package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"go.yaml.in/yaml/v3"
)

var (
	//go:embed fallback/mcp-servers.yaml
	rawMCPServers []byte

	//go:embed fallback/skills.yaml
	rawSkills []byte
)

var (
	fallbackOnce   sync.Once
	mcpFallback    []Entry
	skillsFallback []Entry
)

type fallbackRecord struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// parseFallback decodes an embedded YAML list of entries.
func parseFallback(data []byte) ([]Entry, error) {
	var records []fallbackRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing fallback catalog: %w", err)
	}
	entries := make([]Entry, 0, len(records))
	for i, r := range records {
		e, err := NewEntry(r.Name, r.Description, r.URL)
		if err != nil {
			return nil, fmt.Errorf("fallback catalog entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func loadFallbacks() {
	fallbackOnce.Do(func() {
		var err error
		if mcpFallback, err = parseFallback(rawMCPServers); err != nil {
			panic(err)
		}
		if skillsFallback, err = parseFallback(rawSkills); err != nil {
			panic(err)
		}
	})
}

// MCPServersFallback returns a copy of the static MCP server catalog, in
// declared order.
func MCPServersFallback() []Entry {
	loadFallbacks()
	return cloneEntries(mcpFallback)
}

// SkillsFallback returns a copy of the static skills catalog, in declared order.
func SkillsFallback() []Entry {
	loadFallbacks()
	return cloneEntries(skillsFallback)
}

func cloneEntries(in []Entry) []Entry {
	out := make([]Entry, len(in))
	copy(out, in)
	return out
}
