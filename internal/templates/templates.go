// Package templates serves the built-in agent templates. The table is
// embedded at build time and never changes at runtime.
package templates

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"go.yaml.in/yaml/v3"
)

//go:embed templates.yaml
var rawTemplates []byte

var (
	once  sync.Once
	table []catalog.AgentTemplate
)

func load() {
	once.Do(func() {
		if err := yaml.Unmarshal(rawTemplates, &table); err != nil {
			panic(fmt.Sprintf("parsing embedded agent templates: %v", err))
		}
	})
}

// All returns a copy of every template in declared order.
func All() []catalog.AgentTemplate {
	load()
	out := make([]catalog.AgentTemplate, len(table))
	copy(out, table)
	return out
}

// ByCategory returns the templates whose category matches, ignoring case.
func ByCategory(category string) []catalog.AgentTemplate {
	var out []catalog.AgentTemplate
	for _, t := range All() {
		if strings.EqualFold(t.Category, category) {
			out = append(out, t)
		}
	}
	return out
}
