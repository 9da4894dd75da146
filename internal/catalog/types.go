package catalog

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Entry is a normalized, installable or selectable catalog item. It is
// immutable once built; use NewEntry to construct one.
type Entry struct {
	name        string
	description string
	sourceURL   string
}

// NewEntry validates and builds an Entry. name must be non-empty and
// sourceURL must be an absolute URL.
func NewEntry(name, description, sourceURL string) (Entry, error) {
	if strings.TrimSpace(name) == "" {
		return Entry{}, fmt.Errorf("catalog entry name is empty")
	}
	u, err := url.Parse(sourceURL)
	if err != nil {
		return Entry{}, fmt.Errorf("catalog entry %q: parsing source url: %w", name, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return Entry{}, fmt.Errorf("catalog entry %q: source url %q is not absolute", name, sourceURL)
	}
	return Entry{name: name, description: description, sourceURL: sourceURL}, nil
}

func (e Entry) Name() string        { return e.name }
func (e Entry) Description() string { return e.description }
func (e Entry) SourceURL() string   { return e.sourceURL }

type entryJSON struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// MarshalJSON encodes the entry as {"name","description","url"}.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{Name: e.name, Description: e.description, URL: e.sourceURL})
}

// UnmarshalJSON decodes and validates an entry.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := NewEntry(raw.Name, raw.Description, raw.URL)
	if err != nil {
		return err
	}
	*e = built
	return nil
}

// ModelDescriptor is one record of the provider's model catalog.
type ModelDescriptor struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
	ModelType   string `json:"type"`
}

// ModelCatalogPage is a single page of the model listing.
type ModelCatalogPage struct {
	Entries []ModelDescriptor `json:"data"`
	HasMore bool              `json:"has_more"`
	FirstID *string           `json:"first_id"`
	LastID  *string           `json:"last_id"`
}

// AgentTemplate is a predefined agent persona.
type AgentTemplate struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Prompt      string `json:"prompt" yaml:"prompt"`
	Category    string `json:"category" yaml:"category"`
}
