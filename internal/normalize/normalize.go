package normalize

import (
	"encoding/json"
	"fmt"

	"github.com/linyuyun1234-arch/opcode/internal/apperr"
	"github.com/linyuyun1234-arch/opcode/internal/catalog"
	"github.com/linyuyun1234-arch/opcode/internal/registry"
)

// entryTypeDir marks the only listing entries that represent installable units.
const entryTypeDir = "dir"

// rawContent is one element of a GitHub contents API listing.
type rawContent struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Type    string `json:"type"`
	HTMLURL string `json:"html_url"`
}

// Listing decodes a directory listing and keeps only directories, in the
// order received. Each entry is described as "Official <kind>: <name>".
func Listing(body []byte, describe func(name string) string) ([]catalog.Entry, error) {
	if err := check(body, DirectoryListing); err != nil {
		return nil, err
	}

	var items []rawContent
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, apperr.Decode("decoding directory listing", nil, err)
	}

	entries := make([]catalog.Entry, 0, len(items))
	for i, item := range items {
		if item.Type != entryTypeDir {
			continue
		}
		e, err := catalog.NewEntry(item.Name, describe(item.Name), item.HTMLURL)
		if err != nil {
			return nil, apperr.Decode("decoding directory listing", []string{fmt.Sprintf("/%d: %v", i, err)}, nil)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ForRegistry returns the Normalizer for a registry's directory listing.
func ForRegistry(r registry.Registry) catalog.Normalizer {
	return func(body []byte) ([]catalog.Entry, error) {
		return Listing(body, r.Description)
	}
}

// ModelPage decodes a model listing page. Records pass through unfiltered.
func ModelPage(body []byte) (catalog.ModelCatalogPage, error) {
	if err := check(body, ModelRecords); err != nil {
		return catalog.ModelCatalogPage{}, err
	}

	var page catalog.ModelCatalogPage
	if err := json.Unmarshal(body, &page); err != nil {
		return catalog.ModelCatalogPage{}, apperr.Decode("decoding model listing", nil, err)
	}
	if page.Entries == nil {
		page.Entries = []catalog.ModelDescriptor{}
	}
	return page, nil
}

// check validates body against kind and converts any failure to a DecodeError.
func check(body []byte, kind SchemaKind) error {
	issues, err := validate(body, kind)
	if err != nil {
		return apperr.Decode("validating "+string(kind), nil, err)
	}
	if len(issues) > 0 {
		return apperr.Decode("validating "+string(kind), issues, nil)
	}
	return nil
}
