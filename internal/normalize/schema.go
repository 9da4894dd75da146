package normalize

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SchemaKind names the raw shape a body is expected to have.
type SchemaKind string

const (
	DirectoryListing SchemaKind = "contents.schema.json"
	ModelRecords     SchemaKind = "models.schema.json"
)

//go:embed schema/*.json
var schemaFS embed.FS

var (
	compiled    map[SchemaKind]*jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
	printer     = message.NewPrinter(language.English)
)

// getSchema compiles the embedded schemas once and returns the one for kind.
func getSchema(kind SchemaKind) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		kinds := []SchemaKind{DirectoryListing, ModelRecords}
		for _, k := range kinds {
			data, err := schemaFS.ReadFile("schema/" + string(k))
			if err != nil {
				compileErr = fmt.Errorf("reading schema %s: %w", k, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshaling schema %s: %w", k, err)
				return
			}
			if err := c.AddResource(string(k), doc); err != nil {
				compileErr = fmt.Errorf("adding schema resource %s: %w", k, err)
				return
			}
		}
		compiled = make(map[SchemaKind]*jsonschema.Schema, len(kinds))
		for _, k := range kinds {
			s, err := c.Compile(string(k))
			if err != nil {
				compileErr = fmt.Errorf("compiling schema %s: %w", k, err)
				return
			}
			compiled[k] = s
		}
	})
	if compileErr != nil {
		return nil, compileErr
	}
	s, ok := compiled[kind]
	if !ok {
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}
	return s, nil
}

// validate checks body against the schema for kind. It returns the list of
// human-readable issues; a non-nil error means the body is not JSON at all or
// the schema itself failed to load.
func validate(body []byte, kind SchemaKind) ([]string, error) {
	schema, err := getSchema(kind)
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	var issues []string
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		issues = []string{ve.Error()}
	}
	return dedupe(issues), nil
}

// collectIssues walks the error tree and records leaf errors as
// "<instance path>: <message>".
func collectIssues(ve *jsonschema.ValidationError, issues *[]string) {
	if len(ve.Causes) == 0 {
		if ve.ErrorKind == nil {
			return
		}
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		*issues = append(*issues, path+": "+ve.ErrorKind.LocalizedString(printer))
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
