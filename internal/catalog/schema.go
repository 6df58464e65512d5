package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ppiankov/kapa/internal/model"
)

// catalogSchema describes the structural shape of a catalog file.
// Every field is required; extra fields are ignored.
const catalogSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "year", "creators", "paradigm", "typing", "influenced_by"],
    "properties": {
      "name":          {"type": "string"},
      "year":          {"type": "integer", "minimum": 0, "maximum": 4294967295},
      "creators":      {"type": "array", "items": {"type": "string"}},
      "paradigm":      {"type": "array", "items": {"type": "string"}},
      "typing":        {"type": "string"},
      "influenced_by": {"type": "array", "items": {"type": "string"}}
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(catalogSchema))
})

// Parse checks data against the catalog shape and decodes it
func Parse(data []byte) (model.Catalog, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return nil, fmt.Errorf("catalog does not match expected shape: %s", strings.Join(errs, "; "))
	}

	var catalog model.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return catalog, nil
}
