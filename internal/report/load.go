// internal/report/load.go
package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Load reads, validates and decodes the report at path.
func Load(path string) (*BenchmarkReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	r, err := Parse(data)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	r.Source = path
	return r, nil
}

// Parse validates data against the report schema and decodes it.
func Parse(data []byte) (*BenchmarkReport, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var r BenchmarkReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	return &r, nil
}

// Validate checks that data is well-formed JSON carrying every required report field.
func Validate(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("%w: malformed JSON", ErrInvalidReport)
	}
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile report schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReport, err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidReport, strings.Join(details, "; "))
}
