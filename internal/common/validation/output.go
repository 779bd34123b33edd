package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// OutputSchema is a compiled JSON Schema used to check decoded completion objects.
type OutputSchema struct {
	schema *gojsonschema.Schema
}

// CompileOutputSchema compiles schemaJSON once so it can be reused across requests.
func CompileOutputSchema(schemaJSON string) (*OutputSchema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to load output schema: %w", err)
	}
	return &OutputSchema{schema: schema}, nil
}

// MustCompileOutputSchema panics on an invalid schema; for package-level schema constants.
func MustCompileOutputSchema(schemaJSON string) *OutputSchema {
	s, err := CompileOutputSchema(schemaJSON)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate returns one message per schema violation; an empty slice means obj conforms.
func (s *OutputSchema) Validate(obj map[string]interface{}) ([]string, error) {
	result, err := s.schema.Validate(gojsonschema.NewGoLoader(obj))
	if err != nil {
		return nil, fmt.Errorf("output validation failed: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return violations, nil
}

// ValidateOutput compiles schemaJSON and validates obj against it.
func ValidateOutput(schemaJSON string, obj map[string]interface{}) ([]string, error) {
	s, err := CompileOutputSchema(schemaJSON)
	if err != nil {
		return nil, err
	}
	return s.Validate(obj)
}
