package validation

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/google/uuid"
)

// JSONSchema defines the structure for request schemas
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties bool                `json:"additionalProperties,omitempty"`
}

// Property declares one string field of a request body.
type Property struct {
	Type        string      `json:"type"`
	Description string      `json:"description,omitempty"`
	Default     interface{} `json:"default,omitempty"`
	Format      string      `json:"format,omitempty"` // only "uuid" is understood
	Enum        []string    `json:"enum,omitempty"`
	MinLength   *int        `json:"minLength,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

const FormatUUID = "uuid"

// ValidateInput validates input against JSON schema with detailed errors.
// Errors are reported in field-name order so messages are stable.
func ValidateInput(input map[string]interface{}, schema JSONSchema) *ValidationResult {
	errors := []ValidationError{}

	required := append([]string(nil), schema.Required...)
	sort.Strings(required)
	for _, requiredField := range required {
		if _, exists := input[requiredField]; !exists {
			errors = append(errors, ValidationError{
				Field:   requiredField,
				Message: "required field missing",
				Code:    "REQUIRED_FIELD_MISSING",
			})
		}
	}

	fieldNames := make([]string, 0, len(input))
	for fieldName := range input {
		fieldNames = append(fieldNames, fieldName)
	}
	sort.Strings(fieldNames)

	for _, fieldName := range fieldNames {
		prop, exists := schema.Properties[fieldName]
		if !exists {
			if !schema.AdditionalProperties {
				errors = append(errors, ValidationError{
					Field:   fieldName,
					Message: "field not allowed in schema",
					Code:    "EXTRA_FIELD",
				})
			}
			continue
		}

		if fieldErrors := validateField(fieldName, input[fieldName], prop); len(fieldErrors) > 0 {
			errors = append(errors, fieldErrors...)
		}
	}

	return &ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

// ApplyDefaults returns a copy of input with every absent property that
// declares a default filled in.
func ApplyDefaults(input map[string]interface{}, schema JSONSchema) map[string]interface{} {
	out := make(map[string]interface{}, len(input)+len(schema.Properties))
	for k, v := range input {
		out[k] = v
	}
	for name, prop := range schema.Properties {
		if _, exists := out[name]; !exists && prop.Default != nil {
			out[name] = prop.Default
		}
	}
	return out
}

func validateField(fieldName string, value interface{}, prop Property) []ValidationError {
	errors := []ValidationError{}

	// Type validation
	if typeErr := validateType(value, prop.Type); typeErr != nil {
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: typeErr.Error(),
			Code:    "INVALID_TYPE",
		})
		return errors // Return early if type is wrong
	}

	strVal, ok := value.(string)
	if !ok {
		return errors
	}

	if prop.MinLength != nil && utf8.RuneCountInString(strVal) < *prop.MinLength {
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("value must be at least %d characters", *prop.MinLength),
			Code:    "MIN_LENGTH_VIOLATION",
		})
	}

	if prop.Format == FormatUUID && !IsUUID(strVal) {
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: "value must be a valid UUID",
			Code:    "INVALID_FORMAT",
		})
	}

	if len(prop.Enum) > 0 {
		found := false
		for _, enumVal := range prop.Enum {
			if strVal == enumVal {
				found = true
				break
			}
		}
		if !found {
			errors = append(errors, ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("value must be one of %v", prop.Enum),
				Code:    "INVALID_ENUM_VALUE",
			})
		}
	}

	return errors
}

func validateType(value interface{}, expectedType string) error {
	if expectedType == "string" {
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %s", typeName(value))
		}
	}
	return nil
}

// typeName reports JSON type names for values produced by encoding/json.
func typeName(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// IsUUID accepts only the canonical 8-4-4-4-12 hex form.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// FirstMessage returns the first error as "field: message", or "" when valid.
func (vr *ValidationResult) FirstMessage() string {
	if len(vr.Errors) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s", vr.Errors[0].Field, vr.Errors[0].Message)
}
