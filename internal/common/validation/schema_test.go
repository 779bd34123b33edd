package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func testSchema() JSONSchema {
	return JSONSchema{
		Type: "object",
		Properties: map[string]Property{
			"userId":    {Type: "string", Format: FormatUUID},
			"topic":     {Type: "string", MinLength: intPtr(1)},
			"videoType": {Type: "string", Enum: []string{"short", "long"}, Default: "short"},
		},
		Required:             []string{"userId", "topic"},
		AdditionalProperties: true,
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name          string
		input         map[string]interface{}
		expectedValid bool
		errorField    string
		errorCode     string
	}{
		{
			name: "valid input",
			input: map[string]interface{}{
				"userId":    "3f2b8c1e-9d4a-4c6b-8e2f-1a2b3c4d5e6f",
				"topic":     "home espresso",
				"videoType": "long",
			},
			expectedValid: true,
		},
		{
			name: "unknown keys are ignored",
			input: map[string]interface{}{
				"userId": "3f2b8c1e-9d4a-4c6b-8e2f-1a2b3c4d5e6f",
				"topic":  "home espresso",
				"extra":  42.0,
			},
			expectedValid: true,
		},
		{
			name:          "missing required field",
			input:         map[string]interface{}{"userId": "3f2b8c1e-9d4a-4c6b-8e2f-1a2b3c4d5e6f"},
			expectedValid: false,
			errorField:    "topic",
			errorCode:     "REQUIRED_FIELD_MISSING",
		},
		{
			name:          "malformed uuid",
			input:         map[string]interface{}{"userId": "not-a-uuid", "topic": "x"},
			expectedValid: false,
			errorField:    "userId",
			errorCode:     "INVALID_FORMAT",
		},
		{
			name:          "uuid without hyphens rejected",
			input:         map[string]interface{}{"userId": "3f2b8c1e9d4a4c6b8e2f1a2b3c4d5e6f", "topic": "x"},
			expectedValid: false,
			errorField:    "userId",
			errorCode:     "INVALID_FORMAT",
		},
		{
			name:          "empty string below min length",
			input:         map[string]interface{}{"userId": "3f2b8c1e-9d4a-4c6b-8e2f-1a2b3c4d5e6f", "topic": ""},
			expectedValid: false,
			errorField:    "topic",
			errorCode:     "MIN_LENGTH_VIOLATION",
		},
		{
			name:          "wrong type",
			input:         map[string]interface{}{"userId": "3f2b8c1e-9d4a-4c6b-8e2f-1a2b3c4d5e6f", "topic": 12.0},
			expectedValid: false,
			errorField:    "topic",
			errorCode:     "INVALID_TYPE",
		},
		{
			name:          "null is not a string",
			input:         map[string]interface{}{"userId": "3f2b8c1e-9d4a-4c6b-8e2f-1a2b3c4d5e6f", "topic": nil},
			expectedValid: false,
			errorField:    "topic",
			errorCode:     "INVALID_TYPE",
		},
		{
			name: "enum violation",
			input: map[string]interface{}{
				"userId":    "3f2b8c1e-9d4a-4c6b-8e2f-1a2b3c4d5e6f",
				"topic":     "x",
				"videoType": "medium",
			},
			expectedValid: false,
			errorField:    "videoType",
			errorCode:     "INVALID_ENUM_VALUE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateInput(tt.input, testSchema())
			assert.Equal(t, tt.expectedValid, result.Valid)
			if tt.expectedValid {
				assert.Empty(t, result.FirstMessage())
				return
			}
			require.NotEmpty(t, result.Errors)
			assert.Equal(t, tt.errorField, result.Errors[0].Field)
			assert.Equal(t, tt.errorCode, result.Errors[0].Code)
		})
	}
}

func TestValidateInput_StableOrder(t *testing.T) {
	input := map[string]interface{}{"userId": "bad", "topic": ""}
	for i := 0; i < 10; i++ {
		result := ValidateInput(input, testSchema())
		assert.Equal(t, "topic: value must be at least 1 characters", result.FirstMessage())
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "userId", result.Errors[1].Field)
	}
}

func TestValidateInput_MinLengthCountsCharacters(t *testing.T) {
	schema := JSONSchema{Properties: map[string]Property{"s": {Type: "string", MinLength: intPtr(2)}}}
	assert.True(t, ValidateInput(map[string]interface{}{"s": "éé"}, schema).Valid)
	assert.False(t, ValidateInput(map[string]interface{}{"s": "é"}, schema).Valid)
}

func TestApplyDefaults(t *testing.T) {
	input := map[string]interface{}{"topic": "x"}
	out := ApplyDefaults(input, testSchema())

	assert.Equal(t, "short", out["videoType"])
	assert.NotContains(t, input, "videoType", "input must not be mutated")

	out = ApplyDefaults(map[string]interface{}{"videoType": "long"}, testSchema())
	assert.Equal(t, "long", out["videoType"])
}
