package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const titlesSchema = `{
  "type": "object",
  "required": ["titles"],
  "properties": {
    "titles": {"type": "array", "minItems": 3, "maxItems": 3, "items": {"type": "string"}}
  }
}`

func TestValidateOutput(t *testing.T) {
	violations, err := ValidateOutput(titlesSchema, map[string]interface{}{
		"titles": []interface{}{"A", "B", "C"},
		"extra":  true,
	})
	require.NoError(t, err)
	assert.Empty(t, violations)

	violations, err = ValidateOutput(titlesSchema, map[string]interface{}{"body": "x"})
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "titles")

	violations, err = ValidateOutput(titlesSchema, map[string]interface{}{"titles": []interface{}{"A"}})
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}

func TestCompileOutputSchema_Invalid(t *testing.T) {
	_, err := CompileOutputSchema(`{"type": 12`)
	assert.Error(t, err)

	assert.Panics(t, func() { MustCompileOutputSchema(`{"type": 12`) })
}
