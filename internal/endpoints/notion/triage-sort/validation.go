package triagesort

import "creator-api/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"userId", "text"},
		Properties: map[string]validation.Property{
			"userId": {
				Type:        "string",
				Description: "Caller-supplied user identifier",
				Format:      validation.FormatUUID,
			},
			"text": {
				Type:        "string",
				Description: "Free text to classify",
				MinLength:   intPtr(1),
			},
		},
		AdditionalProperties: true,
	}
}

const OutputSchemaJSON = `{
  "type": "object",
  "required": ["category", "properties"],
  "properties": {
    "category": {"type": "string", "enum": ["TODO", "IDEA", "MEETING", "CONTACT", "BOOKMARK"]},
    "properties": {
      "type": "object",
      "properties": {
        "task_name": {"type": "string"},
        "title": {"type": "string"},
        "name": {"type": "string"},
        "due_date": {"type": "string"},
        "assignee": {"type": "string"},
        "url": {"type": "string"},
        "tags": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`

var outputSchema = validation.MustCompileOutputSchema(OutputSchemaJSON)

func intPtr(i int) *int { return &i }
