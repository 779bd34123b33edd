package bloggenerate

import "creator-api/internal/common/validation"

func GetInputSchema(cfg *Config) validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"userId", "keyword"},
		Properties: map[string]validation.Property{
			"userId": {
				Type:        "string",
				Description: "Caller-supplied user identifier",
				Format:      validation.FormatUUID,
			},
			"keyword": {
				Type:        "string",
				Description: "Target SEO keyword",
				MinLength:   intPtr(1),
			},
			"tone": {
				Type:        "string",
				Description: "Writing tone",
				Default:     cfg.DefaultTone,
			},
		},
		AdditionalProperties: true,
	}
}

// OutputSchemaJSON describes the object the prompt asks for.
const OutputSchemaJSON = `{
  "type": "object",
  "required": ["titles", "body", "seo_pack"],
  "properties": {
    "titles": {"type": "array", "minItems": 3, "maxItems": 3, "items": {"type": "string"}},
    "body": {
      "type": "object",
      "required": ["introduction", "main_1", "main_2", "main_3", "conclusion"],
      "properties": {
        "introduction": {"type": "string"},
        "main_1": {"type": "string"},
        "main_2": {"type": "string"},
        "main_3": {"type": "string"},
        "conclusion": {"type": "string"}
      }
    },
    "seo_pack": {
      "type": "object",
      "required": ["meta_description", "tags", "image_suggestions"],
      "properties": {
        "meta_description": {"type": "string"},
        "tags": {"type": "array", "maxItems": 10, "items": {"type": "string"}},
        "image_suggestions": {"type": "array", "maxItems": 5, "items": {"type": "string"}}
      }
    }
  }
}`

var outputSchema = validation.MustCompileOutputSchema(OutputSchemaJSON)

func intPtr(i int) *int { return &i }
