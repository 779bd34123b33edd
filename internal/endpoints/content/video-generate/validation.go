package videogenerate

import "creator-api/internal/common/validation"

func GetInputSchema(cfg *Config) validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"userId", "topic"},
		Properties: map[string]validation.Property{
			"userId": {
				Type:        "string",
				Description: "Caller-supplied user identifier",
				Format:      validation.FormatUUID,
			},
			"topic": {
				Type:        "string",
				Description: "Video topic",
				MinLength:   intPtr(1),
			},
			"videoType": {
				Type:        "string",
				Description: "Video format",
				Enum:        []string{VideoTypeShort, VideoTypeLong},
				Default:     cfg.DefaultVideoType,
			},
		},
		AdditionalProperties: true,
	}
}

const OutputSchemaJSON = `{
  "type": "object",
  "required": ["titles", "script", "scene_guides", "description", "tags"],
  "properties": {
    "titles": {"type": "array", "minItems": 3, "maxItems": 3, "items": {"type": "string"}},
    "script": {"type": "string"},
    "scene_guides": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["script_part", "visual", "sfx"],
        "properties": {
          "script_part": {"type": "string"},
          "visual": {"type": "string"},
          "sfx": {"type": "string"}
        }
      }
    },
    "description": {"type": "string"},
    "tags": {"type": "array", "minItems": 10, "maxItems": 15, "items": {"type": "string"}}
  }
}`

var outputSchema = validation.MustCompileOutputSchema(OutputSchemaJSON)

func intPtr(i int) *int { return &i }
