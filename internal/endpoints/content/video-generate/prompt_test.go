package videogenerate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name     string
		input    *Input
		contains []string
	}{
		{
			name:  "short form",
			input: &Input{Topic: "latte art basics", VideoType: VideoTypeShort},
			contains: []string{
				`<60s short-form video on: "latte art basics"`,
				"titles: array of exactly 3 strings",
				"scene_guides: array of objects { script_part, visual, sfx }",
				"tags: array of 10 to 15 strings",
				"No markdown",
			},
		},
		{
			name:     "long form",
			input:    &Input{Topic: "latte art basics", VideoType: VideoTypeLong},
			contains: []string{`3-5 min long-form video on: "latte art basics"`},
		},
		{
			name:     "quotes in topic are escaped",
			input:    &Input{Topic: `the "perfect" shot`, VideoType: VideoTypeShort},
			contains: []string{`on: "the \"perfect\" shot"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := BuildPrompt(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, prompt, want)
			}
			assert.Equal(t, prompt, BuildPrompt(tt.input))
		})
	}
}
