package bloggenerate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	input := &Input{UserID: "3f2b8c1e-9d4a-4c6b-8e2f-1a2b3c4d5e6f", Keyword: "espresso machines", Tone: "playful"}

	prompt := BuildPrompt(input)

	assert.Contains(t, prompt, "Keyword: espresso machines. Tone: playful.")
	assert.Contains(t, prompt, "titles: array of exactly 3 strings")
	assert.Contains(t, prompt, "introduction, main_1, main_2, main_3, conclusion")
	assert.Contains(t, prompt, "at most 10 strings")
	assert.Contains(t, prompt, "at most 5 strings")
	assert.Contains(t, prompt, "Return STRICT JSON only")
	assert.NotContains(t, prompt, input.UserID)

	assert.Equal(t, prompt, BuildPrompt(input), "prompt must be deterministic")
	assert.NotEqual(t, prompt, BuildPrompt(&Input{Keyword: "espresso machines", Tone: "professional"}))
}
