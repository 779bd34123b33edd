package bloggenerate

import "fmt"

const promptTemplate = `You are a 10-year SEO content strategist.
Keyword: %s. Tone: %s.
Produce JSON with keys:
- titles: array of exactly 3 strings
- body: { introduction, main_1, main_2, main_3, conclusion } (each a string)
- seo_pack: { meta_description, tags (array of at most 10 strings), image_suggestions (array of at most 5 strings) }
Return STRICT JSON only. No markdown, no code fences, no text outside the JSON object.`

// BuildPrompt renders the blog prompt. It is pure.
func BuildPrompt(input *Input) string {
	return fmt.Sprintf(promptTemplate, input.Keyword, input.Tone)
}
