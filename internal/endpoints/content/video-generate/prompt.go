package videogenerate

import "fmt"

const promptTemplate = `You are a YouTube content strategist.
Goal: Generate a complete package for a %s video on: %q.
Return STRICT JSON with keys:
- titles: array of exactly 3 strings
- script: string
- scene_guides: array of objects { script_part, visual, sfx }
- description: string
- tags: array of 10 to 15 strings
No markdown, no code fences, no text outside the JSON object.`

// formats maps a video type to its length description.
var formats = map[string]string{
	VideoTypeShort: "<60s short-form",
	VideoTypeLong:  "3-5 min long-form",
}

// BuildPrompt renders the video prompt. It is pure.
func BuildPrompt(input *Input) string {
	format, ok := formats[input.VideoType]
	if !ok {
		format = formats[VideoTypeShort]
	}
	return fmt.Sprintf(promptTemplate, format, input.Topic)
}
