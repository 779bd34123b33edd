package triagesort

import (
	"fmt"
	"strings"
)

// categoryFields lists the property keys requested for each category.
var categoryFields = []struct {
	category string
	fields   string
}{
	{CategoryTodo, "task_name, due_date (YYYY-MM-DD), assignee (workspace user id), tags"},
	{CategoryIdea, "title, tags"},
	{CategoryMeeting, "title, due_date (YYYY-MM-DD), tags"},
	{CategoryContact, "name, tags"},
	{CategoryBookmark, "title, url, tags"},
}

// BuildPrompt renders the triage prompt for text. It is pure.
func BuildPrompt(input *Input) string {
	var b strings.Builder
	b.WriteString("You are a triage assistant. Classify the text into exactly one of: ")
	b.WriteString(strings.Join(Categories, ", "))
	b.WriteString(".\nExtract structured fields based on the class. Properties per category:\n")
	for _, cf := range categoryFields {
		fmt.Fprintf(&b, "- %s: %s\n", cf.category, cf.fields)
	}
	b.WriteString("Omit any property you cannot extract. tags is an array of strings.\n")
	b.WriteString(`Return STRICT JSON with keys: category (string), properties (object). No markdown, no text outside the JSON object.`)
	fmt.Fprintf(&b, "\n\nText:\n%s", input.Text)
	return b.String()
}
