package triagesort

import (
	"strings"
	"time"

	"creator-api/internal/common/notion"
)

// Destination property names.
const (
	PropertyTitle    = "Title"
	PropertyDue      = "Due"
	PropertyAssignee = "Assignee"
	PropertyTags     = "Tags"
)

// DefaultTitle is used when no title candidate is present.
const DefaultTitle = "Item"

type titleAccessor func(props map[string]interface{}) (string, bool)

// titleAccessors are tried in order; the first non-empty value wins.
var titleAccessors = []titleAccessor{
	stringField("task_name"),
	stringField("title"),
	stringField("name"),
}

func stringField(key string) titleAccessor {
	return func(props map[string]interface{}) (string, bool) {
		s, ok := props[key].(string)
		if !ok || strings.TrimSpace(s) == "" {
			return "", false
		}
		return s, true
	}
}

// ResolveTitle returns the first title candidate present in props, or DefaultTitle.
func ResolveTitle(props map[string]interface{}) string {
	for _, accessor := range titleAccessors {
		if title, ok := accessor(props); ok {
			return title
		}
	}
	return DefaultTitle
}

// BuildProperties maps classified properties onto destination page properties.
// Title is always set; Due, Assignee and Tags only when a usable source value exists.
func BuildProperties(props map[string]interface{}) map[string]notion.Property {
	out := map[string]notion.Property{
		PropertyTitle: notion.TitleProperty(ResolveTitle(props)),
	}

	if due, ok := dueDate(props); ok {
		out[PropertyDue] = notion.DateProperty(due)
	}
	if assignee, ok := props["assignee"].(string); ok && strings.TrimSpace(assignee) != "" {
		out[PropertyAssignee] = notion.PeopleProperty(assignee)
	}
	if tags := stringList(props["tags"]); len(tags) > 0 {
		out[PropertyTags] = notion.MultiSelectProperty(tags...)
	}

	return out
}

// dueDate accepts a calendar date or an RFC 3339 timestamp and returns it unchanged.
func dueDate(props map[string]interface{}) (string, bool) {
	raw, ok := props["due_date"].(string)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if _, err := time.Parse("2006-01-02", raw); err == nil {
		return raw, true
	}
	if _, err := time.Parse(time.RFC3339, raw); err == nil {
		return raw, true
	}
	return "", false
}

func stringList(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
