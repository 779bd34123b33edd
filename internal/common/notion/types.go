package notion

// Parent references the database a page is created in.
type Parent struct {
	Type       string `json:"type,omitempty"`
	DatabaseID string `json:"database_id"`
}

// DatabaseParent builds a parent reference for databaseID.
func DatabaseParent(databaseID string) Parent {
	return Parent{Type: "database_id", DatabaseID: databaseID}
}

// Property is one database page property value. Exactly one field is set.
type Property struct {
	Title       []RichText     `json:"title,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
	People      []UserRef      `json:"people,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
}

type RichText struct {
	Text TextContent `json:"text"`
}

type TextContent struct {
	Content string `json:"content"`
}

type DateValue struct {
	Start string `json:"start"`
}

type UserRef struct {
	ID string `json:"id"`
}

type SelectOption struct {
	Name string `json:"name"`
}

// TitleProperty builds a title property holding a single text run.
func TitleProperty(content string) Property {
	return Property{Title: []RichText{{Text: TextContent{Content: content}}}}
}

func DateProperty(start string) Property {
	return Property{Date: &DateValue{Start: start}}
}

func PeopleProperty(userIDs ...string) Property {
	people := make([]UserRef, 0, len(userIDs))
	for _, id := range userIDs {
		people = append(people, UserRef{ID: id})
	}
	return Property{People: people}
}

func MultiSelectProperty(names ...string) Property {
	options := make([]SelectOption, 0, len(names))
	for _, name := range names {
		options = append(options, SelectOption{Name: name})
	}
	return Property{MultiSelect: options}
}

// CreatePageRequest is the body of POST /pages.
type CreatePageRequest struct {
	Parent     Parent              `json:"parent"`
	Properties map[string]Property `json:"properties"`
}

// Page is the subset of the page object the service reads back.
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
