package models

// UserIntegration is the per-user workspace link stored in user_integrations.
type UserIntegration struct {
	UserID      string            `json:"userId"`
	NotionToken string            `json:"-"`
	NotionDBMap map[string]string `json:"notionDbMap"`
}

// Linked reports whether a usable workspace token is present.
func (u *UserIntegration) Linked() bool {
	return u != nil && u.NotionToken != ""
}

// DatabaseFor returns the destination database mapped to category.
func (u *UserIntegration) DatabaseFor(category string) (string, bool) {
	if u == nil || category == "" {
		return "", false
	}
	id, ok := u.NotionDBMap[category]
	return id, ok && id != ""
}
