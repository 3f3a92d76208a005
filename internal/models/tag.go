package models

// Tag is a user-defined label that can be assigned to any number of the
// user's contacts. Tag names are unique per user, compared case-insensitively.
type Tag struct {
	// ID is the unique identifier for the tag (UUID format).
	ID string `json:"id"`

	// UserID is the owning user.
	UserID string `json:"user_id"`

	// Name is the tag's display name (non-empty).
	Name string `json:"tag_name"`
}

// Ref returns the denormalized reference embedded in contacts.
func (t *Tag) Ref() TagRef {
	return TagRef{TagID: t.ID, TagName: t.Name}
}
