package models

// TagRef is the denormalized (id, name) pair of a Tag embedded in a Contact.
// It must match a Tag that exists server-side at read time; after a tag is
// deleted, stale refs are healed by the next full reload rather than pruned
// in place.
type TagRef struct {
	// TagID is the identifier of the referenced tag.
	TagID string `json:"tag_id"`

	// TagName is the tag's display name at the time the ref was built.
	TagName string `json:"tag_name"`
}

// Contact represents one phone-book entry belonging to a user.
type Contact struct {
	// ID is the unique identifier for the contact (UUID format).
	// Assigned by the storage layer, immutable once created.
	ID string `json:"contact_id"`

	// UserID is the owning user. Not serialized; ownership is carried in
	// the request path instead.
	UserID string `json:"-"`

	// Name is the contact's display name (letters and spaces only).
	Name string `json:"name"`

	// Phone is the contact's number in normalized international format,
	// e.g. "+90 532 111 22 33".
	Phone string `json:"phone"`

	// Email is the contact's email address.
	Email string `json:"email"`

	// Address is an optional free-form postal address.
	Address string `json:"address"`

	// Tags are the tags assigned to this contact, in assignment order.
	// Order is preserved for display but irrelevant for identity.
	Tags []TagRef `json:"tags"`
}

// HasTag reports whether the contact carries a ref to the given tag id.
func (c *Contact) HasTag(tagID string) bool {
	for _, ref := range c.Tags {
		if ref.TagID == tagID {
			return true
		}
	}
	return false
}
