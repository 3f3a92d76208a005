// Package store holds the in-memory contact list that mirrors the server's
// state for the current user. It is the single source of truth for what the
// client renders; every mutation happens only after the corresponding API
// call has confirmed success, so the store never holds a contact pending an
// unconfirmed create or delete.
//
// The store performs no I/O and no locking: all mutations come from the
// single flow of control that owns it.
package store

import "github.com/ekarslan/rolodex/internal/models"

// ContactStore is the ordered list of contacts for the current user.
type ContactStore struct {
	contacts []models.Contact
}

// New returns an empty store.
func New() *ContactStore {
	return &ContactStore{}
}

// ReplaceAll discards the current contents and installs the server's
// snapshot. Used after a full reload.
func (s *ContactStore) ReplaceAll(contacts []models.Contact) {
	s.contacts = make([]models.Contact, len(contacts))
	copy(s.contacts, contacts)
}

// Append adds one contact at the end. Used after a confirmed create.
func (s *ContactStore) Append(c models.Contact) {
	s.contacts = append(s.contacts, c)
}

// RemoveByID removes the contact with the given identifier. Removing an
// absent identifier is a no-op.
func (s *ContactStore) RemoveByID(contactID string) {
	for i := range s.contacts {
		if s.contacts[i].ID == contactID {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return
		}
	}
}

// SetTags replaces the tag refs of one contact. Used after assign or
// unassign confirmation. Unknown identifiers are ignored.
func (s *ContactStore) SetTags(contactID string, tags []models.TagRef) {
	for i := range s.contacts {
		if s.contacts[i].ID == contactID {
			s.contacts[i].Tags = make([]models.TagRef, len(tags))
			copy(s.contacts[i].Tags, tags)
			return
		}
	}
}

// Get returns the contact with the given identifier, or nil.
func (s *ContactStore) Get(contactID string) *models.Contact {
	for i := range s.contacts {
		if s.contacts[i].ID == contactID {
			return &s.contacts[i]
		}
	}
	return nil
}

// Contacts returns the contacts in store order. The returned slice is a
// copy; callers may reorder it freely.
func (s *ContactStore) Contacts() []models.Contact {
	out := make([]models.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Len returns the number of contacts in the store.
func (s *ContactStore) Len() int {
	return len(s.contacts)
}
