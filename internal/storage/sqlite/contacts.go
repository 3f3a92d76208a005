package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekarslan/rolodex/internal/models"
	"github.com/ekarslan/rolodex/internal/storage"
)

// CreateContact persists a new contact, generating its ID.
func (s *SQLiteStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contacts (id, user_id, name, phone, email, address) VALUES (?, ?, ?, ?, ?, ?)",
		contact.ID, contact.UserID, contact.Name, contact.Phone, contact.Email, contact.Address,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// ListContacts returns a user's contacts in creation order with embedded
// tag refs.
func (s *SQLiteStore) ListContacts(ctx context.Context, userID string) ([]models.Contact, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, name, phone, email, address FROM contacts WHERE user_id = ? ORDER BY rowid",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Email, &c.Address); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	for i := range contacts {
		tags, err := s.contactTagRefs(ctx, contacts[i].ID)
		if err != nil {
			return nil, err
		}
		contacts[i].Tags = tags
	}

	return contacts, nil
}

// GetContact retrieves one contact with its tag refs.
func (s *SQLiteStore) GetContact(ctx context.Context, contactID string) (*models.Contact, error) {
	c := &models.Contact{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, name, phone, email, address FROM contacts WHERE id = ?",
		contactID,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Email, &c.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	tags, err := s.contactTagRefs(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c.Tags = tags
	return c, nil
}

// UpdateContact overwrites the contact's basic fields.
func (s *SQLiteStore) UpdateContact(ctx context.Context, contact *models.Contact) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE contacts SET name = ?, phone = ?, email = ?, address = ? WHERE id = ?",
		contact.Name, contact.Phone, contact.Email, contact.Address, contact.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteContact removes a contact; contact_tags rows cascade with it.
func (s *SQLiteStore) DeleteContact(ctx context.Context, contactID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", contactID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// AssignTag links a tag to a contact.
func (s *SQLiteStore) AssignTag(ctx context.Context, contactID, tagID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO contact_tags (contact_id, tag_id) VALUES (?, ?)",
		contactID, tagID,
	)
	if err != nil {
		return fmt.Errorf("failed to assign tag: %w", err)
	}
	return nil
}

// UnassignTag removes the link between a contact and a tag.
func (s *SQLiteStore) UnassignTag(ctx context.Context, contactID, tagID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM contact_tags WHERE contact_id = ? AND tag_id = ?",
		contactID, tagID,
	)
	if err != nil {
		return fmt.Errorf("failed to unassign tag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to unassign tag: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// IsTagAssigned reports whether the tag is already assigned to the contact.
func (s *SQLiteStore) IsTagAssigned(ctx context.Context, contactID, tagID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM contact_tags WHERE contact_id = ? AND tag_id = ?",
		contactID, tagID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check assignment: %w", err)
	}
	return true, nil
}

// contactTagRefs returns the contact's tag refs in assignment order.
func (s *SQLiteStore) contactTagRefs(ctx context.Context, contactID string) ([]models.TagRef, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.id, t.tag_name
		FROM contact_tags ct
		JOIN tags t ON t.id = ct.tag_id
		WHERE ct.contact_id = ?
		ORDER BY ct.rowid
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contact tags: %w", err)
	}
	defer rows.Close()

	var refs []models.TagRef
	for rows.Next() {
		var ref models.TagRef
		if err := rows.Scan(&ref.TagID, &ref.TagName); err != nil {
			return nil, fmt.Errorf("failed to scan tag ref: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tag refs: %w", err)
	}
	return refs, nil
}
