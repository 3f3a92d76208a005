package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ekarslan/rolodex/internal/models"
	"github.com/ekarslan/rolodex/internal/storage"
)

// ContactService implements contact CRUD and tag assignment for one
// storage backend.
type ContactService struct {
	store storage.Store
}

// NewContactService creates a contact service with the given storage
// backend.
func NewContactService(store storage.Store) *ContactService {
	return &ContactService{store: store}
}

// ownedContact loads a contact and verifies it belongs to userID.
func (s *ContactService) ownedContact(ctx context.Context, userID, contactID string) (*models.Contact, error) {
	contact, err := s.store.GetContact(ctx, contactID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: contact %s", ErrNotOwned, contactID)
	}
	if err != nil {
		return nil, err
	}
	if contact.UserID != userID {
		return nil, fmt.Errorf("%w: contact %s", ErrNotOwned, contactID)
	}
	return contact, nil
}

// Create persists a new contact for the user and returns it with its
// assigned identifier.
func (s *ContactService) Create(ctx context.Context, userID, name, email, phone, address string) (*models.Contact, error) {
	contact := &models.Contact{
		UserID:  userID,
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}
	if err := s.store.CreateContact(ctx, contact); err != nil {
		slog.Error("create contact failed", "user_id", userID, "error", err)
		return nil, err
	}
	slog.Info("contact created", "user_id", userID, "contact_id", contact.ID)
	return contact, nil
}

// List returns all of the user's contacts with embedded tag refs.
func (s *ContactService) List(ctx context.Context, userID string) ([]models.Contact, error) {
	return s.store.ListContacts(ctx, userID)
}

// Update overwrites the basic fields of one of the user's contacts.
func (s *ContactService) Update(ctx context.Context, userID, contactID, name, email, phone, address string) (*models.Contact, error) {
	contact, err := s.ownedContact(ctx, userID, contactID)
	if err != nil {
		return nil, err
	}

	contact.Name = name
	contact.Email = email
	contact.Phone = phone
	contact.Address = address
	if err := s.store.UpdateContact(ctx, contact); err != nil {
		slog.Error("update contact failed", "contact_id", contactID, "error", err)
		return nil, err
	}
	slog.Info("contact updated", "user_id", userID, "contact_id", contactID)
	return contact, nil
}

// Delete removes one of the user's contacts together with its tag
// assignments.
func (s *ContactService) Delete(ctx context.Context, userID, contactID string) error {
	if _, err := s.ownedContact(ctx, userID, contactID); err != nil {
		return err
	}
	if err := s.store.DeleteContact(ctx, contactID); err != nil {
		slog.Error("delete contact failed", "contact_id", contactID, "error", err)
		return err
	}
	slog.Info("contact deleted", "user_id", userID, "contact_id", contactID)
	return nil
}

// AssignTag links one of the user's tags to one of the user's contacts.
// Assigning a tag that is already on the contact is a conflict.
func (s *ContactService) AssignTag(ctx context.Context, userID, contactID, tagID string) error {
	if _, err := s.ownedContact(ctx, userID, contactID); err != nil {
		return err
	}

	tag, err := s.store.GetTag(ctx, tagID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: tag %s", ErrNotOwned, tagID)
	}
	if err != nil {
		return err
	}
	if tag.UserID != userID {
		return fmt.Errorf("%w: tag %s", ErrNotOwned, tagID)
	}

	assigned, err := s.store.IsTagAssigned(ctx, contactID, tagID)
	if err != nil {
		return err
	}
	if assigned {
		return fmt.Errorf("%w: tag %s on contact %s", ErrAlreadyAssigned, tagID, contactID)
	}

	if err := s.store.AssignTag(ctx, contactID, tagID); err != nil {
		slog.Error("assign tag failed", "contact_id", contactID, "tag_id", tagID, "error", err)
		return err
	}
	slog.Info("tag assigned", "user_id", userID, "contact_id", contactID, "tag_id", tagID)
	return nil
}

// UnassignTag removes a tag from one of the user's contacts.
func (s *ContactService) UnassignTag(ctx context.Context, userID, contactID, tagID string) error {
	if _, err := s.ownedContact(ctx, userID, contactID); err != nil {
		return err
	}

	err := s.store.UnassignTag(ctx, contactID, tagID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: tag %s on contact %s", ErrNotAssigned, tagID, contactID)
	}
	if err != nil {
		slog.Error("unassign tag failed", "contact_id", contactID, "tag_id", tagID, "error", err)
		return err
	}
	slog.Info("tag unassigned", "user_id", userID, "contact_id", contactID, "tag_id", tagID)
	return nil
}
