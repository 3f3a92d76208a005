// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/ekarslan/rolodex/internal/models"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for contact-manager storage operations. This
// abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username.
	// Returns (nil, nil) when no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by id.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateContact persists a new contact. The contact.ID field will be
	// populated by the store.
	CreateContact(ctx context.Context, contact *models.Contact) error

	// ListContacts returns the user's contacts in creation order, each
	// with its embedded tag refs in assignment order.
	ListContacts(ctx context.Context, userID string) ([]models.Contact, error)

	// GetContact retrieves one contact with its tag refs.
	// Returns ErrNotFound if it does not exist.
	GetContact(ctx context.Context, contactID string) (*models.Contact, error)

	// UpdateContact overwrites the basic fields of an existing contact.
	UpdateContact(ctx context.Context, contact *models.Contact) error

	// DeleteContact removes a contact; its tag assignments go with it.
	DeleteContact(ctx context.Context, contactID string) error

	// CreateTag persists a new tag. The tag.ID field will be populated
	// by the store.
	CreateTag(ctx context.Context, tag *models.Tag) error

	// ListTags returns the user's tags in creation order.
	ListTags(ctx context.Context, userID string) ([]models.Tag, error)

	// GetTag retrieves one tag. Returns ErrNotFound if it does not exist.
	GetTag(ctx context.Context, tagID string) (*models.Tag, error)

	// GetTagByName retrieves a user's tag by name, compared
	// case-insensitively. Returns (nil, nil) when no such tag exists.
	GetTagByName(ctx context.Context, userID, name string) (*models.Tag, error)

	// DeleteTag removes a tag; its assignments go with it.
	DeleteTag(ctx context.Context, tagID string) error

	// AssignTag links a tag to a contact.
	AssignTag(ctx context.Context, contactID, tagID string) error

	// UnassignTag removes the link. Returns ErrNotFound when the pair is
	// not assigned.
	UnassignTag(ctx context.Context, contactID, tagID string) error

	// IsTagAssigned reports whether the tag is already assigned to the
	// contact.
	IsTagAssigned(ctx context.Context, contactID, tagID string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}
