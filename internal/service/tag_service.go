package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ekarslan/rolodex/internal/models"
	"github.com/ekarslan/rolodex/internal/storage"
)

// TagService implements tag CRUD for one storage backend. Tags exist
// independently of contacts; assignment lives on ContactService.
type TagService struct {
	store storage.Store
}

// NewTagService creates a tag service with the given storage backend.
func NewTagService(store storage.Store) *TagService {
	return &TagService{store: store}
}

// Create persists a new tag for the user. Names are unique per user,
// compared case-insensitively.
func (s *TagService) Create(ctx context.Context, userID, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTagName
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchUser, userID)
	}

	existing, err := s.store.GetTagByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, name)
	}

	tag := &models.Tag{UserID: userID, Name: name}
	if err := s.store.CreateTag(ctx, tag); err != nil {
		slog.Error("create tag failed", "user_id", userID, "tag_name", name, "error", err)
		return nil, err
	}
	slog.Info("tag created", "user_id", userID, "tag_id", tag.ID, "tag_name", name)
	return tag, nil
}

// List returns all of the user's tags.
func (s *TagService) List(ctx context.Context, userID string) ([]models.Tag, error) {
	return s.store.ListTags(ctx, userID)
}

// Delete removes one of the user's tags together with its assignments.
// Contacts that carried the tag simply lose it.
func (s *TagService) Delete(ctx context.Context, userID, tagID string) error {
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

	if err := s.store.DeleteTag(ctx, tagID); err != nil {
		slog.Error("delete tag failed", "tag_id", tagID, "error", err)
		return err
	}
	slog.Info("tag deleted", "user_id", userID, "tag_id", tagID)
	return nil
}
