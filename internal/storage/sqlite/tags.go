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

// CreateTag persists a new tag, generating its ID.
func (s *SQLiteStore) CreateTag(ctx context.Context, tag *models.Tag) error {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tags (id, user_id, tag_name) VALUES (?, ?, ?)",
		tag.ID, tag.UserID, tag.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tag: %w", err)
	}
	return nil
}

// ListTags returns a user's tags in creation order.
func (s *SQLiteStore) ListTags(ctx context.Context, userID string) ([]models.Tag, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, tag_name FROM tags WHERE user_id = ? ORDER BY rowid",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}
	return tags, nil
}

// GetTag retrieves one tag by id.
func (s *SQLiteStore) GetTag(ctx context.Context, tagID string) (*models.Tag, error) {
	t := &models.Tag{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, tag_name FROM tags WHERE id = ?",
		tagID,
	).Scan(&t.ID, &t.UserID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return t, nil
}

// GetTagByName retrieves a user's tag by name, case-insensitively (the
// tag_name column collates NOCASE).
func (s *SQLiteStore) GetTagByName(ctx context.Context, userID, name string) (*models.Tag, error) {
	t := &models.Tag{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, tag_name FROM tags WHERE user_id = ? AND tag_name = ?",
		userID, name,
	).Scan(&t.ID, &t.UserID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Tag not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag by name: %w", err)
	}
	return t, nil
}

// DeleteTag removes a tag; contact_tags rows cascade with it.
func (s *SQLiteStore) DeleteTag(ctx context.Context, tagID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", tagID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
