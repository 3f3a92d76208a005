package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ekarslan/rolodex/internal/models"
	"github.com/ekarslan/rolodex/internal/storage/sqlite"
)

// setupServices creates contact and tag services over a temp SQLite store
// with one seeded user.
func setupServices(t *testing.T) (*ContactService, *TagService, *models.User) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "rolodex-svc-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.NewUser("ayse", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	return NewContactService(store), NewTagService(store), user
}

func TestContactCRUD(t *testing.T) {
	contacts, _, user := setupServices(t)
	ctx := context.Background()

	created, err := contacts.Create(ctx, user.ID, "Ayşe Yılmaz", "ayse@mail.com", "+90 532 111 22 33", "İstanbul")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected server-assigned id")
	}

	updated, err := contacts.Update(ctx, user.ID, created.ID, "Ayşe Kaya", "ayse@mail.com", "+90 532 111 22 33", "Ankara")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Ayşe Kaya" || updated.Address != "Ankara" {
		t.Errorf("updated = %+v", updated)
	}

	list, err := contacts.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Ayşe Kaya" {
		t.Errorf("list = %+v", list)
	}

	if err := contacts.Delete(ctx, user.ID, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := contacts.Delete(ctx, user.ID, created.ID); !errors.Is(err, ErrNotOwned) {
		t.Errorf("second delete err = %v, want ErrNotOwned", err)
	}
}

func TestContactOwnership(t *testing.T) {
	contacts, _, user := setupServices(t)
	ctx := context.Background()

	created, err := contacts.Create(ctx, user.ID, "Mehmet", "m@mail.com", "", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Another user id cannot update, delete, or tag this contact.
	if _, err := contacts.Update(ctx, "intruder", created.ID, "X", "", "", ""); !errors.Is(err, ErrNotOwned) {
		t.Errorf("Update err = %v, want ErrNotOwned", err)
	}
	if err := contacts.Delete(ctx, "intruder", created.ID); !errors.Is(err, ErrNotOwned) {
		t.Errorf("Delete err = %v, want ErrNotOwned", err)
	}
	if err := contacts.AssignTag(ctx, "intruder", created.ID, "t1"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("AssignTag err = %v, want ErrNotOwned", err)
	}
}

func TestAssignAndUnassign(t *testing.T) {
	contacts, tags, user := setupServices(t)
	ctx := context.Background()

	contact, err := contacts.Create(ctx, user.ID, "Ayşe", "ayse@mail.com", "", "")
	if err != nil {
		t.Fatalf("Create contact failed: %v", err)
	}
	tag, err := tags.Create(ctx, user.ID, "work")
	if err != nil {
		t.Fatalf("Create tag failed: %v", err)
	}

	if err := contacts.AssignTag(ctx, user.ID, contact.ID, tag.ID); err != nil {
		t.Fatalf("AssignTag failed: %v", err)
	}

	// Double assignment is a conflict.
	if err := contacts.AssignTag(ctx, user.ID, contact.ID, tag.ID); !errors.Is(err, ErrAlreadyAssigned) {
		t.Errorf("second assign err = %v, want ErrAlreadyAssigned", err)
	}

	list, err := contacts.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list[0].Tags) != 1 || list[0].Tags[0].TagID != tag.ID {
		t.Errorf("tags = %v", list[0].Tags)
	}

	if err := contacts.UnassignTag(ctx, user.ID, contact.ID, tag.ID); err != nil {
		t.Fatalf("UnassignTag failed: %v", err)
	}
	if err := contacts.UnassignTag(ctx, user.ID, contact.ID, tag.ID); !errors.Is(err, ErrNotAssigned) {
		t.Errorf("second unassign err = %v, want ErrNotAssigned", err)
	}

	// Assigning a tag the user does not own is rejected.
	if err := contacts.AssignTag(ctx, user.ID, contact.ID, "no-such-tag"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("assign unknown tag err = %v, want ErrNotOwned", err)
	}
}

func TestTagService(t *testing.T) {
	_, tags, user := setupServices(t)
	ctx := context.Background()

	tag, err := tags.Create(ctx, user.ID, "Work")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Duplicate names are rejected case-insensitively.
	if _, err := tags.Create(ctx, user.ID, "wOrK"); !errors.Is(err, ErrDuplicateTag) {
		t.Errorf("duplicate create err = %v, want ErrDuplicateTag", err)
	}

	if _, err := tags.Create(ctx, user.ID, "   "); !errors.Is(err, ErrEmptyTagName) {
		t.Errorf("blank create err = %v, want ErrEmptyTagName", err)
	}

	if _, err := tags.Create(ctx, "ghost-user", "home"); !errors.Is(err, ErrNoSuchUser) {
		t.Errorf("unknown user err = %v, want ErrNoSuchUser", err)
	}

	list, err := tags.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Work" {
		t.Errorf("list = %+v", list)
	}

	if err := tags.Delete(ctx, user.ID, tag.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := tags.Delete(ctx, user.ID, tag.ID); !errors.Is(err, ErrNotOwned) {
		t.Errorf("second delete err = %v, want ErrNotOwned", err)
	}
}
