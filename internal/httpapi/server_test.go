package httpapi

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ekarslan/rolodex/internal/api"
	"github.com/ekarslan/rolodex/internal/auth"
	"github.com/ekarslan/rolodex/internal/service"
	"github.com/ekarslan/rolodex/internal/storage/sqlite"
)

// setupServer stands up the full API over a temp SQLite store and returns
// a client pointed at it.
func setupServer(t *testing.T) *api.Client {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "rolodex-api-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := New(
		service.NewContactService(store),
		service.NewTagService(store),
		auth.NewPasswordAuthenticator(store),
		auth.NewJWTManager("test-secret", time.Hour),
	)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	return api.New(ts.URL)
}

// loggedInClient registers and logs in a fresh user.
func loggedInClient(t *testing.T, client *api.Client, username string) {
	t.Helper()
	ctx := context.Background()
	if err := client.Register(ctx, username, "password123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, err := client.Login(ctx, username, "password123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *api.Error", err)
	}
	return apiErr.StatusCode
}

func TestRegisterAndLogin(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	if err := client.Register(ctx, "ayse", "password123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("duplicate username conflicts", func(t *testing.T) {
		err := client.Register(ctx, "ayse", "password123")
		if got := statusCode(t, err); got != 409 {
			t.Errorf("status = %d, want 409", got)
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		err := client.Register(ctx, "mehmet", "short")
		if got := statusCode(t, err); got != 400 {
			t.Errorf("status = %d, want 400", got)
		}
	})

	t.Run("wrong password unauthorized", func(t *testing.T) {
		_, err := client.Login(ctx, "ayse", "wrong-password")
		if got := statusCode(t, err); got != 401 {
			t.Errorf("status = %d, want 401", got)
		}
	})

	t.Run("login returns session", func(t *testing.T) {
		session, err := client.Login(ctx, "ayse", "password123")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if session.UserID == "" || session.Token == "" {
			t.Errorf("session = %+v, want user id and token", session)
		}
	})
}

func TestContactLifecycle(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()
	loggedInClient(t, client, "ayse")

	created, err := client.CreateContact(ctx, "Ayşe Yılmaz", "+90 532 111 22 33", "ayse@mail.com", "İstanbul")
	if err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected server-assigned contact id")
	}

	tag, err := client.CreateTag(ctx, "work")
	if err != nil {
		t.Fatalf("CreateTag failed: %v", err)
	}
	if err := client.AssignTag(ctx, created.ID, tag.ID); err != nil {
		t.Fatalf("AssignTag failed: %v", err)
	}

	t.Run("double assign conflicts", func(t *testing.T) {
		err := client.AssignTag(ctx, created.ID, tag.ID)
		if got := statusCode(t, err); got != 409 {
			t.Errorf("status = %d, want 409", got)
		}
	})

	t.Run("list embeds tag refs", func(t *testing.T) {
		contacts, err := client.ListContacts(ctx)
		if err != nil {
			t.Fatalf("ListContacts failed: %v", err)
		}
		if len(contacts) != 1 {
			t.Fatalf("got %d contacts, want 1", len(contacts))
		}
		if len(contacts[0].Tags) != 1 || contacts[0].Tags[0].TagName != "work" {
			t.Errorf("tags = %v", contacts[0].Tags)
		}
	})

	t.Run("update overwrites fields", func(t *testing.T) {
		if err := client.UpdateContact(ctx, created.ID, "Ayşe Kaya", "+90 532 111 22 33", "ayse@mail.com", "Ankara"); err != nil {
			t.Fatalf("UpdateContact failed: %v", err)
		}
		contacts, err := client.ListContacts(ctx)
		if err != nil {
			t.Fatalf("ListContacts failed: %v", err)
		}
		if contacts[0].Name != "Ayşe Kaya" || contacts[0].Address != "Ankara" {
			t.Errorf("contact = %+v", contacts[0])
		}
	})

	t.Run("unassign then delete", func(t *testing.T) {
		if err := client.UnassignTag(ctx, created.ID, tag.ID); err != nil {
			t.Fatalf("UnassignTag failed: %v", err)
		}
		if err := client.UnassignTag(ctx, created.ID, tag.ID); statusCode(t, err) != 403 {
			t.Errorf("second unassign err = %v, want 403", err)
		}
		if err := client.DeleteContact(ctx, created.ID); err != nil {
			t.Fatalf("DeleteContact failed: %v", err)
		}
		if err := client.DeleteContact(ctx, created.ID); statusCode(t, err) != 403 {
			t.Errorf("second delete err = %v, want 403", err)
		}
	})
}

func TestTagRoutes(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()
	loggedInClient(t, client, "ayse")

	tag, err := client.CreateTag(ctx, "Work")
	if err != nil {
		t.Fatalf("CreateTag failed: %v", err)
	}

	t.Run("duplicate name conflicts case-insensitively", func(t *testing.T) {
		_, err := client.CreateTag(ctx, "wOrK")
		if got := statusCode(t, err); got != 409 {
			t.Errorf("status = %d, want 409", got)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := client.CreateTag(ctx, "   ")
		if got := statusCode(t, err); got != 400 {
			t.Errorf("status = %d, want 400", got)
		}
	})

	t.Run("list and delete", func(t *testing.T) {
		tags, err := client.ListTags(ctx)
		if err != nil {
			t.Fatalf("ListTags failed: %v", err)
		}
		if len(tags) != 1 || tags[0].Name != "Work" {
			t.Errorf("tags = %+v", tags)
		}
		if err := client.DeleteTag(ctx, tag.ID); err != nil {
			t.Fatalf("DeleteTag failed: %v", err)
		}
		if err := client.DeleteTag(ctx, tag.ID); statusCode(t, err) != 403 {
			t.Errorf("second delete err = %v, want 403", err)
		}
	})
}

func TestAuthBoundaries(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	t.Run("no token is unauthorized", func(t *testing.T) {
		client.SetSession("u1", "")
		_, err := client.ListContacts(ctx)
		if got := statusCode(t, err); got != 401 {
			t.Errorf("status = %d, want 401", got)
		}
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		client.SetSession("u1", "not-a-jwt")
		_, err := client.ListContacts(ctx)
		if got := statusCode(t, err); got != 401 {
			t.Errorf("status = %d, want 401", got)
		}
	})

	t.Run("token for another user is forbidden", func(t *testing.T) {
		loggedInClient(t, client, "ayse")
		client.UserID = "someone-else"
		_, err := client.ListContacts(ctx)
		if got := statusCode(t, err); got != 403 {
			t.Errorf("status = %d, want 403", got)
		}
	})
}
