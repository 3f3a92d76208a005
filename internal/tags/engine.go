// Package tags reconciles human-entered tag names against the authoritative
// server tag list and drives the assign/unassign sequence for a contact.
package tags

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ekarslan/rolodex/internal/models"
)

// Service is the slice of the backend client the engine needs.
type Service interface {
	ListTags(ctx context.Context) ([]models.Tag, error)
	AssignTag(ctx context.Context, contactID, tagID string) error
	UnassignTag(ctx context.Context, contactID, tagID string) error
}

// UnknownNamesError reports tag names that have no match in the user's tag
// list. The whole input is rejected; nothing is partially applied.
type UnknownNamesError struct {
	Names []string
}

func (e *UnknownNamesError) Error() string {
	return fmt.Sprintf("unknown tags: %s", strings.Join(e.Names, ", "))
}

// Failure records one failed assignment within a batch.
type Failure struct {
	Ref models.TagRef
	Err error
}

// PartialError reports an assignment batch where some calls succeeded and
// some failed. The succeeded assignments are not rolled back; the error
// names exactly which tags failed so the user can retry those.
type PartialError struct {
	Assigned []models.TagRef
	Failed   []Failure
}

func (e *PartialError) Error() string {
	names := make([]string, len(e.Failed))
	for i, f := range e.Failed {
		names[i] = f.Ref.TagName
	}
	return fmt.Sprintf("failed to assign tags: %s", strings.Join(names, ", "))
}

// Engine resolves tag names and applies assignments through a Service.
type Engine struct {
	svc Service
}

// NewEngine creates an engine backed by the given service.
func NewEngine(svc Service) *Engine {
	return &Engine{svc: svc}
}

// Resolve parses a comma-separated list of tag names and maps each to a ref
// using a case-insensitive lookup over the given tag list. An empty input
// (or one that reduces to no tokens) resolves to an empty set, which means
// "clear all tags". If any token has no match the whole input is rejected
// with an UnknownNamesError listing the offenders.
func Resolve(input string, tagList []models.Tag) ([]models.TagRef, error) {
	byName := make(map[string]models.Tag, len(tagList))
	for _, t := range tagList {
		byName[strings.ToLower(t.Name)] = t
	}

	var refs []models.TagRef
	var unknown []string
	for _, token := range strings.Split(input, ",") {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		t, ok := byName[strings.ToLower(name)]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		refs = append(refs, t.Ref())
	}

	if len(unknown) > 0 {
		return nil, &UnknownNamesError{Names: unknown}
	}
	return refs, nil
}

// ResolveFresh fetches the authoritative tag list and resolves input
// against it.
func (e *Engine) ResolveFresh(ctx context.Context, input string) ([]models.TagRef, error) {
	tagList, err := e.svc.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	return Resolve(input, tagList)
}

// AssignAll issues one assignment call per ref, all concurrently, and waits
// for every call to finish. There is no guaranteed completion order among
// them. On any failure it returns a *PartialError carrying the refs that
// did succeed and the per-item failures; succeeded assignments stay in
// place. With no refs it issues no calls at all.
func (e *Engine) AssignAll(ctx context.Context, contactID string, refs []models.TagRef) ([]models.TagRef, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	var mu sync.Mutex
	var assigned []models.TagRef
	var failed []Failure

	// Plain group: one call failing must not cancel the others mid-flight,
	// or the per-item outcomes would be polluted with context errors.
	var g errgroup.Group
	for _, ref := range refs {
		g.Go(func() error {
			err := e.svc.AssignTag(ctx, contactID, ref.TagID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed = append(failed, Failure{Ref: ref, Err: err})
				return err
			}
			assigned = append(assigned, ref)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return assigned, &PartialError{Assigned: assigned, Failed: failed}
	}
	return assigned, nil
}

// Unassign removes one tag from a contact server-side and returns the
// contact's ref set with that tag filtered out. The store is updated by the
// caller only after this succeeds.
func (e *Engine) Unassign(ctx context.Context, contact *models.Contact, tagID string) ([]models.TagRef, error) {
	if err := e.svc.UnassignTag(ctx, contact.ID, tagID); err != nil {
		return nil, err
	}
	remaining := make([]models.TagRef, 0, len(contact.Tags))
	for _, ref := range contact.Tags {
		if ref.TagID != tagID {
			remaining = append(remaining, ref)
		}
	}
	return remaining, nil
}

// IsUnknownNames reports whether err is an UnknownNamesError.
func IsUnknownNames(err error) bool {
	var u *UnknownNamesError
	return errors.As(err, &u)
}
