package tags

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/ekarslan/rolodex/internal/models"
)

var tagList = []models.Tag{
	{ID: "t1", UserID: "u1", Name: "Work"},
	{ID: "t2", UserID: "u1", Name: "friends"},
	{ID: "t3", UserID: "u1", Name: "family"},
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantIDs []string
		wantErr []string // unknown names, nil for success
	}{
		{"single match", "work", []string{"t1"}, nil},
		{"case insensitive", "WORK, Friends", []string{"t1", "t2"}, nil},
		{"whitespace trimmed", "  work ,family  ", []string{"t1", "t3"}, nil},
		{"empty input clears", "", nil, nil},
		{"only commas clears", " , ,", nil, nil},
		{"unknown name rejects all", "work, school", nil, []string{"school"}},
		{"multiple unknown reported", "gym, school", nil, []string{"gym", "school"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, err := Resolve(tt.input, tagList)

			if tt.wantErr != nil {
				var unknown *UnknownNamesError
				if !errors.As(err, &unknown) {
					t.Fatalf("Resolve(%q) err = %v, want UnknownNamesError", tt.input, err)
				}
				if strings.Join(unknown.Names, ",") != strings.Join(tt.wantErr, ",") {
					t.Errorf("unknown names = %v, want %v", unknown.Names, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve(%q) failed: %v", tt.input, err)
			}
			if len(refs) != len(tt.wantIDs) {
				t.Fatalf("got %d refs, want %d", len(refs), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if refs[i].TagID != id {
					t.Errorf("ref[%d].TagID = %s, want %s", i, refs[i].TagID, id)
				}
			}
		})
	}
}

// fakeService records assignment calls and fails the configured tag ids.
type fakeService struct {
	mu       sync.Mutex
	assigned []string
	failIDs  map[string]bool
}

func (f *fakeService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return tagList, nil
}

func (f *fakeService) AssignTag(ctx context.Context, contactID, tagID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIDs[tagID] {
		return errors.New("assignment rejected")
	}
	f.assigned = append(f.assigned, tagID)
	return nil
}

func (f *fakeService) UnassignTag(ctx context.Context, contactID, tagID string) error {
	return nil
}

func TestAssignAll(t *testing.T) {
	svc := &fakeService{}
	engine := NewEngine(svc)

	refs := []models.TagRef{
		{TagID: "t1", TagName: "Work"},
		{TagID: "t2", TagName: "friends"},
	}
	assigned, err := engine.AssignAll(context.Background(), "c1", refs)
	if err != nil {
		t.Fatalf("AssignAll failed: %v", err)
	}
	if len(assigned) != 2 {
		t.Errorf("assigned %d refs, want 2", len(assigned))
	}

	sort.Strings(svc.assigned)
	if strings.Join(svc.assigned, ",") != "t1,t2" {
		t.Errorf("assigned calls = %v, want one per tag", svc.assigned)
	}
}

func TestAssignAllEmptyIssuesNoCalls(t *testing.T) {
	svc := &fakeService{}
	engine := NewEngine(svc)

	assigned, err := engine.AssignAll(context.Background(), "c1", nil)
	if err != nil {
		t.Fatalf("AssignAll failed: %v", err)
	}
	if len(assigned) != 0 || len(svc.assigned) != 0 {
		t.Errorf("expected no assignments, got %v", svc.assigned)
	}
}

func TestAssignAllPartialFailure(t *testing.T) {
	svc := &fakeService{failIDs: map[string]bool{"t2": true}}
	engine := NewEngine(svc)

	refs := []models.TagRef{
		{TagID: "t1", TagName: "Work"},
		{TagID: "t2", TagName: "friends"},
		{TagID: "t3", TagName: "family"},
	}
	assigned, err := engine.AssignAll(context.Background(), "c1", refs)

	var partial *PartialError
	if !errors.As(err, &partial) {
		t.Fatalf("err = %v, want PartialError", err)
	}
	if len(partial.Failed) != 1 || partial.Failed[0].Ref.TagID != "t2" {
		t.Errorf("failed = %v, want exactly t2", partial.Failed)
	}
	// Succeeded assignments are reported and not rolled back.
	if len(partial.Assigned) != 2 || len(assigned) != 2 {
		t.Errorf("assigned = %v, want t1 and t3", partial.Assigned)
	}
	if !strings.Contains(err.Error(), "friends") {
		t.Errorf("error %q does not name the failed tag", err.Error())
	}
}

func TestUnassign(t *testing.T) {
	engine := NewEngine(&fakeService{})

	contact := &models.Contact{
		ID: "c1",
		Tags: []models.TagRef{
			{TagID: "t1", TagName: "Work"},
			{TagID: "t2", TagName: "friends"},
		},
	}
	remaining, err := engine.Unassign(context.Background(), contact, "t1")
	if err != nil {
		t.Fatalf("Unassign failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].TagID != "t2" {
		t.Errorf("remaining = %v, want only t2", remaining)
	}
}
