package store

import (
	"testing"

	"github.com/ekarslan/rolodex/internal/models"
)

func sample() []models.Contact {
	return []models.Contact{
		{ID: "c1", Name: "Ayşe", Tags: []models.TagRef{{TagID: "t1", TagName: "work"}}},
		{ID: "c2", Name: "Mehmet"},
		{ID: "c3", Name: "Zeynep"},
	}
}

func TestReplaceAll(t *testing.T) {
	s := New()
	s.Append(models.Contact{ID: "old"})

	s.ReplaceAll(sample())

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if s.Get("old") != nil {
		t.Error("expected prior contents to be discarded")
	}
	if got := s.Contacts()[0].ID; got != "c1" {
		t.Errorf("first contact = %s, want c1", got)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	s := New()
	s.ReplaceAll(sample())
	s.Append(models.Contact{ID: "c4", Name: "Deniz"})

	contacts := s.Contacts()
	if contacts[len(contacts)-1].ID != "c4" {
		t.Errorf("appended contact not at end: %v", contacts)
	}
}

func TestRemoveByID(t *testing.T) {
	s := New()
	s.ReplaceAll(sample())

	s.RemoveByID("c2")

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if s.Get("c2") != nil {
		t.Error("c2 still present after remove")
	}
	// Order of the remaining contacts is unchanged.
	contacts := s.Contacts()
	if contacts[0].ID != "c1" || contacts[1].ID != "c3" {
		t.Errorf("unexpected order after remove: %v", contacts)
	}
}

func TestRemoveByIDAbsentIsNoOp(t *testing.T) {
	s := New()
	s.ReplaceAll(sample())

	s.RemoveByID("nope")

	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestSetTags(t *testing.T) {
	s := New()
	s.ReplaceAll(sample())

	s.SetTags("c1", []models.TagRef{{TagID: "t2", TagName: "friends"}})

	c := s.Get("c1")
	if len(c.Tags) != 1 || c.Tags[0].TagID != "t2" {
		t.Errorf("tags = %v, want single t2 ref", c.Tags)
	}

	s.SetTags("c1", nil)
	if len(s.Get("c1").Tags) != 0 {
		t.Errorf("tags not cleared: %v", s.Get("c1").Tags)
	}
}

func TestContactsReturnsCopy(t *testing.T) {
	s := New()
	s.ReplaceAll(sample())

	snapshot := s.Contacts()
	snapshot[0], snapshot[2] = snapshot[2], snapshot[0]

	if s.Contacts()[0].ID != "c1" {
		t.Error("reordering the snapshot mutated the store")
	}
}
