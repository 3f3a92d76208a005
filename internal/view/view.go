// Package view derives the rendered contact list from the store's snapshot.
// Every function here is a pure projection: inputs are never mutated and the
// store is never touched. The active mode is driven by the last user action;
// search, tag filtering, and sorting are not composed.
package view

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ekarslan/rolodex/internal/models"
)

// Selection is the transient set of tag identifiers marked selected in the
// tag palette. It drives the tag filter and is never persisted.
type Selection map[string]bool

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return make(Selection)
}

// Toggle flips membership of a tag id and reports whether it is now
// selected.
func (s Selection) Toggle(tagID string) bool {
	if s[tagID] {
		delete(s, tagID)
		return false
	}
	s[tagID] = true
	return true
}

// Empty reports whether no tags are selected.
func (s Selection) Empty() bool { return len(s) == 0 }

// Name comparison matches the original list's locale behavior: Turkish
// collation with case and diacritics ignored.
var nameCollator = collate.New(language.Turkish, collate.Loose)

// Search returns the contacts matching the free-text query: case-insensitive
// substring match against name, whitespace-stripped phone, email, or
// address. An empty query falls back to the unfiltered list.
func Search(contacts []models.Contact, query string) []models.Contact {
	query = strings.TrimSpace(query)
	if query == "" {
		return append([]models.Contact(nil), contacts...)
	}

	q := strings.ToLower(query)
	qPhone := stripSpace(q)

	var out []models.Contact
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(stripSpace(c.Phone), qPhone) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Address), q) {
			out = append(out, c)
		}
	}
	return out
}

// FilterBySelection returns the contacts holding at least one selected tag
// (logical OR). An empty selection falls back to the unfiltered list.
func FilterBySelection(contacts []models.Contact, sel Selection) []models.Contact {
	if sel.Empty() {
		return append([]models.Contact(nil), contacts...)
	}

	var out []models.Contact
	for _, c := range contacts {
		for _, ref := range c.Tags {
			if sel[ref.TagID] {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// SortKey selects which field an ordering is derived from.
type SortKey int

const (
	// SortByName orders by name using locale-aware, case-insensitive
	// comparison.
	SortByName SortKey = iota
	// SortByPhone orders by the phone's digit string after stripping all
	// non-digit characters.
	SortByPhone
)

// Sort returns a new slice ordered by the given key. Descending is exactly
// the reverse of ascending.
func Sort(contacts []models.Contact, key SortKey, descending bool) []models.Contact {
	out := append([]models.Contact(nil), contacts...)

	switch key {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByPhone:
		sort.SliceStable(out, func(i, j int) bool {
			return phoneDigits(out[i].Phone) < phoneDigits(out[j].Phone)
		})
	}

	if descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// phoneDigits strips everything but digits, so "+90 535 070 24 94" compares
// as "905350702494".
func phoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripSpace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
