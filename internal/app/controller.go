// Package app owns the client's application state and orchestrates the
// form-driven flows. The Controller holds the contact store and the tag
// selection explicitly and hands snapshots to the view layer; nothing in
// the client reaches for ambient state.
//
// Every flow follows the same discipline: collect and validate input first,
// then talk to the server, and mutate the store only after the server
// confirmed the operation. Cancelling any prompt aborts the whole flow
// before a single network call is made.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ekarslan/rolodex/internal/api"
	"github.com/ekarslan/rolodex/internal/models"
	"github.com/ekarslan/rolodex/internal/store"
	"github.com/ekarslan/rolodex/internal/tags"
	"github.com/ekarslan/rolodex/internal/validate"
	"github.com/ekarslan/rolodex/internal/view"
)

// ErrCancelled is returned when the user abandons a flow at a prompt or a
// confirmation. No network call has been made for the flow when this is
// returned from the input phase.
var ErrCancelled = errors.New("operation cancelled")

// Controller drives all user-initiated operations against one backend and
// one in-memory contact store.
type Controller struct {
	client   *api.Client
	contacts *store.ContactStore
	engine   *tags.Engine
	sel      view.Selection
	prompter Prompter
}

// NewController wires a controller around an authenticated API client.
func NewController(client *api.Client, prompter Prompter) *Controller {
	return &Controller{
		client:   client,
		contacts: store.New(),
		engine:   tags.NewEngine(client),
		sel:      view.NewSelection(),
		prompter: prompter,
	}
}

// Reload replaces the store with the server's current snapshot.
func (c *Controller) Reload(ctx context.Context) error {
	contacts, err := c.client.ListContacts(ctx)
	if err != nil {
		return err
	}
	c.contacts.ReplaceAll(contacts)
	slog.Debug("contacts reloaded", "count", len(contacts))
	return nil
}

// Contacts returns the store's current order.
func (c *Controller) Contacts() []models.Contact {
	return c.contacts.Contacts()
}

// Search projects the store through a free-text query.
func (c *Controller) Search(query string) []models.Contact {
	return view.Search(c.contacts.Contacts(), query)
}

// ToggleTag flips a tag in the selection and returns the filtered view.
func (c *Controller) ToggleTag(tagID string) []models.Contact {
	c.sel.Toggle(tagID)
	return c.FilteredBySelection()
}

// FilteredBySelection projects the store through the current selection.
func (c *Controller) FilteredBySelection() []models.Contact {
	return view.FilterBySelection(c.contacts.Contacts(), c.sel)
}

// Sorted reloads the full list from the server, installs it, and returns it
// ordered by the given key. Sorting always works on fresh data and ignores
// any active filter.
func (c *Controller) Sorted(ctx context.Context, key view.SortKey, descending bool) ([]models.Contact, error) {
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	sorted := view.Sort(c.contacts.Contacts(), key, descending)
	c.contacts.ReplaceAll(sorted)
	return sorted, nil
}

// contactFields is the prompt sequence shared by add and edit.
func contactFields(current *models.Contact) []FormField {
	suffix := func(v string) string {
		if current == nil {
			return ""
		}
		if v == "" {
			v = "empty"
		}
		return fmt.Sprintf(" (current: %s)", v)
	}
	var name, phone, email, address string
	if current != nil {
		name, phone, email, address = current.Name, current.Phone, current.Email, current.Address
	}
	return []FormField{
		{Label: "Name (letters and spaces)" + suffix(name), Kind: validate.FieldName},
		{Label: "Phone (+90 123 456 78 90)" + suffix(phone), Kind: validate.FieldPhone},
		{Label: "Email (someone@example.com)" + suffix(email), Kind: validate.FieldEmail},
		{Label: "Address" + suffix(address), Kind: validate.FieldAddress},
	}
}

// collectTagRefs prompts for a comma-separated tag-name list and resolves
// it against the server's tag list, re-prompting while unknown names
// remain. An empty input resolves to no tags.
func (c *Controller) collectTagRefs(ctx context.Context, label string) ([]models.TagRef, error) {
	tagList, err := c.client.ListTags(ctx)
	if err != nil {
		return nil, err
	}

	for {
		input, ok := c.prompter.Prompt(label)
		if !ok {
			return nil, ErrCancelled
		}
		refs, err := tags.Resolve(input, tagList)
		if err != nil {
			c.prompter.Notify(err.Error() + "; please try again")
			continue
		}
		return refs, nil
	}
}

// AddContact runs the create flow: validated prompts, tag resolution, one
// create call, then the concurrent assignment batch. The contact is pushed
// into the store only after the create and every assignment succeeded.
func (c *Controller) AddContact(ctx context.Context) error {
	form := NewForm(c.prompter)
	values, ok := form.Collect(contactFields(nil))
	if !ok {
		return ErrCancelled
	}
	name, phone, email, address := values[0], values[1], values[2], values[3]

	refs, err := c.collectTagRefs(ctx, "Tags (comma-separated names, empty for none)")
	if err != nil {
		return err
	}

	created, err := c.client.CreateContact(ctx, name, phone, email, address)
	if err != nil {
		return err
	}
	slog.Info("contact created", "contact_id", created.ID, "name", created.Name)

	assigned, err := c.engine.AssignAll(ctx, created.ID, refs)
	if err != nil {
		// The created contact stays server-side with whatever subset of
		// tags stuck; the store is left for the next reload to heal.
		return fmt.Errorf("contact created but tagging failed: %w", err)
	}

	created.Tags = assigned
	c.contacts.Append(*created)
	form.MarkDone()
	c.prompter.Notify("contact and tags added")
	return nil
}

// EditContact runs the edit flow for the contact with the given id:
// validated prompts seeded with current values, tag reconciliation, the
// update call, the assignment batch, then a full reload so the store
// mirrors the server exactly.
func (c *Controller) EditContact(ctx context.Context, contactID string) error {
	current := c.contacts.Get(contactID)
	if current == nil {
		return fmt.Errorf("no contact with id %s", contactID)
	}

	form := NewForm(c.prompter)
	values, ok := form.Collect(contactFields(current))
	if !ok {
		return ErrCancelled
	}
	name, phone, email, address := values[0], values[1], values[2], values[3]

	refs, err := c.collectTagRefs(ctx, "Tags (comma-separated names, empty to clear)")
	if err != nil {
		return err
	}

	if err := c.client.UpdateContact(ctx, contactID, name, phone, email, address); err != nil {
		return err
	}
	slog.Info("contact updated", "contact_id", contactID)

	if _, err := c.engine.AssignAll(ctx, contactID, refs); err != nil {
		return fmt.Errorf("contact updated but tagging failed: %w", err)
	}

	if err := c.Reload(ctx); err != nil {
		return err
	}
	form.MarkDone()
	c.prompter.Notify("contact and tags updated")
	return nil
}

// DeleteContact confirms and runs the delete flow. The store entry is
// removed only after the server confirmed the deletion; a server-side
// error (for example the contact is already gone) leaves the store
// unchanged.
func (c *Controller) DeleteContact(ctx context.Context, contactID string) error {
	current := c.contacts.Get(contactID)
	if current == nil {
		return fmt.Errorf("no contact with id %s", contactID)
	}
	if !c.prompter.Confirm(fmt.Sprintf("Delete %s?", current.Name)) {
		return ErrCancelled
	}

	if err := c.client.DeleteContact(ctx, contactID); err != nil {
		return err
	}
	c.contacts.RemoveByID(contactID)
	slog.Info("contact deleted", "contact_id", contactID)
	c.prompter.Notify("contact deleted")
	return nil
}

// UnassignTag confirms and removes one tag from one contact, updating the
// embedded refs after server confirmation.
func (c *Controller) UnassignTag(ctx context.Context, contactID, tagID string) error {
	current := c.contacts.Get(contactID)
	if current == nil {
		return fmt.Errorf("no contact with id %s", contactID)
	}
	var tagName string
	for _, ref := range current.Tags {
		if ref.TagID == tagID {
			tagName = ref.TagName
		}
	}
	if !c.prompter.Confirm(fmt.Sprintf("Remove tag %q from %s?", tagName, current.Name)) {
		return ErrCancelled
	}

	remaining, err := c.engine.Unassign(ctx, current, tagID)
	if err != nil {
		return err
	}
	c.contacts.SetTags(contactID, remaining)
	return nil
}

// CreateTag prompts for a tag name and creates it server-side.
func (c *Controller) CreateTag(ctx context.Context) (*models.Tag, error) {
	for {
		name, ok := c.prompter.Prompt("New tag name")
		if !ok {
			return nil, ErrCancelled
		}
		name = strings.TrimSpace(name)
		if name == "" {
			c.prompter.Notify("tag name cannot be empty")
			continue
		}
		tag, err := c.client.CreateTag(ctx, name)
		if err != nil {
			return nil, err
		}
		slog.Info("tag created", "tag_id", tag.ID, "tag_name", tag.Name)
		return tag, nil
	}
}

// DeleteTag confirms and deletes a tag. Contacts still holding a ref keep
// it locally until the next reload; the server drops the assignments with
// the tag.
func (c *Controller) DeleteTag(ctx context.Context, tag models.Tag) error {
	if !c.prompter.Confirm(fmt.Sprintf("Delete tag %q?", tag.Name)) {
		return ErrCancelled
	}
	if err := c.client.DeleteTag(ctx, tag.ID); err != nil {
		return err
	}
	delete(c.sel, tag.ID)
	slog.Info("tag deleted", "tag_id", tag.ID)
	return nil
}

// Tags fetches the user's tag list.
func (c *Controller) Tags(ctx context.Context) ([]models.Tag, error) {
	return c.client.ListTags(ctx)
}
