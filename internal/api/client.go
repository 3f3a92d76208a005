// Package api is the HTTP client for the Rolodex backend. It exposes one
// method per logical operation and normalizes every failure mode into a
// single *Error: a non-2xx status is a hard failure carrying the status code
// and raw body; an error field in a decoded 2xx body is the authoritative
// failure signal even though the transport succeeded; a malformed body is a
// decode failure. Payloads are returned unchanged on success.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ekarslan/rolodex/internal/models"
)

// Client talks to one Rolodex backend on behalf of one user. UserID scopes
// every contact and tag request via the URL path; Token, when set, is sent
// as a Bearer header.
type Client struct {
	BaseURL string
	UserID  string
	Token   string

	httpClient *http.Client
}

// New creates a client for the backend at baseURL. The user is attached
// after login via SetSession.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SetSession attaches the authenticated user and token to the client.
func (c *Client) SetSession(userID, token string) {
	c.UserID = userID
	c.Token = token
}

// envelope carries the application-level status fields shared by every
// backend response shape.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do issues one request and decodes the body into out (when non-nil) after
// the shared success/error inspection.
func (c *Client) do(ctx context.Context, op, method, path string, reqBody, out any) error {
	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return &Error{Op: op, Message: fmt.Sprintf("encode request: %v", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return &Error{Op: op, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Prefer the application message when the error body decodes.
		var env envelope
		if json.Unmarshal(raw, &env) == nil {
			if env.Error != "" {
				return &Error{Op: op, StatusCode: resp.StatusCode, Message: env.Error}
			}
			if env.Message != "" {
				return &Error{Op: op, StatusCode: resp.StatusCode, Message: env.Message}
			}
		}
		return &Error{Op: op, StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &Error{Op: op, StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	if env.Error != "" {
		return &Error{Op: op, StatusCode: resp.StatusCode, Message: env.Error}
	}
	if env.Status == "error" {
		return &Error{Op: op, StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Op: op, StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
		}
	}
	return nil
}

// Session holds the result of a successful login.
type Session struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// Login authenticates and returns the session. The client keeps the
// session for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	var resp Session
	err := c.do(ctx, "login", http.MethodPost, "/login",
		map[string]string{"username": username, "password": password}, &resp)
	if err != nil {
		return nil, err
	}
	c.SetSession(resp.UserID, resp.Token)
	return &resp, nil
}

// Register creates a new account. It does not log in.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, "register", http.MethodPost, "/register",
		map[string]string{"username": username, "password": password}, nil)
}

// ListContacts fetches the user's full contact list with embedded tag refs.
func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var resp struct {
		Contacts []models.Contact `json:"contacts"`
	}
	err := c.do(ctx, "list contacts", http.MethodGet, "/contacts/"+c.UserID, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Contacts, nil
}

// CreateContact creates a contact with no tags and returns the server's
// record, including the assigned identifier.
func (c *Client) CreateContact(ctx context.Context, name, phone, email, address string) (*models.Contact, error) {
	var resp struct {
		Contact models.Contact `json:"contact"`
	}
	err := c.do(ctx, "create contact", http.MethodPost, "/contacts/create/"+c.UserID,
		map[string]string{"name": name, "phone": phone, "email": email, "address": address}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Contact, nil
}

// UpdateContact overwrites the basic fields of an existing contact. Tag
// assignments are managed separately via AssignTag/UnassignTag.
func (c *Client) UpdateContact(ctx context.Context, contactID, name, phone, email, address string) error {
	return c.do(ctx, "update contact", http.MethodPost, "/contacts/update/"+c.UserID,
		map[string]string{
			"contact_id": contactID,
			"name":       name,
			"phone":      phone,
			"email":      email,
			"address":    address,
		}, nil)
}

// DeleteContact removes a contact and its tag assignments server-side.
func (c *Client) DeleteContact(ctx context.Context, contactID string) error {
	return c.do(ctx, "delete contact", http.MethodDelete, "/contacts/"+c.UserID,
		map[string]string{"contact_id": contactID}, nil)
}

// ListTags fetches the user's full tag list.
func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	var resp struct {
		Tags []models.Tag `json:"tags"`
	}
	err := c.do(ctx, "list tags", http.MethodGet, "/tags/"+c.UserID, nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Tags, nil
}

// CreateTag creates a tag and returns the server's record.
func (c *Client) CreateTag(ctx context.Context, name string) (*models.Tag, error) {
	var resp struct {
		Tag models.Tag `json:"tag"`
	}
	err := c.do(ctx, "create tag", http.MethodPost, "/tags/create/"+c.UserID,
		map[string]string{"tag_name": name}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Tag, nil
}

// DeleteTag removes a tag and all of its assignments server-side.
func (c *Client) DeleteTag(ctx context.Context, tagID string) error {
	return c.do(ctx, "delete tag", http.MethodDelete, "/tags/"+c.UserID,
		map[string]string{"tag_id": tagID}, nil)
}

// AssignTag assigns one tag to one contact.
func (c *Client) AssignTag(ctx context.Context, contactID, tagID string) error {
	return c.do(ctx, "assign tag", http.MethodPost, "/contacts/assign_tag/"+c.UserID,
		map[string]string{"contact_id": contactID, "tag_id": tagID}, nil)
}

// UnassignTag removes one tag from one contact.
func (c *Client) UnassignTag(ctx context.Context, contactID, tagID string) error {
	return c.do(ctx, "unassign tag", http.MethodPost, "/contacts/unassign_tag/"+c.UserID,
		map[string]string{"contact_id": contactID, "tag_id": tagID}, nil)
}
