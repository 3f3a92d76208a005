// Package service implements the contact and tag operations on top of a
// storage.Store, enforcing per-user ownership. Services return typed errors
// so the HTTP layer can map them onto the documented status codes without
// inspecting message text.
package service

import "errors"

var (
	// ErrNotOwned means the referenced record does not exist or belongs
	// to another user; the two cases are deliberately indistinguishable.
	ErrNotOwned = errors.New("record not found for user")

	// ErrAlreadyAssigned means the tag is already on the contact.
	ErrAlreadyAssigned = errors.New("tag already assigned to contact")

	// ErrNotAssigned means the tag is not on the contact.
	ErrNotAssigned = errors.New("tag not assigned to contact")

	// ErrDuplicateTag means the user already has a tag with that name.
	ErrDuplicateTag = errors.New("tag already exists")

	// ErrNoSuchUser means the user id in the request path is unknown.
	ErrNoSuchUser = errors.New("no such user")

	// ErrEmptyTagName means the tag name reduced to the empty string.
	ErrEmptyTagName = errors.New("tag name cannot be empty")
)
