// Package models defines the core domain models for Rolodex.
//
// # Models
//
//   - User: a registered account; every contact and tag is scoped to one user
//   - Contact: a phone-book entry with an embedded, denormalized tag list
//   - Tag: a user-defined label, unique per user (case-insensitive)
//   - TagRef: the (id, name) snapshot of a Tag embedded in a Contact so the
//     client can render tags without a join
//
// # Design Principles
//
//  1. IDs are opaque strings assigned by the storage layer (UUID format);
//     the client never invents one.
//  2. Relationships use ID strings instead of pointers to avoid circular
//     references.
//  3. TagRefs are a read-side convenience; the contact_tags join table in
//     storage remains the source of truth.
package models
