// Package entity holds the audit model shared by every mutable entity.
package entity

import (
	"context"
	"time"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	Validate(ctx context.Context) error
}

// Audit contains the identity and audit columns of a mutable entity.
// DeletedAt and DeletedByID are either both set or both nil.
type Audit struct {
	ID int64 `db:"id" json:"id"`

	CreatedByID  int64     `db:"created_by_id" json:"createdById"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	ModifiedByID int64     `db:"modified_by_id" json:"modifiedById"`
	ModifiedAt   time.Time `db:"modified_at" json:"modifiedAt"`

	DeletedByID *int64     `db:"deleted_by_id" json:"deletedById"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deletedAt"`
}

// Stamp fills the creation fields.
func (a *Audit) Stamp(actorID int64, at time.Time) {
	at = at.UTC()
	a.CreatedByID = actorID
	a.CreatedAt = at
	a.ModifiedByID = actorID
	a.ModifiedAt = at
}

// Touch records a modification.
func (a *Audit) Touch(actorID int64, at time.Time) {
	a.ModifiedByID = actorID
	a.ModifiedAt = at.UTC()
}

// IsActive reports whether the entity is not scrapped.
func (a *Audit) IsActive() bool {
	return a.DeletedAt == nil
}

// Scrap marks the entity deleted. Returns false if it already was.
func (a *Audit) Scrap(actorID int64, at time.Time) bool {
	if !a.IsActive() {
		return false
	}
	at = at.UTC()
	actor := actorID
	a.DeletedAt = &at
	a.DeletedByID = &actor
	a.Touch(actorID, at)
	return true
}

// Reactivate clears the deletion marker. Returns false if the entity is active.
func (a *Audit) Reactivate(actorID int64, at time.Time) bool {
	if a.IsActive() {
		return false
	}
	a.DeletedAt = nil
	a.DeletedByID = nil
	a.Touch(actorID, at)
	return true
}

// GetAudit gives generic code access to the embedded audit fields.
func (a *Audit) GetAudit() *Audit {
	return a
}

// Auditable is implemented by every entity embedding Audit.
type Auditable interface {
	GetAudit() *Audit
}
