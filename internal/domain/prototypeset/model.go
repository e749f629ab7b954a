// Package prototypeset provides prototype sets: classified groups of parts
// sharing one set identifier.
package prototypeset

import (
	"protoparts/internal/core/entity"
	"protoparts/internal/domain"
)

// PrototypeSet is a classified group of prototypes.
type PrototypeSet struct {
	entity.Audit
	domain.Classification

	// SetIdentifier is the four-digit unique identifier segment of the part code.
	SetIdentifier string `db:"set_identifier" json:"setIdentifier"`
}

// View is the read model with expanded identities.
type View struct {
	PrototypeSet
	entity.AuditTrail
}
