// Package prototypespackage provides counted groups of prototypes used for
// shipment and handling.
package prototypespackage

import (
	"protoparts/internal/core/entity"
	"protoparts/internal/domain"
)

// PrototypesPackage is a counted group of prototypes sharing classification.
type PrototypesPackage struct {
	entity.Audit
	domain.Classification

	PartTypeCode  string `db:"part_type_code" json:"partTypeCode"`
	PartTypeTitle string `db:"part_type_title" json:"partTypeTitle"`
	Identifier    string `db:"package_identifier" json:"packageIdentifier"`
	InitialCount  int    `db:"initial_count" json:"initialCount"`
	ActualCount   int    `db:"actual_count" json:"actualCount"`
	Comment       string `db:"comment" json:"comment"`
	OwnerID       int64  `db:"owner_id" json:"ownerId"`
}

// View is the read model with expanded identities.
type View struct {
	PrototypesPackage
	entity.AuditTrail

	Owner entity.Identity `db:"owner"`
}
