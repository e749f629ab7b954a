// Package prototype provides individual prototype parts belonging to a set.
package prototype

import (
	"context"

	"protoparts/internal/core/apperror"
	"protoparts/internal/core/entity"
	"protoparts/internal/domain/partcode"
)

var _ entity.Validatable = (*Prototype)(nil)

// MaxIndex is the largest index the three-digit prototype number can carry.
const MaxIndex = 999

// Prototype is a single tracked part.
type Prototype struct {
	entity.Audit

	PrototypeSetID int64  `db:"prototype_set_id" json:"prototypeSetId"`
	PartTypeCode   string `db:"part_type_code" json:"partTypeCode"`
	PartTypeTitle  string `db:"part_type_title" json:"partTypeTitle"`
	Index          int    `db:"index" json:"index"`
	Comment        string `db:"comment" json:"comment"`
	OwnerID        int64  `db:"owner_id" json:"ownerId"`
}

// Validate checks the invariants of a prototype before it is stored.
func (p *Prototype) Validate(ctx context.Context) error {
	if p.PrototypeSetID <= 0 {
		return apperror.NewValidation("prototype set is required").WithDetail("field", "prototypeSetId")
	}
	if len(p.PartTypeCode) != 2 {
		return apperror.NewValidation("part type code must be two characters").WithDetail("field", "partTypeCode")
	}
	if p.Index < 1 || p.Index > MaxIndex {
		return apperror.NewValidation("index out of range").
			WithDetail("field", "index").
			WithDetail("max", MaxIndex)
	}
	if p.OwnerID <= 0 {
		return apperror.NewValidation("owner is required").WithDetail("field", "ownerId")
	}
	return nil
}

// SetCodes are the set columns a prototype's part code is composed of.
type SetCodes struct {
	OutletCode       string `db:"outlet_code"`
	ProductGroupCode string `db:"product_group_code"`
	EvidenceYearCode string `db:"evidence_year_code"`
	LocationCode     string `db:"location_code"`
	SetIdentifier    string `db:"set_identifier"`
	GateLevelCode    string `db:"gate_level_code"`
}

// View is the read model with expanded identities.
type View struct {
	Prototype
	entity.AuditTrail

	Owner entity.Identity `db:"owner"`
	Set   SetCodes        `db:"set"`
}

// PartCode composes the code printed on the part.
func (v View) PartCode() partcode.Value {
	return partcode.Value{
		Outlet:             v.Set.OutletCode,
		ProductGroup:       v.Set.ProductGroupCode,
		PartType:           v.PartTypeCode,
		EvidenceYear:       v.Set.EvidenceYearCode,
		Location:           v.Set.LocationCode,
		UniqueIdentifier:   v.Set.SetIdentifier,
		GateLevel:          v.Set.GateLevelCode,
		NumberOfPrototypes: v.Index,
	}
}
