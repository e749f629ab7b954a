package catalog_repo

import (
	"context"

	"protoparts/internal/domain/prototype"
	"protoparts/internal/infrastructure/storage/postgres"
)

const prototypeTable = "prototypes"

// PrototypeRepo implements prototype.Repository.
type PrototypeRepo struct {
	*BaseRepo[prototype.Prototype, prototype.View]
}

// NewPrototypeRepo creates a new prototype repository.
// The read model joins the owning set for the part code segments.
func NewPrototypeRepo(txManager *postgres.TxManager) *PrototypeRepo {
	return &PrototypeRepo{
		BaseRepo: NewBaseRepo[prototype.Prototype, prototype.View](txManager, Config{
			Table:   prototypeTable,
			Entity:  "prototype",
			Columns: postgres.ExtractDBColumns[prototype.Prototype](),
			ViewColumns: concat(
				IdentityColumns("u_owner", "owner"),
				[]string{
					`s.outlet_code AS "set.outlet_code"`,
					`s.product_group_code AS "set.product_group_code"`,
					`s.evidence_year_code AS "set.evidence_year_code"`,
					`s.location_code AS "set.location_code"`,
					`s.set_identifier AS "set.set_identifier"`,
					`s.gate_level_code AS "set.gate_level_code"`,
				},
			),
			Joins: []string{
				IdentityJoin("u_owner", "owner_id"),
				prototypeSetTable + " s ON s.id = " + col("prototype_set_id"),
			},
			Fields: Merge(AuditFields(), Fields{
				prototype.FieldPrototypeSetID: col("prototype_set_id"),
				prototype.FieldPartTypeCode:   col("part_type_code"),
				prototype.FieldPartTypeTitle:  col("part_type_title"),
				prototype.FieldIndex:          col("index"),
				prototype.FieldComment:        col("comment"),
				prototype.FieldOwner:          col("owner_id"),
			}),
			WithAuditTrail: true,
		}),
	}
}

// Create inserts the prototype and assigns its ID.
func (r *PrototypeRepo) Create(ctx context.Context, p *prototype.Prototype) error {
	id, err := r.Insert(ctx, p)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

// Update writes the editable columns and the modification stamp.
func (r *PrototypeRepo) Update(ctx context.Context, p *prototype.Prototype) error {
	return r.BaseRepo.Update(ctx, p.ID, p)
}
