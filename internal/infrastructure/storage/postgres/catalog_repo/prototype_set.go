package catalog_repo

import (
	"context"

	"protoparts/internal/domain/prototypeset"
	"protoparts/internal/infrastructure/storage/postgres"
)

const prototypeSetTable = "prototype_sets"

// PrototypeSetRepo implements prototypeset.Repository.
type PrototypeSetRepo struct {
	*BaseRepo[prototypeset.PrototypeSet, prototypeset.View]
}

// NewPrototypeSetRepo creates a new prototype set repository.
func NewPrototypeSetRepo(txManager *postgres.TxManager) *PrototypeSetRepo {
	return &PrototypeSetRepo{
		BaseRepo: NewBaseRepo[prototypeset.PrototypeSet, prototypeset.View](txManager, Config{
			Table:   prototypeSetTable,
			Entity:  "prototype set",
			Columns: postgres.ExtractDBColumns[prototypeset.PrototypeSet](),
			Fields: Merge(AuditFields(), ClassificationFields(), Fields{
				prototypeset.FieldSetIdentifier: col("set_identifier"),
			}),
			WithAuditTrail: true,
		}),
	}
}

// Create inserts the set and assigns its ID.
func (r *PrototypeSetRepo) Create(ctx context.Context, s *prototypeset.PrototypeSet) error {
	id, err := r.Insert(ctx, s)
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}
