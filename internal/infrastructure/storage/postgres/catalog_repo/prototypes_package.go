package catalog_repo

import (
	"context"

	"protoparts/internal/domain/prototypespackage"
	"protoparts/internal/infrastructure/storage/postgres"
)

const prototypesPackageTable = "prototypes_packages"

// PrototypesPackageRepo implements prototypespackage.Repository.
type PrototypesPackageRepo struct {
	*BaseRepo[prototypespackage.PrototypesPackage, prototypespackage.View]
}

// NewPrototypesPackageRepo creates a new prototypes package repository.
func NewPrototypesPackageRepo(txManager *postgres.TxManager) *PrototypesPackageRepo {
	return &PrototypesPackageRepo{
		BaseRepo: NewBaseRepo[prototypespackage.PrototypesPackage, prototypespackage.View](txManager, Config{
			Table:       prototypesPackageTable,
			Entity:      "prototypes package",
			Columns:     postgres.ExtractDBColumns[prototypespackage.PrototypesPackage](),
			ViewColumns: IdentityColumns("u_owner", "owner"),
			Joins:       []string{IdentityJoin("u_owner", "owner_id")},
			Fields: Merge(AuditFields(), ClassificationFields(), Fields{
				prototypespackage.FieldPartTypeCode:  col("part_type_code"),
				prototypespackage.FieldPartTypeTitle: col("part_type_title"),
				prototypespackage.FieldIdentifier:    col("package_identifier"),
				prototypespackage.FieldInitialCount:  col("initial_count"),
				prototypespackage.FieldActualCount:   col("actual_count"),
				prototypespackage.FieldComment:       col("comment"),
				prototypespackage.FieldOwner:         col("owner_id"),
			}),
			WithAuditTrail: true,
		}),
	}
}

// Create inserts the package and assigns its ID.
func (r *PrototypesPackageRepo) Create(ctx context.Context, p *prototypespackage.PrototypesPackage) error {
	id, err := r.Insert(ctx, p)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}
