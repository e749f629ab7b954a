package domain

import (
	"time"

	"protoparts/internal/domain/filter"
)

// Audit field names shared by every scrappable entity.
const (
	FieldID         = "id"
	FieldCreatedBy  = "createdBy"
	FieldModifiedBy = "modifiedBy"
	FieldDeletedBy  = "deletedBy"
	FieldCreatedAt  = "createdAt"
	FieldModifiedAt = "modifiedAt"
	FieldDeletedAt  = "deletedAt"
)

// AuditQuery holds the list filters every scrappable entity accepts.
type AuditQuery struct {
	IsActive *bool `form:"isActive"`

	CreatedBy  []int64 `form:"createdBy" validate:"omitempty,dive,required"`
	ModifiedBy []int64 `form:"modifiedBy" validate:"omitempty,dive,required"`
	DeletedBy  []int64 `form:"deletedBy" validate:"omitempty,dive,required"`

	CreatedAtLowerLimit  *time.Time `form:"createdAtLowerLimit"`
	CreatedAtUpperLimit  *time.Time `form:"createdAtUpperLimit"`
	ModifiedAtLowerLimit *time.Time `form:"modifiedAtLowerLimit"`
	ModifiedAtUpperLimit *time.Time `form:"modifiedAtUpperLimit"`
	DeletedAtLowerLimit  *time.Time `form:"deletedAtLowerLimit"`
	DeletedAtUpperLimit  *time.Time `form:"deletedAtUpperLimit"`
}

// Criteria returns the audit restrictions.
func (q AuditQuery) Criteria() []filter.Criterion {
	return []filter.Criterion{
		filter.Active(FieldDeletedAt, q.IsActive),
		filter.In(FieldCreatedBy, q.CreatedBy),
		filter.In(FieldModifiedBy, q.ModifiedBy),
		filter.In(FieldDeletedBy, q.DeletedBy),
		filter.AtLeast(FieldCreatedAt, q.CreatedAtLowerLimit),
		filter.AtMost(FieldCreatedAt, q.CreatedAtUpperLimit),
		filter.AtLeast(FieldModifiedAt, q.ModifiedAtLowerLimit),
		filter.AtMost(FieldModifiedAt, q.ModifiedAtUpperLimit),
		filter.AtLeast(FieldDeletedAt, q.DeletedAtLowerLimit),
		filter.AtMost(FieldDeletedAt, q.DeletedAtUpperLimit),
	}
}

// PageQuery holds the paging and sorting parameters of a list request.
type PageQuery struct {
	Page          *int   `form:"page"`
	PageSize      *int   `form:"pageSize"`
	SortBy        string `form:"sortBy"`
	SortDirection string `form:"sortDirection"`
}

// ListFilter combines paging with the given criteria.
func (q PageQuery) ListFilter(criteria ...filter.Criterion) ListFilter {
	return ListFilter{
		Items: filter.Build(criteria...),
		Sort:  filter.NewSort(q.SortBy, q.SortDirection),
		Page:  filter.NewPage(q.Page, q.PageSize),
	}
}
