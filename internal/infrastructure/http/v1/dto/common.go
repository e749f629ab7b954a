// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"protoparts/internal/core/entity"
	"protoparts/internal/domain"
)

// --- Pagination ---

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// ListResponse wraps one page of items with pagination.
type ListResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NewListResponse maps a domain page to its response.
func NewListResponse[V any, T any](r domain.ListResult[V], mapFn func(V) T) ListResponse[T] {
	items := make([]T, len(r.Items))
	for i, v := range r.Items {
		items[i] = mapFn(v)
	}
	return ListResponse[T]{
		Items: items,
		Pagination: Pagination{
			Page:       r.Page,
			PageSize:   r.PageSize,
			TotalCount: r.TotalCount,
			TotalPages: r.TotalPages(),
		},
	}
}

// --- Audit ---

// AuditResponse is the audit trail of a scrappable entity. Identities of a
// NULL reference serialize with every field null.
type AuditResponse struct {
	ID         int64           `json:"id"`
	IsActive   bool            `json:"isActive"`
	CreatedBy  entity.Identity `json:"createdBy"`
	CreatedAt  time.Time       `json:"createdAt"`
	ModifiedBy entity.Identity `json:"modifiedBy"`
	ModifiedAt time.Time       `json:"modifiedAt"`
	DeletedBy  entity.Identity `json:"deletedBy"`
	DeletedAt  *time.Time      `json:"deletedAt"`
}

// FromAudit combines audit columns with their expanded identities.
func FromAudit(a entity.Audit, t entity.AuditTrail) AuditResponse {
	return AuditResponse{
		ID:         a.ID,
		IsActive:   a.IsActive(),
		CreatedBy:  t.CreatedBy,
		CreatedAt:  a.CreatedAt,
		ModifiedBy: t.ModifiedBy,
		ModifiedAt: a.ModifiedAt,
		DeletedBy:  t.DeletedBy,
		DeletedAt:  a.DeletedAt,
	}
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
