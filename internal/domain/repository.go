// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"protoparts/internal/core/entity"
	"protoparts/internal/domain/filter"
)

// --- Filter & Pagination ---

// ListFilter is a storage-independent list request.
type ListFilter struct {
	// Items are ANDed restrictions keyed by API field name
	Items []filter.Item

	// Sort is resolved through the repository's sort allow-list
	Sort filter.Sort

	Page filter.Page
}

// ListResult contains one page of results.
type ListResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
}

// TotalPages is derived from the total row count and page size.
func (r ListResult[T]) TotalPages() int {
	if r.PageSize <= 0 {
		return 0
	}
	return int((r.TotalCount + int64(r.PageSize) - 1) / int64(r.PageSize))
}

// --- Repository Interfaces ---

// Lister is implemented by repositories that serve filtered list queries.
type Lister[V any] interface {
	List(ctx context.Context, f ListFilter) (ListResult[V], error)
}

// ViewRepository reads denormalized views with expanded audit identities.
type ViewRepository[V any] interface {
	Lister[V]
	GetView(ctx context.Context, id int64) (V, error)
}

// LifecycleRepository locks and persists the audit columns of an entity.
type LifecycleRepository[T entity.Auditable] interface {
	// GetForUpdate loads the row and locks it until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (T, error)

	// SaveAudit writes modified/deleted audit columns back.
	SaveAudit(ctx context.Context, a *entity.Audit) error
}
