package prototypeset

import (
	"protoparts/internal/domain"
	"protoparts/internal/domain/filter"
)

// FieldSetIdentifier is the set identifier filter and sort field.
const FieldSetIdentifier = "setIdentifier"

// ListQuery is the prototype sets list request.
type ListQuery struct {
	domain.PageQuery
	domain.AuditQuery
	domain.ClassificationQuery

	SetIdentifiers []string `form:"setIdentifiers" validate:"omitempty,dive,required"`
	Search         *string  `form:"search" validate:"omitempty,max=200"`
}

// Filter translates the request into storage-independent criteria.
func (q ListQuery) Filter() domain.ListFilter {
	criteria := append(q.AuditQuery.Criteria(), q.ClassificationQuery.Criteria()...)
	criteria = append(criteria,
		filter.In(FieldSetIdentifier, q.SetIdentifiers),
		filter.Search(domain.FieldProject, q.Search),
	)
	return q.PageQuery.ListFilter(criteria...)
}

// PrototypeGroup describes consecutive prototypes of one part type created with the set.
type PrototypeGroup struct {
	PartTypeCode  string `json:"partTypeCode" validate:"required,len=2"`
	PartTypeTitle string `json:"partTypeTitle" validate:"required,max=100"`
	Count         int    `json:"count" validate:"gte=1,lte=999"`
	OwnerID       int64  `json:"ownerId" validate:"gt=0"`
	Comment       string `json:"comment" validate:"max=512"`
}

// CreateCommand registers a set together with its prototypes.
type CreateCommand struct {
	domain.Classification
	Prototypes []PrototypeGroup `json:"prototypes" validate:"required,min=1,dive"`
}
