package prototype

import (
	"protoparts/internal/domain"
	"protoparts/internal/domain/filter"
)

// Filter and sort field names.
const (
	FieldPrototypeSetID = "prototypeSetId"
	FieldPartTypeCode   = "partTypeCode"
	FieldPartTypeTitle  = "partTypeTitle"
	FieldIndex          = "index"
	FieldComment        = "comment"
	FieldOwner          = "owner"
)

// ListQuery is the prototypes list request.
type ListQuery struct {
	domain.PageQuery
	domain.AuditQuery

	PrototypeSetIDs []int64  `form:"prototypeSetIds" validate:"omitempty,dive,required"`
	PartTypeCodes   []string `form:"partTypeCodes" validate:"omitempty,dive,required"`
	PartTypeTitles  []string `form:"partTypeTitles" validate:"omitempty,dive,required"`
	Indexes         []int    `form:"indexes" validate:"omitempty,dive,required"`
	Owners          []int64  `form:"owners" validate:"omitempty,dive,required"`
	Search          *string  `form:"search" validate:"omitempty,max=200"`
}

// Filter translates the request into storage-independent criteria.
func (q ListQuery) Filter() domain.ListFilter {
	criteria := append(q.AuditQuery.Criteria(),
		filter.In(FieldPrototypeSetID, q.PrototypeSetIDs),
		filter.In(FieldPartTypeCode, q.PartTypeCodes),
		filter.In(FieldPartTypeTitle, q.PartTypeTitles),
		filter.In(FieldIndex, q.Indexes),
		filter.In(FieldOwner, q.Owners),
		filter.Search(FieldComment, q.Search),
	)
	return q.PageQuery.ListFilter(criteria...)
}

// UpdateCommand changes the editable fields of a prototype. Nil fields are kept.
type UpdateCommand struct {
	Comment *string `json:"comment" validate:"omitempty,max=512"`
	OwnerID *int64  `json:"ownerId" validate:"omitempty,gt=0"`
}
