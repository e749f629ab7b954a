package prototypespackage

import (
	"protoparts/internal/domain"
	"protoparts/internal/domain/filter"
)

// Filter and sort field names.
const (
	FieldPartTypeCode  = "partTypeCode"
	FieldPartTypeTitle = "partTypeTitle"
	FieldIdentifier    = "packageIdentifier"
	FieldInitialCount  = "initialCount"
	FieldActualCount   = "actualCount"
	FieldComment       = "comment"
	FieldOwner         = "owner"
)

// ListQuery is the prototypes packages list request.
type ListQuery struct {
	domain.PageQuery
	domain.AuditQuery
	domain.ClassificationQuery

	PartTypeCodes          []string `form:"partTypeCodes" validate:"omitempty,dive,required"`
	PartTypeTitles         []string `form:"partTypeTitles" validate:"omitempty,dive,required"`
	Identifiers            []string `form:"packageIdentifiers" validate:"omitempty,dive,required"`
	Owners                 []int64  `form:"owners" validate:"omitempty,dive,required"`
	InitialCountLowerLimit *int     `form:"initialCountLowerLimit"`
	InitialCountUpperLimit *int     `form:"initialCountUpperLimit"`
	ActualCountLowerLimit  *int     `form:"actualCountLowerLimit"`
	ActualCountUpperLimit  *int     `form:"actualCountUpperLimit"`
	Search                 *string  `form:"search" validate:"omitempty,max=200"`
}

// Filter translates the request into storage-independent criteria.
func (q ListQuery) Filter() domain.ListFilter {
	criteria := append(q.AuditQuery.Criteria(), q.ClassificationQuery.Criteria()...)
	criteria = append(criteria,
		filter.In(FieldPartTypeCode, q.PartTypeCodes),
		filter.In(FieldPartTypeTitle, q.PartTypeTitles),
		filter.In(FieldIdentifier, q.Identifiers),
		filter.In(FieldOwner, q.Owners),
		filter.AtLeast(FieldInitialCount, q.InitialCountLowerLimit),
		filter.AtMost(FieldInitialCount, q.InitialCountUpperLimit),
		filter.AtLeast(FieldActualCount, q.ActualCountLowerLimit),
		filter.AtMost(FieldActualCount, q.ActualCountUpperLimit),
		filter.Search(FieldComment, q.Search),
	)
	return q.PageQuery.ListFilter(criteria...)
}

// CreateCommand registers a package. The actual count starts at the initial count.
type CreateCommand struct {
	domain.Classification

	PartTypeCode  string `json:"partTypeCode" validate:"required,len=2"`
	PartTypeTitle string `json:"partTypeTitle" validate:"required,max=100"`
	Identifier    string `json:"packageIdentifier" validate:"required,max=20"`
	InitialCount  int    `json:"initialCount" validate:"gte=1"`
	Comment       string `json:"comment" validate:"max=512"`
	OwnerID       int64  `json:"ownerId" validate:"gt=0"`
}
