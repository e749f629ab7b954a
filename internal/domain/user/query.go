package user

import (
	"protoparts/internal/domain"
	"protoparts/internal/domain/filter"
)

// Filter and sort field names.
const (
	FieldID             = "id"
	FieldUsername       = "username"
	FieldEmail          = "email"
	FieldName           = "name"
	FieldServiceAccount = "serviceAccount"
	FieldCreatedAt      = "createdAt"
)

// ListQuery is the users list request.
type ListQuery struct {
	domain.PageQuery

	IDs            []int64  `form:"ids" validate:"omitempty,dive,required"`
	Usernames      []string `form:"usernames" validate:"omitempty,dive,required"`
	Emails         []string `form:"emails" validate:"omitempty,dive,required"`
	Names          []string `form:"names" validate:"omitempty,dive,required"`
	ServiceAccount *bool    `form:"serviceAccount"`
	Search         *string  `form:"search" validate:"omitempty,max=200"`
}

// Filter translates the request into storage-independent criteria.
func (q ListQuery) Filter() domain.ListFilter {
	return q.PageQuery.ListFilter(
		filter.In(FieldID, q.IDs),
		filter.In(FieldUsername, q.Usernames),
		filter.In(FieldEmail, q.Emails),
		filter.In(FieldName, q.Names),
		filter.Is(FieldServiceAccount, q.ServiceAccount),
		filter.Search(FieldName, q.Search),
	)
}
