// Package filter describes list restrictions independently of the storage layer.
package filter

// ComparisonType is the kind of comparison an Item applies.
type ComparisonType string

const (
	Equal          ComparisonType = "eq"
	LessOrEqual    ComparisonType = "lte"
	GreaterOrEqual ComparisonType = "gte"
	InList         ComparisonType = "in"
	Contains       ComparisonType = "contains" // ILIKE %val%

	IsNull    ComparisonType = "null"
	IsNotNull ComparisonType = "not_null"
)

// Item is a single restriction. Field is the API field name; repositories map
// it to a column through their allow-list.
type Item struct {
	Field    string         `json:"field"`
	Operator ComparisonType `json:"operator"`
	Value    any            `json:"value"`
}
