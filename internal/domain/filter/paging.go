package filter

import "strings"

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 20
)

// Page is a normalized page request.
type Page struct {
	Number int
	Size   int
}

// NewPage clamps the requested page: a page below 1 becomes 1, an absent size
// becomes DefaultPageSize and a supplied size is bounded to [1, MaxPageSize].
func NewPage(number, size *int) Page {
	p := Page{Number: DefaultPage, Size: DefaultPageSize}
	if number != nil && *number > 1 {
		p.Number = *number
	}
	if size != nil {
		switch {
		case *size < 1:
			p.Size = 1
		case *size > MaxPageSize:
			p.Size = MaxPageSize
		default:
			p.Size = *size
		}
	}
	return p
}

// Offset returns the number of rows preceding the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// ParseDirection accepts asc/desc in any case. Anything else is ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Desc
	}
	return Asc
}

// Sort is a requested ordering by an API field name.
type Sort struct {
	Field     string
	Direction Direction
}

// NewSort builds a Sort from raw query values.
func NewSort(field, direction string) Sort {
	return Sort{Field: strings.TrimSpace(field), Direction: ParseDirection(direction)}
}
