package filter

import "time"

// Criterion produces a restriction or nothing. A nil Criterion and a Criterion
// returning ok=false are both "no restriction".
type Criterion func() (Item, bool)

// Scalar covers the value types list and range filters are built from.
type Scalar interface {
	~string | ~int | ~int64 | ~bool | time.Time
}

// Build folds criteria into the restrictions that apply. All of them are ANDed.
func Build(criteria ...Criterion) []Item {
	items := make([]Item, 0, len(criteria))
	for _, c := range criteria {
		if c == nil {
			continue
		}
		if item, ok := c(); ok {
			items = append(items, item)
		}
	}
	return items
}

// In restricts field to the given values. Nil or empty values apply nothing.
func In[T Scalar](field string, values []T) Criterion {
	return func() (Item, bool) {
		if len(values) == 0 {
			return Item{}, false
		}
		return Item{Field: field, Operator: InList, Value: values}, true
	}
}

// Is restricts field to a single value when one is supplied.
func Is[T Scalar](field string, value *T) Criterion {
	return func() (Item, bool) {
		if value == nil {
			return Item{}, false
		}
		return Item{Field: field, Operator: Equal, Value: *value}, true
	}
}

// AtLeast is an inclusive lower bound.
func AtLeast[T Scalar](field string, bound *T) Criterion {
	return func() (Item, bool) {
		if bound == nil {
			return Item{}, false
		}
		return Item{Field: field, Operator: GreaterOrEqual, Value: *bound}, true
	}
}

// AtMost is an inclusive upper bound.
func AtMost[T Scalar](field string, bound *T) Criterion {
	return func() (Item, bool) {
		if bound == nil {
			return Item{}, false
		}
		return Item{Field: field, Operator: LessOrEqual, Value: *bound}, true
	}
}

// Search is a case-insensitive substring match. Blank text applies nothing.
func Search(field string, text *string) Criterion {
	return func() (Item, bool) {
		if text == nil || *text == "" {
			return Item{}, false
		}
		return Item{Field: field, Operator: Contains, Value: *text}, true
	}
}

// Active maps the isActive flag onto the nullable deletion timestamp:
// true keeps rows with NULL, false keeps rows with a value.
func Active(field string, isActive *bool) Criterion {
	return func() (Item, bool) {
		if isActive == nil {
			return Item{}, false
		}
		if *isActive {
			return Item{Field: field, Operator: IsNull}, true
		}
		return Item{Field: field, Operator: IsNotNull}, true
	}
}
