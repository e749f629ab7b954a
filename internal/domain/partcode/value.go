package partcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NoPrototypes marks a prototype number that is empty or not all digits.
const NoPrototypes = -1

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Value is the composed part code emitted after every change.
type Value struct {
	Outlet             string `json:"outlet"`
	ProductGroup       string `json:"productGroup"`
	PartType           string `json:"partType"`
	EvidenceYear       string `json:"evidenceYear"`
	Location           string `json:"location"`
	UniqueIdentifier   string `json:"uniqueIdentifier"`
	GateLevel          string `json:"gateLevel"`
	NumberOfPrototypes int    `json:"numberOfPrototypes"`
}

// Value composes the current segments.
func (s State) Value() Value {
	return Value{
		Outlet:             s.Values[Outlet],
		ProductGroup:       s.Values[ProductGroup],
		PartType:           s.Values[PartType],
		EvidenceYear:       s.Values[EvidenceYear],
		Location:           s.Values[Location],
		UniqueIdentifier:   s.Values[UniqueIdentifier],
		GateLevel:          s.Values[GateLevel],
		NumberOfPrototypes: ParseNumber(s.Values[PrototypeNumber]),
	}
}

// ParseNumber returns the integer value of a digits-only prototype number, or NoPrototypes.
func ParseNumber(s string) int {
	if !digitsOnly.MatchString(s) {
		return NoPrototypes
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return NoPrototypes
	}
	return n
}

// Parse splits a complete or partial code as if it were pasted into the first segment.
func Parse(code string) Value {
	return State{}.Input(Outlet, code).Value()
}

// String renders the canonical code. A missing prototype number leaves the
// last segment empty.
func (v Value) String() string {
	var b strings.Builder
	for i, part := range []string{
		v.Outlet, v.ProductGroup, v.PartType, v.EvidenceYear,
		v.Location, v.UniqueIdentifier, v.GateLevel,
	} {
		b.WriteString(part)
		b.WriteString(Layout[i].Delimiter)
	}
	if v.NumberOfPrototypes >= 0 {
		fmt.Fprintf(&b, "%03d", v.NumberOfPrototypes)
	}
	return b.String()
}
