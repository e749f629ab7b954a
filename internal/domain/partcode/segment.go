// Package partcode implements the structured part-code editor: the split,
// focus and compose rules behind the eight linked input fields of a code
// shaped OO.PP.TT.YY.LL.UUUU.GG_NNN.
//
// Everything here is pure and synchronous so any client (HTTP, CLI, UI) can
// drive it with its own events.
package partcode

// Segment describes one positional field of a part code.
type Segment struct {
	Name      string
	MaxLength int
	// Delimiter follows the segment in a composed code. Empty for the last one.
	Delimiter string
}

const (
	Outlet = iota
	ProductGroup
	PartType
	EvidenceYear
	Location
	UniqueIdentifier
	GateLevel
	PrototypeNumber

	SegmentCount
)

// SpecialDelimiter only appears between gate level and prototype number. Its
// presence in an input marks a pasted multi-segment code.
const SpecialDelimiter = "_"

// Layout is the ordered segment table.
var Layout = [SegmentCount]Segment{
	Outlet:           {Name: "outlet", MaxLength: 2, Delimiter: "."},
	ProductGroup:     {Name: "productGroup", MaxLength: 2, Delimiter: "."},
	PartType:         {Name: "partType", MaxLength: 2, Delimiter: "."},
	EvidenceYear:     {Name: "evidenceYear", MaxLength: 2, Delimiter: "."},
	Location:         {Name: "location", MaxLength: 2, Delimiter: "."},
	UniqueIdentifier: {Name: "uniqueIdentifier", MaxLength: 4, Delimiter: "."},
	GateLevel:        {Name: "gateLevel", MaxLength: 2, Delimiter: SpecialDelimiter},
	PrototypeNumber:  {Name: "prototypeNumber", MaxLength: 3},
}

const last = SegmentCount - 1
