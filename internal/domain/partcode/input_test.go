package partcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_FullPasteIntoFirstSegment(t *testing.T) {
	s := State{}.Input(Outlet, "10.30.00.20.FR.0000.30_001")

	assert.Equal(t, [SegmentCount]string{"10", "30", "00", "20", "FR", "0000", "30", "001"}, s.Values)
	assert.Equal(t, PrototypeNumber, s.Active)
	assert.Equal(t, Value{
		Outlet:             "10",
		ProductGroup:       "30",
		PartType:           "00",
		EvidenceYear:       "20",
		Location:           "FR",
		UniqueIdentifier:   "0000",
		GateLevel:          "30",
		NumberOfPrototypes: 1,
	}, s.Value())
}

func TestInput_PartialPasteRoutesToTrailingSegments(t *testing.T) {
	s := State{}.Input(Outlet, "0000.30_001")

	assert.Equal(t, "", s.Values[Outlet])
	assert.Equal(t, "0000", s.Values[UniqueIdentifier])
	assert.Equal(t, "30", s.Values[GateLevel])
	assert.Equal(t, "001", s.Values[PrototypeNumber])
}

func TestInput_PasteOverflowMergesIntoCurrentSegment(t *testing.T) {
	s := State{}.Input(PartType, "10.30.00.20.FR.0000.30_001")

	// Six segments remain from part type, so the three leading chunks merge.
	assert.Equal(t, "10.30.00", s.Values[PartType])
	assert.Equal(t, "20", s.Values[EvidenceYear])
	assert.Equal(t, "FR", s.Values[Location])
	assert.Equal(t, "0000", s.Values[UniqueIdentifier])
	assert.Equal(t, "30", s.Values[GateLevel])
	assert.Equal(t, "001", s.Values[PrototypeNumber])
	assert.Empty(t, s.Values[Outlet])
}

func TestInput_DelimiterTypedStandaloneAdvancesFocus(t *testing.T) {
	s := State{}.Input(Outlet, "10.")

	assert.Equal(t, "10", s.Values[Outlet])
	assert.Equal(t, ProductGroup, s.Active)
	assert.Empty(t, s.Values[ProductGroup])
}

func TestInput_GateLevelUnderscoreAdvancesFocus(t *testing.T) {
	s := State{}.Input(GateLevel, "30_")

	assert.Equal(t, "30", s.Values[GateLevel])
	assert.Equal(t, PrototypeNumber, s.Active)
}

func TestInput_OverflowSpillsIntoNextSegment(t *testing.T) {
	s := State{}.Input(Outlet, "103")

	assert.Equal(t, "10", s.Values[Outlet])
	assert.Equal(t, "3", s.Values[ProductGroup])
	assert.Equal(t, ProductGroup, s.Active)
}

func TestInput_TypedCodeWithoutUnderscore(t *testing.T) {
	s := State{}.Input(Outlet, "10.30.00")

	assert.Equal(t, "10", s.Values[Outlet])
	assert.Equal(t, "30", s.Values[ProductGroup])
	assert.Equal(t, "00", s.Values[PartType])
	assert.Equal(t, PartType, s.Active)
}

func TestInput_LastSegmentTruncatesAndDropsExcess(t *testing.T) {
	s := State{}.Input(PrototypeNumber, "12345")

	assert.Equal(t, "123", s.Values[PrototypeNumber])
	assert.Equal(t, PrototypeNumber, s.Active)
}

func TestInput_EmptyInput(t *testing.T) {
	prev := State{Values: [SegmentCount]string{"10"}}
	s := prev.Input(Outlet, "")

	assert.Equal(t, "", s.Values[Outlet])
	assert.Equal(t, Outlet, s.Active)
}

func TestInput_DoesNotMutateReceiver(t *testing.T) {
	prev := State{}
	_ = prev.Input(Outlet, "10.30")

	assert.Equal(t, State{}, prev)
}

func TestInput_IndexOutOfRange(t *testing.T) {
	prev := State{Values: [SegmentCount]string{"10"}, Active: 3}

	assert.Equal(t, prev, prev.Input(-1, "x"))
	assert.Equal(t, prev, prev.Input(SegmentCount, "x"))
}

func TestInput_UnderscoreInLastSegmentStaysBounded(t *testing.T) {
	s := State{}.Input(PrototypeNumber, "xx_yy")

	assert.Equal(t, "xx_", s.Values[PrototypeNumber])
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", NoPrototypes},
		{"abc", NoPrototypes},
		{"1a", NoPrototypes},
		{"-1", NoPrototypes},
		{"007", 7},
		{"001", 1},
		{"120", 120},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.in))
		})
	}
}

func TestParseAndString(t *testing.T) {
	v := Parse("10.30.00.20.FR.0000.30_007")
	assert.Equal(t, 7, v.NumberOfPrototypes)
	assert.Equal(t, "10.30.00.20.FR.0000.30_007", v.String())

	v.NumberOfPrototypes = NoPrototypes
	assert.Equal(t, "10.30.00.20.FR.0000.30_", v.String())
}
