package partcode

import (
	"strings"
	"unicode/utf8"
)

// State is the editor state: one value per segment and the focused segment.
type State struct {
	Values [SegmentCount]string `json:"values"`
	Active int                  `json:"active"`
}

// Input applies raw text typed or pasted into segment index and returns the
// resulting state. Text is redistributed across the following segments as
// delimiters and length limits are met; nothing is rejected.
func (s State) Input(index int, raw string) State {
	if index < 0 || index >= SegmentCount {
		return s
	}
	s.input(index, raw)
	return s
}

func (s *State) input(index int, raw string) {
	s.Active = index

	if strings.Contains(raw, SpecialDelimiter) {
		start, chunks := rechunk(index, raw)
		s.Active = start
		s.assign(start, chunks[0], strings.Join(chunks[1:], ""))
		return
	}

	value, remainder := splitOnDelimiter(raw, Layout[index].Delimiter)
	s.assign(index, value, remainder)
}

// assign commits value to segment index and forwards remainder to the next one.
func (s *State) assign(index int, value, remainder string) {
	seg := Layout[index]

	switch {
	case seg.Delimiter != "" && strings.HasSuffix(value, seg.Delimiter):
		value = strings.TrimSuffix(value, seg.Delimiter)
		if remainder == "" && index < last {
			s.Active = index + 1
		}
	case remainder == "" && utf8.RuneCountInString(value) > seg.MaxLength:
		r := []rune(value)
		value, remainder = string(r[:seg.MaxLength]), string(r[seg.MaxLength:])
	}

	s.Values[index] = value

	if remainder != "" && index < last {
		s.input(index+1, remainder)
	}
}

// splitOnDelimiter cuts raw after the first delimiter. The delimiter stays on
// the value so the caller can tell a terminated segment from a partial one.
func splitOnDelimiter(raw, delimiter string) (string, string) {
	if delimiter == "" {
		return raw, ""
	}
	i := strings.Index(raw, delimiter)
	if i < 0 {
		return raw, ""
	}
	cut := i + len(delimiter)
	return raw[:cut], raw[cut:]
}

// rechunk re-derives per-segment chunks from a pasted code containing the
// special delimiter. Chunks keep their trailing delimiters. When there are
// more chunks than segments from index onwards, the leading surplus is merged
// into the first chunk. The returned start is the segment the first chunk
// belongs to, counted back from the last segment.
func rechunk(index int, raw string) (int, []string) {
	cut := strings.LastIndex(raw, SpecialDelimiter)
	head, tail := raw[:cut], raw[cut+len(SpecialDelimiter):]

	parts := strings.Split(head, ".")
	chunks := make([]string, 0, len(parts)+1)
	for i, p := range parts {
		if i == len(parts)-1 {
			chunks = append(chunks, p+SpecialDelimiter)
		} else {
			chunks = append(chunks, p+".")
		}
	}
	chunks = append(chunks, tail)

	if available := SegmentCount - index; len(chunks) > available {
		overflow := len(chunks) - available
		merged := strings.Join(chunks[:overflow+1], "")
		chunks = append([]string{merged}, chunks[overflow+1:]...)
	}

	return SegmentCount - len(chunks), chunks
}
