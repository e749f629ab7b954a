package dto

import "protoparts/internal/domain/partcode"

// PartCodeResponse is a composed code with its canonical rendering.
type PartCodeResponse struct {
	partcode.Value
	Code string `json:"code"`
}

// NewPartCodeResponse renders v.
func NewPartCodeResponse(v partcode.Value) PartCodeResponse {
	return PartCodeResponse{Value: v, Code: v.String()}
}

// PartCodeInputRequest is text entered into one segment of the editor.
type PartCodeInputRequest struct {
	Values []string `json:"values" validate:"max=8"`
	Index  int      `json:"index" validate:"gte=0,lte=7"`
	Raw    string   `json:"raw" validate:"max=64"`
}

// State converts the request values into editor state.
func (r PartCodeInputRequest) State() partcode.State {
	var s partcode.State
	copy(s.Values[:], r.Values)
	s.Active = r.Index
	return s
}

// PartCodeInputResponse is the editor state after input.
type PartCodeInputResponse struct {
	Values []string         `json:"values"`
	Active int              `json:"active"`
	Value  PartCodeResponse `json:"value"`
}

// FromPartCodeState maps editor state.
func FromPartCodeState(s partcode.State) PartCodeInputResponse {
	return PartCodeInputResponse{
		Values: s.Values[:],
		Active: s.Active,
		Value:  NewPartCodeResponse(s.Value()),
	}
}

// PartCodeNavigateRequest is a key press in one segment of the editor.
type PartCodeNavigateRequest struct {
	Values []string          `json:"values" validate:"max=8"`
	Index  int               `json:"index" validate:"gte=0,lte=7"`
	Event  partcode.KeyEvent `json:"event"`
}

// State converts the request values into editor state.
func (r PartCodeNavigateRequest) State() partcode.State {
	var s partcode.State
	copy(s.Values[:], r.Values)
	s.Active = r.Index
	return s
}
