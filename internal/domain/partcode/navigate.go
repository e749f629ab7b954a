package partcode

import "unicode/utf8"

// Key names follow the DOM KeyboardEvent.key values.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyBackspace  Key = "Backspace"
	KeyDelete     Key = "Delete"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyEnter      Key = "Enter"
)

// KeyEvent is a key press inside segment Index with the caret selection at the time.
type KeyEvent struct {
	Key            Key  `json:"key"`
	SelectionStart int  `json:"selectionStart"`
	SelectionEnd   int  `json:"selectionEnd"`
	Alt            bool `json:"alt"`
	Shift          bool `json:"shift"`
	Meta           bool `json:"meta"`
}

// Navigation tells the client where focus and the caret go after a key press.
type Navigation struct {
	Focus          int  `json:"focus"`
	Caret          int  `json:"caret"`
	Moved          bool `json:"moved"`
	PreventDefault bool `json:"preventDefault"`
	Submit         bool `json:"submit"`
}

// Navigate resolves a key press in segment index.
func (s State) Navigate(index int, ev KeyEvent) Navigation {
	stay := Navigation{Focus: index, Caret: ev.SelectionEnd}
	if index < 0 || index >= SegmentCount {
		return stay
	}

	collapsed := ev.SelectionStart == ev.SelectionEnd
	length := utf8.RuneCountInString(s.Values[index])

	switch ev.Key {
	case KeyArrowLeft, KeyBackspace:
		if collapsed && ev.SelectionStart == 0 && index > 0 {
			prev := index - 1
			return Navigation{
				Focus:          prev,
				Caret:          utf8.RuneCountInString(s.Values[prev]),
				Moved:          true,
				PreventDefault: ev.Key == KeyArrowLeft,
			}
		}
	case KeyArrowRight, KeyDelete:
		if collapsed && ev.SelectionEnd == length && index < last {
			return Navigation{Focus: index + 1, Caret: 0, Moved: true}
		}
	case KeyHome:
		if !ev.Alt && !ev.Shift && !ev.Meta {
			return Navigation{Focus: 0, Caret: 0, Moved: true, PreventDefault: true}
		}
	case KeyEnd:
		if !ev.Alt && !ev.Shift && !ev.Meta {
			return Navigation{
				Focus:          last,
				Caret:          utf8.RuneCountInString(s.Values[last]),
				Moved:          true,
				PreventDefault: true,
			}
		}
	case KeyEnter:
		stay.Submit = true
	}

	return stay
}
