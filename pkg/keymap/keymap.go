package keymap

import (
	"strings"

	engine "github.com/ERRORIK404/Keypad_Calculator/pkg/expression_engine"
	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
)

// Kind is the type of keypad input.
type Kind int

const (
	Digit Kind = iota + 1
	Operator
	Equals
	Delete
	Clear
	ClearHistory
)

// Canonical names for the non-character keys.
const (
	KeyEnter        = "Enter"
	KeyBackspace    = "Backspace"
	KeyEscape       = "Escape"
	KeyClearHistory = "ClearHistory"
)

// Event is one keypad press. Token is the digit for Digit events and the
// operator symbol for Operator events.
type Event struct {
	Kind  Kind
	Token string
}

// Key returns the canonical key name that FromKey maps back to e.
func (e Event) Key() string {
	switch e.Kind {
	case Digit, Operator:
		return e.Token
	case Equals:
		return KeyEnter
	case Delete:
		return KeyBackspace
	case Clear:
		return KeyEscape
	case ClearHistory:
		return KeyClearHistory
	default:
		return ""
	}
}

// FromKey maps a key name to an event, following the browser keyboard
// table: digits and point, + - * / %, Enter or =, Backspace, Escape.
// Keypad symbols × ÷ − and terminal key names are accepted too.
func FromKey(name string) (Event, error) {
	if len(name) == 1 && (IsDigit(rune(name[0])) || name == ".") {
		return Event{Kind: Digit, Token: name}, nil
	}
	if op, ok := engine.ParseOperator(name); ok {
		return Event{Kind: Operator, Token: string(op)}, nil
	}

	switch strings.ToLower(name) {
	case "enter", "=", "return":
		return Event{Kind: Equals}, nil
	case "backspace", "delete", "del":
		return Event{Kind: Delete}, nil
	case "escape", "esc", "c", "ac":
		return Event{Kind: Clear}, nil
	case "clearhistory", "ctrl+l":
		return Event{Kind: ClearHistory}, nil
	}
	return Event{}, locerr.ErrUnknownKey
}

// Parse turns a keystroke script such as "12+3*4=" into events, one rune
// per key. Whitespace is skipped, '<' is delete and 'C' is clear.
func Parse(script string) ([]Event, error) {
	events := []Event{}

	for _, char := range script {
		switch {
		case IsDigit(char) || char == '.':
			events = append(events, Event{Kind: Digit, Token: string(char)})
		case char == '=':
			events = append(events, Event{Kind: Equals})
		case char == '<':
			events = append(events, Event{Kind: Delete})
		case char == 'C' || char == 'c':
			events = append(events, Event{Kind: Clear})
		case char == ' ' || char == '\t' || char == '\n' || char == '\r':
			continue
		default:
			op, ok := engine.ParseOperator(string(char))
			if !ok {
				return nil, locerr.ErrInvalidCharacter
			}
			events = append(events, Event{Kind: Operator, Token: string(op)})
		}
	}

	return events, nil
}

func IsDigit(char rune) bool {
	return char >= '0' && char <= '9'
}
