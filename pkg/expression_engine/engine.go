// Package expressionengine implements the keypad expression state machine:
// two operand strings, a pending operator and a reset-on-next-digit flag.
//
// Every transition is a method on a State value that returns the next
// State, so callers own the state and the engine keeps none.
package expressionengine

import (
	"fmt"
	"strings"
)

// State is the expression being entered.
//
// Previous is non-empty iff Operator is set. Current is "0" at rest and
// empty right after an operator has been chosen.
type State struct {
	Current          string
	Previous         string
	Operator         Operator
	ResetOnNextDigit bool
}

// Computation is the outcome of a successful Compute.
type Computation struct {
	Expression string
	Result     string
	Value      float64
	Operator   Operator
}

// Display is what the keypad shows after a transition.
type Display struct {
	Preview string
	Current string
}

// New returns the cleared state.
func New() State {
	return State{Current: "0"}
}

// Clear resets to defaults.
func (s State) Clear() State {
	return New()
}

// AppendDigit adds a digit or decimal point to the current operand.
func (s State) AppendDigit(d string) State {
	if !isDigit(d) {
		return s
	}
	if s.ResetOnNextDigit {
		s.Current = "0"
		s.ResetOnNextDigit = false
	}
	if d == "." && strings.Contains(s.Current, ".") {
		return s
	}
	if s.Current == "0" && d != "." {
		s.Current = d
	} else {
		s.Current += d
	}
	return s
}

// DeleteLastChar drops the last character of the current operand.
func (s State) DeleteLastChar() State {
	if s.Current == "0" {
		return s
	}
	if len(s.Current) <= 1 {
		s.Current = "0"
		return s
	}
	s.Current = s.Current[:len(s.Current)-1]
	return s
}

// ChooseOperator sets the pending operator, first evaluating any pending
// expression so chains run left to right. If that evaluation fails the
// state is returned unchanged together with the error. It does not carry
// on with "0" as the left operand.
func (s State) ChooseOperator(op Operator) (State, *Computation, error) {
	if s.Current == "" || op == NoOperator {
		return s, nil, nil
	}

	var c *Computation
	if s.Previous != "" {
		next, computed, err := s.Compute()
		if err != nil {
			return s, nil, err
		}
		s, c = next, computed
	}

	s.Operator = op
	s.Previous = s.Current
	s.Current = ""
	return s, c, nil
}

// Compute applies the pending operator. It is a silent no-op when no
// operator is pending or an operand does not parse. Arithmetic errors
// leave the state untouched.
func (s State) Compute() (State, *Computation, error) {
	if s.Operator == NoOperator {
		return s, nil, nil
	}
	prev, ok := parseOperand(s.Previous)
	if !ok {
		return s, nil, nil
	}
	cur, ok := parseOperand(s.Current)
	if !ok {
		return s, nil, nil
	}

	value, err := s.Operator.Apply(prev, cur)
	if err != nil {
		return s, nil, err
	}

	result := formatResult(value)
	c := &Computation{
		Expression: fmt.Sprintf("%s %s %s", s.Previous, s.Operator, s.Current),
		Result:     FormatNumber(result),
		Value:      value,
		Operator:   s.Operator,
	}

	s.Current = result
	s.Previous = ""
	s.Operator = NoOperator
	s.ResetOnNextDigit = true
	return s, c, nil
}

// UseResult loads a formatted result, typically from history, as the
// current operand. The next digit starts a fresh number.
func (s State) UseResult(text string) State {
	operand := ParseFormatted(text)
	if operand == "" {
		return s
	}
	s.Current = operand
	s.ResetOnNextDigit = true
	return s
}

// Display formats the state for the keypad screen.
func (s State) Display() Display {
	d := Display{Current: FormatNumber(s.Current)}
	if s.Operator != NoOperator {
		d.Preview = FormatNumber(s.Previous) + " " + string(s.Operator)
	}
	return d
}

func isDigit(d string) bool {
	if len(d) != 1 {
		return false
	}
	return d == "." || (d[0] >= '0' && d[0] <= '9')
}
