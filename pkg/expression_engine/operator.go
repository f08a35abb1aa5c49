package expressionengine

import (
	"math"
	"strings"

	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
)

// Operator is a binary operator shown on the keypad.
type Operator string

const (
	NoOperator Operator = ""
	Add        Operator = "+"
	Subtract   Operator = "−"
	Multiply   Operator = "×"
	Divide     Operator = "÷"
	Modulo     Operator = "%"
)

// ParseOperator accepts keypad symbols and their ASCII keyboard aliases.
func ParseOperator(token string) (Operator, bool) {
	switch strings.ToLower(token) {
	case "+":
		return Add, true
	case "-", "−":
		return Subtract, true
	case "*", "x", "×":
		return Multiply, true
	case "/", "÷":
		return Divide, true
	case "%":
		return Modulo, true
	default:
		return NoOperator, false
	}
}

// Name is an ASCII label for the operator, used for metrics and logs.
func (o Operator) Name() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	case Modulo:
		return "modulo"
	default:
		return "none"
	}
}

// Apply evaluates left <op> right.
func (o Operator) Apply(left, right float64) (float64, error) {
	var result float64
	switch o {
	case Add:
		result = left + right
	case Subtract:
		result = left - right
	case Multiply:
		result = left * right
	case Divide:
		if right == 0 {
			return 0, locerr.ErrDivisionByZero
		}
		result = left / right
	case Modulo:
		// math.Mod(x, 0) is NaN; report it like division by zero.
		if right == 0 {
			return 0, locerr.ErrDivisionByZero
		}
		result = math.Mod(left, right)
	default:
		return 0, locerr.ErrUnknownOperation
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, locerr.ErrResultOutOfRange
	}
	return result, nil
}
