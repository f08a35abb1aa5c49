package expressionengine

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatNumber groups the integer part of an operand with English thousands
// separators and reattaches the fractional part exactly as typed, so "12."
// and "0.50" keep their shape. An integer part that does not parse renders
// as empty.
func FormatNumber(operand string) string {
	integer, fraction, hasPoint := strings.Cut(operand, ".")

	// "-0" would print as "0", so the sign is kept apart from the digits.
	sign := ""
	if rest, ok := strings.CutPrefix(integer, "-"); ok {
		sign, integer = "-", rest
	}

	var display string
	if v, err := strconv.ParseFloat(integer, 64); err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		p := message.NewPrinter(language.English)
		display = p.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
	}
	if display != "" || hasPoint {
		display = sign + display
	}

	if hasPoint {
		return display + "." + fraction
	}
	return display
}

// ParseFormatted strips grouping separators from a formatted number.
func ParseFormatted(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), ",", "")
}

// formatResult renders a computed value in its shortest decimal form.
func formatResult(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseOperand(operand string) (float64, bool) {
	v, err := strconv.ParseFloat(operand, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
