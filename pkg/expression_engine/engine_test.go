package expressionengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locerr "github.com/ERRORIK404/Keypad_Calculator/pkg/local_errors"
)

func press(t *testing.T, s State, keys ...string) State {
	t.Helper()
	for _, k := range keys {
		if k == "=" {
			next, _, err := s.Compute()
			require.NoError(t, err)
			s = next
			continue
		}
		if op, ok := ParseOperator(k); ok {
			next, _, err := s.ChooseOperator(op)
			require.NoError(t, err)
			s = next
			continue
		}
		s = s.AppendDigit(k)
	}
	return s
}

func TestNewIsCleared(t *testing.T) {
	s := New()
	assert.Equal(t, "0", s.Current)
	assert.Empty(t, s.Previous)
	assert.Equal(t, NoOperator, s.Operator)
	assert.False(t, s.ResetOnNextDigit)
}

func TestAppendDigit(t *testing.T) {
	tests := []struct {
		name  string
		start string
		keys  []string
		want  string
	}{
		{name: "replaces leading zero", start: "0", keys: []string{"5"}, want: "5"},
		{name: "concatenates", start: "12", keys: []string{"3"}, want: "123"},
		{name: "point after zero", start: "0", keys: []string{"."}, want: "0."},
		{name: "second point rejected", start: "1.5", keys: []string{".", "2"}, want: "1.52"},
		{name: "trailing zeros kept", start: "0", keys: []string{".", "5", "0"}, want: "0.50"},
		{name: "invalid token ignored", start: "4", keys: []string{"a", "12", ""}, want: "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{Current: tt.start}
			for _, k := range tt.keys {
				s = s.AppendDigit(k)
			}
			assert.Equal(t, tt.want, s.Current)
		})
	}
}

func TestAppendDigitNeverProducesTwoPoints(t *testing.T) {
	alphabet := []string{"0", "1", "2", ".", "9", "."}
	s := New()
	for i := 0; i < 200; i++ {
		s = s.AppendDigit(alphabet[(i*7+i/3)%len(alphabet)])
		require.LessOrEqual(t, strings.Count(s.Current, "."), 1, "operand %q", s.Current)
	}
}

func TestAppendDigitAfterResetStartsFreshNumber(t *testing.T) {
	s := State{Current: "8", ResetOnNextDigit: true}

	s = s.AppendDigit("2")
	assert.Equal(t, "2", s.Current)
	assert.False(t, s.ResetOnNextDigit)

	s = State{Current: "8.5", ResetOnNextDigit: true}.AppendDigit(".")
	assert.Equal(t, "0.", s.Current)
}

func TestDeleteLastChar(t *testing.T) {
	s := press(t, New(), "1", "2", "3")
	s = s.DeleteLastChar().DeleteLastChar()
	assert.Equal(t, "1", s.Current)

	s = s.DeleteLastChar()
	assert.Equal(t, "0", s.Current)

	s = s.DeleteLastChar()
	assert.Equal(t, "0", s.Current)
}

func TestChooseOperatorMovesOperand(t *testing.T) {
	s := press(t, New(), "4", "2", "+")
	assert.Equal(t, "42", s.Previous)
	assert.Empty(t, s.Current)
	assert.Equal(t, Add, s.Operator)
}

func TestChooseOperatorIgnoredWithEmptyOperand(t *testing.T) {
	s := press(t, New(), "4", "+")
	next, c, err := s.ChooseOperator(Multiply)
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Equal(t, s, next)
}

func TestChooseOperatorChainsLeftToRight(t *testing.T) {
	s := press(t, New(), "2", "+", "3")
	next, c, err := s.ChooseOperator(Multiply)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "2 + 3", c.Expression)
	assert.Equal(t, "5", next.Previous)
	assert.Equal(t, Multiply, next.Operator)

	next = press(t, next, "4", "=")
	assert.Equal(t, "20", next.Current)
}

func TestChooseOperatorKeepsStateOnDivisionByZero(t *testing.T) {
	s := press(t, New(), "9", "÷", "0")
	next, c, err := s.ChooseOperator(Add)
	require.ErrorIs(t, err, locerr.ErrDivisionByZero)
	assert.Nil(t, c)
	assert.Equal(t, s, next)
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
		expr string
		res  string
	}{
		{name: "add", keys: []string{"5", "+", "3"}, want: "8", expr: "5 + 3", res: "8"},
		{name: "subtract", keys: []string{"3", "-", "5"}, want: "-2", expr: "3 − 5", res: "-2"},
		{name: "multiply", keys: []string{"1", "2", "0", "0", "*", "3"}, want: "3600", expr: "1200 × 3", res: "3,600"},
		{name: "divide", keys: []string{"7", "/", "2"}, want: "3.5", expr: "7 ÷ 2", res: "3.5"},
		{name: "modulo", keys: []string{"1", "0", "%", "4"}, want: "2", expr: "10 % 4", res: "2"},
		{name: "float noise", keys: []string{".", "1", "+", ".", "2"}, want: "0.30000000000000004", expr: "0.1 + .2", res: "0.30000000000000004"},
		{name: "zero result", keys: []string{"5", "-", "5"}, want: "0", expr: "5 − 5", res: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := press(t, New(), tt.keys...)
			next, c, err := s.Compute()
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, next.Current)
			assert.Equal(t, tt.expr, c.Expression)
			assert.Equal(t, tt.res, c.Result)
			assert.Empty(t, next.Previous)
			assert.Equal(t, NoOperator, next.Operator)
			assert.True(t, next.ResetOnNextDigit)
		})
	}
}

func TestModuloSignFollowsDividend(t *testing.T) {
	s := State{Previous: "-7", Operator: Modulo, Current: "3"}
	next, _, err := s.Compute()
	require.NoError(t, err)
	assert.Equal(t, "-1", next.Current)

	s = State{Previous: "7", Operator: Modulo, Current: "-3"}
	next, _, err = s.Compute()
	require.NoError(t, err)
	assert.Equal(t, "1", next.Current)
}

func TestComputeWithoutOperatorIsNoop(t *testing.T) {
	states := []State{
		New(),
		{Current: "12.5"},
		{Current: "3", ResetOnNextDigit: true},
	}
	for _, s := range states {
		next, c, err := s.Compute()
		require.NoError(t, err)
		assert.Nil(t, c)
		assert.Equal(t, s, next)
	}
}

func TestComputeWithUnparseableOperandIsNoop(t *testing.T) {
	states := []State{
		{Previous: "5", Operator: Add, Current: ""},
		{Previous: "5", Operator: Add, Current: "."},
		{Previous: "-", Operator: Add, Current: "1"},
	}
	for _, s := range states {
		next, c, err := s.Compute()
		require.NoError(t, err)
		assert.Nil(t, c)
		assert.Equal(t, s, next)
	}
}

func TestDivisionByZeroLeavesStateUnchanged(t *testing.T) {
	for _, op := range []Operator{Divide, Modulo} {
		s := press(t, New(), "7")
		s, _, err := s.ChooseOperator(op)
		require.NoError(t, err)
		s = s.AppendDigit("0")

		next, c, err := s.Compute()
		require.ErrorIs(t, err, locerr.ErrDivisionByZero)
		assert.Nil(t, c)
		assert.Equal(t, s, next)
		assert.Equal(t, "0", next.Current)
		assert.Equal(t, "7", next.Previous)
		assert.Equal(t, op, next.Operator)
	}
}

func TestComputeOverflowIsRejected(t *testing.T) {
	s := State{Previous: "1e308", Operator: Multiply, Current: "10"}
	next, c, err := s.Compute()
	require.ErrorIs(t, err, locerr.ErrResultOutOfRange)
	assert.Nil(t, c)
	assert.Equal(t, s, next)
}

func TestUseResult(t *testing.T) {
	s := press(t, New(), "5", "+")
	s = s.UseResult("1,234.5")
	assert.Equal(t, "1234.5", s.Current)
	assert.True(t, s.ResetOnNextDigit)
	assert.Equal(t, Add, s.Operator)

	next, c, err := s.Compute()
	require.NoError(t, err)
	assert.Equal(t, "5 + 1234.5", c.Expression)
	assert.Equal(t, "1239.5", next.Current)

	assert.Equal(t, next, next.UseResult("  "))
}

func TestDisplay(t *testing.T) {
	s := press(t, New(), "1", "2", "3", "4", "5", ".", "6", "0")
	assert.Equal(t, Display{Current: "12,345.60"}, s.Display())

	s = press(t, s, "×")
	assert.Equal(t, Display{Preview: "12,345.60 ×", Current: ""}, s.Display())

	s = press(t, s, "1", "0", "0", "0", ".")
	assert.Equal(t, Display{Preview: "12,345.60 ×", Current: "1,000."}, s.Display())
}

func TestClear(t *testing.T) {
	s := press(t, New(), "9", "+", "1")
	s.ResetOnNextDigit = true
	assert.Equal(t, New(), s.Clear())
}

func TestScenarioAddition(t *testing.T) {
	s := press(t, New(), "5", "+", "3")
	next, c, err := s.Compute()
	require.NoError(t, err)
	assert.Equal(t, "8", next.Current)
	assert.Equal(t, &Computation{Expression: "5 + 3", Result: "8", Value: 8, Operator: Add}, c)
}
