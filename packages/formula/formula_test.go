package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cerque1/go-spreadsheet/packages/position"
)

// stubSheet is a minimal SheetReader backed by a map, used to test formula
// evaluation in isolation from the spreadsheet package.
type stubSheet map[position.Position]Value

func (s stubSheet) ValueAt(pos position.Position) Value {
	if v, ok := s[pos]; ok {
		return v
	}
	return numberValue(0)
}

func mustParse(t *testing.T, text string) ParsedFormula {
	t.Helper()
	f, err := Parse(text)
	require.NoError(t, err)
	return f
}

func TestArithmeticPrecedence(t *testing.T) {
	f := mustParse(t, "1+2*3")
	v := f.Evaluate(stubSheet{})
	require.Equal(t, KindNumber, v.Kind)
	assert.Equal(t, 7.0, v.Number)
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	f := mustParse(t, "(1+2)*3")
	v := f.Evaluate(stubSheet{})
	assert.Equal(t, 9.0, v.Number)
}

func TestUnaryMinus(t *testing.T) {
	f := mustParse(t, "-5+10")
	v := f.Evaluate(stubSheet{})
	assert.Equal(t, 5.0, v.Number)
}

func TestCellReference(t *testing.T) {
	a1 := position.Position{Row: 0, Col: 0}
	sheet := stubSheet{a1: numberValue(2)}
	f := mustParse(t, "A1+1")
	v := f.Evaluate(sheet)
	assert.Equal(t, 3.0, v.Number)
}

func TestDivisionByZeroIsArithmeticError(t *testing.T) {
	f := mustParse(t, "1/0")
	v := f.Evaluate(stubSheet{})
	require.Equal(t, KindError, v.Kind)
	assert.Equal(t, ErrArithmetic, v.Err)
	assert.Equal(t, "#ARITHM!", v.Err.String())
}

func TestErrorOperandPropagates(t *testing.T) {
	a1 := position.Position{Row: 0, Col: 0}
	sheet := stubSheet{a1: errorValue(ErrRef)}
	f := mustParse(t, "A1+1")
	v := f.Evaluate(sheet)
	require.Equal(t, KindError, v.Kind)
	assert.Equal(t, ErrRef, v.Err)
}

func TestSumOverRange(t *testing.T) {
	sheet := stubSheet{
		{Row: 0, Col: 0}: numberValue(1),
		{Row: 1, Col: 0}: numberValue(2),
		{Row: 2, Col: 0}: numberValue(3),
	}
	f := mustParse(t, "SUM(A1:A3)")
	v := f.Evaluate(sheet)
	assert.Equal(t, 6.0, v.Number)
}

func TestAverageOverRange(t *testing.T) {
	sheet := stubSheet{
		{Row: 0, Col: 0}: numberValue(2),
		{Row: 1, Col: 0}: numberValue(4),
	}
	f := mustParse(t, "AVERAGE(A1:A2)")
	v := f.Evaluate(sheet)
	assert.Equal(t, 3.0, v.Number)
}

func TestReferencedCellsDedupedAndSorted(t *testing.T) {
	f := mustParse(t, "A1+A1+B2")
	refs := f.ReferencedCells()
	assert.Equal(t, []position.Position{
		{Row: 0, Col: 0},
		{Row: 1, Col: 1},
	}, refs)
}

func TestReferencedCellsIncludesRangeMembers(t *testing.T) {
	f := mustParse(t, "SUM(A1:A3)")
	refs := f.ReferencedCells()
	assert.Equal(t, []position.Position{
		{Row: 0, Col: 0},
		{Row: 1, Col: 0},
		{Row: 2, Col: 0},
	}, refs)
}

func TestCanonicalTextRoundTrips(t *testing.T) {
	f := mustParse(t, "(1+2)*a1")
	assert.Equal(t, "(1+2)*A1", f.CanonicalText())
}

func TestParseInvalidFormulas(t *testing.T) {
	for _, text := range []string{"", "1+", "SUM(", "A1:", "@", "1 1"} {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text)
			assert.Error(t, err)
		})
	}
}

func TestUnknownFunctionNameIsError(t *testing.T) {
	_, err := Parse("NOPE(A1)")
	assert.Error(t, err)
}
