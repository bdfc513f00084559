package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyEmpty(t *testing.T) {
	c, err := classify("")
	require.NoError(t, err)
	assert.Equal(t, KindEmpty, c.Kind())
	assert.Equal(t, "", c.Text())
}

func TestClassifyText(t *testing.T) {
	c, err := classify("hello")
	require.NoError(t, err)
	assert.Equal(t, KindText, c.Kind())
	assert.Equal(t, "hello", c.Text())
}

func TestClassifyBareEqualsIsText(t *testing.T) {
	c, err := classify("=")
	require.NoError(t, err)
	assert.Equal(t, KindText, c.Kind())
	assert.Equal(t, "=", c.Text())
}

func TestClassifyFormula(t *testing.T) {
	c, err := classify("=1+2")
	require.NoError(t, err)
	assert.Equal(t, KindFormula, c.Kind())
	assert.Equal(t, "=1+2", c.Text())
}

func TestClassifyInvalidFormulaReturnsFormulaParseError(t *testing.T) {
	_, err := classify("=1+")
	require.Error(t, err)
	var parseErr *FormulaParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestRenderTextCoercesIntegerLiteral(t *testing.T) {
	r := renderText("42")
	assert.Equal(t, RenderedNumber, r.Kind)
	assert.Equal(t, 42.0, r.Number)
}

func TestRenderTextStripsApostropheEscape(t *testing.T) {
	r := renderText("'42")
	assert.Equal(t, RenderedNumber, r.Kind)
	assert.Equal(t, 42.0, r.Number)
}

func TestRenderTextNonNumericStaysString(t *testing.T) {
	r := renderText("hello")
	assert.Equal(t, RenderedText, r.Kind)
	assert.Equal(t, "hello", r.Text)
}

func TestCellInvalidateClearsCache(t *testing.T) {
	c, err := classify("=1+1")
	require.NoError(t, err)
	r := Rendered{Kind: RenderedNumber, Number: 99}
	c.cached = &r
	c.invalidate()
	assert.Nil(t, c.cached)
}
