// Package spreadsheet is the core cell/sheet evaluation engine: the
// cell content model, the dependency graph, cycle detection on
// assignment, lazy memoized formula evaluation, and cache invalidation.
package spreadsheet

import (
	"strconv"
	"strings"

	"github.com/cerque1/go-spreadsheet/packages/formula"
	"github.com/cerque1/go-spreadsheet/packages/position"
)

// CellKind discriminates the three content variants a Cell can hold.
type CellKind int

const (
	KindEmpty CellKind = iota
	KindText
	KindFormula
)

// RenderedKind discriminates the three shapes a cell's GetValue can
// produce: a number, a string, or a formula error.
type RenderedKind int

const (
	RenderedNumber RenderedKind = iota
	RenderedText
	RenderedError
)

// Rendered is a cell's evaluated GetValue result.
type Rendered struct {
	Kind   RenderedKind
	Number float64
	Text   string
	Err    formula.ErrorKind
}

// Cell holds exactly one of {Empty, Text, Formula} plus the dependency
// edges it carries: dependsOn (outgoing, cells this formula
// references) and dependents (incoming, cells that reference this one).
// Edges are stored as Position sets rather than cell pointers — per
// design, all traversals are mediated by the owning
// Sheet, which resolves Position to *Cell.
type Cell struct {
	kind CellKind

	// Text payload (KindText): the raw literal, apostrophe escape intact.
	text string

	// Formula payload (KindFormula).
	parsed formula.ParsedFormula
	cached *Rendered // nil means "unevaluated"

	dependsOn  map[position.Position]struct{}
	dependents map[position.Position]struct{}
}

func newCell(kind CellKind) *Cell {
	return &Cell{
		kind:       kind,
		dependsOn:  make(map[position.Position]struct{}),
		dependents: make(map[position.Position]struct{}),
	}
}

// classify implements the content classification rule: empty text is Empty, a formula prefix
// of length > 1 is parsed as Formula (a bare "=" stays Text), anything
// else is a Text literal.
func classify(text string) (*Cell, error) {
	switch {
	case text == "":
		return newCell(KindEmpty), nil
	case strings.HasPrefix(text, "=") && len(text) > 1:
		parsed, err := formula.Parse(text[1:])
		if err != nil {
			return nil, &FormulaParseError{Text: text, Err: err}
		}
		c := newCell(KindFormula)
		c.parsed = parsed
		return c, nil
	default:
		c := newCell(KindText)
		c.text = text
		return c, nil
	}
}

// Text returns the cell's canonical text form: "" for Empty, the raw
// literal for Text (apostrophe included), or "=" plus the formula's
// canonical rendering for Formula.
func (c *Cell) Text() string {
	switch c.kind {
	case KindEmpty:
		return ""
	case KindText:
		return c.text
	case KindFormula:
		return "=" + c.parsed.CanonicalText()
	}
	return ""
}

// Kind reports the cell's content variant.
func (c *Cell) Kind() CellKind {
	return c.kind
}

// invalidate clears a memoized formula result, moving the cell from
// Formula-Cached back to Formula-Unevaluated. It is a
// no-op for non-formula cells.
func (c *Cell) invalidate() {
	c.cached = nil
}

// render implements the GetValue algorithm. sheet is passed
// through to the formula evaluator so cell references can be resolved.
func (c *Cell) render(sheet formula.SheetReader) Rendered {
	switch c.kind {
	case KindEmpty:
		return Rendered{Kind: RenderedNumber, Number: 0}
	case KindText:
		return renderText(c.text)
	case KindFormula:
		if c.cached != nil {
			return *c.cached
		}
		r := renderFormulaValue(c.parsed.Evaluate(sheet))
		c.cached = &r
		return r
	}
	return Rendered{Kind: RenderedNumber, Number: 0}
}

// renderText implements the text-cell half of GetValue: strip the
// apostrophe escape, then coerce to a finite integer if possible, else
// return the string form. This resolves the text-coercion question in
// favor of "parse as finite integer, else string" (matching
// original_source/spreadsheet/cell.cpp's std::stoi coercion).
func renderText(raw string) Rendered {
	display := raw
	if strings.HasPrefix(display, "'") {
		display = display[1:]
	}
	if n, err := strconv.ParseInt(display, 10, 64); err == nil {
		return Rendered{Kind: RenderedNumber, Number: float64(n)}
	}
	return Rendered{Kind: RenderedText, Text: display}
}

func renderFormulaValue(v formula.Value) Rendered {
	if v.Kind == formula.KindError {
		return Rendered{Kind: RenderedError, Err: v.Err}
	}
	return Rendered{Kind: RenderedNumber, Number: v.Number}
}
