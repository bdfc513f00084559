// Package formula is the formula collaborator kept external to the core
// engine: a lexer, recursive-descent parser, AST, and
// evaluator for a small arithmetic grammar over numeric literals, cell
// references, cell ranges, and SUM/AVERAGE/MIN/MAX/COUNT.
package formula

import (
	"strconv"

	"github.com/cerque1/go-spreadsheet/packages/position"
)

// ValueKind discriminates a Value between a finite number and an error.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindError
)

// ErrorKind is the closed set of formula-level error categories embedded
// in a Value, rendered through errorMnemonics for display.
type ErrorKind int

const (
	// ErrRef marks a reference to a position that is syntactically valid
	// but falls outside the addressable grid.
	ErrRef ErrorKind = iota
	// ErrValue marks an operand that could not be coerced to a number.
	ErrValue
	// ErrArithmetic marks division by zero or a non-finite result.
	ErrArithmetic
)

// errorMnemonics maps an ErrorKind to its display mnemonic, mirroring the
// teacher's ErrorMapper table in cell.go.
var errorMnemonics = map[ErrorKind]string{
	ErrRef:        "#REF!",
	ErrValue:      "#VALUE!",
	ErrArithmetic: "#ARITHM!",
}

func (k ErrorKind) String() string {
	return errorMnemonics[k]
}

// Value is a FormulaValue: either a finite number or a typed error.
type Value struct {
	Kind   ValueKind
	Number float64
	Err    ErrorKind
}

func numberValue(f float64) Value   { return Value{Kind: KindNumber, Number: f} }
func errorValue(k ErrorKind) Value  { return Value{Kind: KindError, Err: k} }

// SheetReader is the read interface a sheet exposes to a ParsedFormula
// during evaluation: a single position lookup that already applies the
// cell's own GetValue coercion rules.
type SheetReader interface {
	ValueAt(pos position.Position) Value
}

// ParsedFormula is the external collaborator contract the core engine consumes:
// evaluation against a sheet, canonical re-rendering, and enumeration of
// the positions the formula references.
type ParsedFormula interface {
	Evaluate(sheet SheetReader) Value
	CanonicalText() string
	ReferencedCells() []position.Position
}

type parsedFormula struct {
	root node
	refs []position.Position // sorted, deduplicated at parse time
}

func (f *parsedFormula) Evaluate(sheet SheetReader) Value {
	return f.root.eval(sheet)
}

func (f *parsedFormula) CanonicalText() string {
	return f.root.text()
}

func (f *parsedFormula) ReferencedCells() []position.Position {
	return f.refs
}

// Parse parses formula source text (without the leading "=") into a
// ParsedFormula. Syntax errors are returned as-is; the caller (the sheet,
// at SetCell time) is responsible for wrapping them into its own
// FormulaParseError.
func Parse(text string) (ParsedFormula, error) {
	tokens, err := newLexer(text).tokenize()
	if err != nil {
		return nil, err
	}
	root, err := newParser(tokens).parse()
	if err != nil {
		return nil, err
	}
	var refs []position.Position
	root.collectRefs(&refs)
	return &parsedFormula{root: root, refs: position.SortPositions(refs)}, nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
