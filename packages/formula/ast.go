package formula

import (
	"math"
	"strings"

	"github.com/cerque1/go-spreadsheet/packages/position"
)

// node is the common interface for every arithmetic AST node: it can
// evaluate itself against a sheet, render itself back to canonical text,
// and report the cell positions it touches.
type node interface {
	eval(sheet SheetReader) Value
	text() string
	collectRefs(out *[]position.Position)
}

type numberNode struct {
	value float64
}

func (n *numberNode) eval(SheetReader) Value { return numberValue(n.value) }
func (n *numberNode) text() string           { return formatNumber(n.value) }
func (n *numberNode) collectRefs(*[]position.Position) {}

type cellRefNode struct {
	pos position.Position
}

func (n *cellRefNode) eval(sheet SheetReader) Value { return sheet.ValueAt(n.pos) }
func (n *cellRefNode) text() string                 { return n.pos.String() }
func (n *cellRefNode) collectRefs(out *[]position.Position) {
	*out = append(*out, n.pos)
}

// rangeNode is pure sugar for a rectangular block of cellRefNodes; it has
// no dependency-graph representation of its own (see DESIGN.md).
type rangeNode struct {
	from, to position.Position
	cells    []position.Position // in row-major order, computed once at parse time
}

func newRangeNode(from, to position.Position) *rangeNode {
	minRow, maxRow := from.Row, to.Row
	if minRow > maxRow {
		minRow, maxRow = maxRow, minRow
	}
	minCol, maxCol := from.Col, to.Col
	if minCol > maxCol {
		minCol, maxCol = maxCol, minCol
	}
	var cells []position.Position
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			cells = append(cells, position.Position{Row: r, Col: c})
		}
	}
	return &rangeNode{from: from, to: to, cells: cells}
}

func (n *rangeNode) eval(SheetReader) Value {
	// a range is not itself a scalar: only a range passed directly as a
	// call argument is expanded (see callNode.collectValues); anywhere
	// else in an expression it evaluates to #VALUE!.
	return errorValue(ErrValue)
}

func (n *rangeNode) text() string {
	return n.from.String() + ":" + n.to.String()
}

func (n *rangeNode) collectRefs(out *[]position.Position) {
	*out = append(*out, n.cells...)
}

func (n *rangeNode) values(sheet SheetReader) []Value {
	out := make([]Value, 0, len(n.cells))
	for _, p := range n.cells {
		out = append(out, sheet.ValueAt(p))
	}
	return out
}

type unaryOp int

const (
	unaryPlus unaryOp = iota
	unaryMinus
)

type unaryNode struct {
	op unaryOp
	x  node
}

func (n *unaryNode) eval(sheet SheetReader) Value {
	v := n.x.eval(sheet)
	if v.Kind == KindError {
		return v
	}
	if n.op == unaryMinus {
		return numberValue(-v.Number)
	}
	return v
}

func (n *unaryNode) text() string {
	if n.op == unaryMinus {
		return "-" + n.x.text()
	}
	return "+" + n.x.text()
}

func (n *unaryNode) collectRefs(out *[]position.Position) { n.x.collectRefs(out) }

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
)

var binaryOpText = map[binaryOp]string{
	opAdd: "+",
	opSub: "-",
	opMul: "*",
	opDiv: "/",
}

type binaryNode struct {
	op   binaryOp
	x, y node
}

func (n *binaryNode) eval(sheet SheetReader) Value {
	x := n.x.eval(sheet)
	if x.Kind == KindError {
		return x
	}
	y := n.y.eval(sheet)
	if y.Kind == KindError {
		return y
	}
	switch n.op {
	case opAdd:
		return finiteOrArithmetic(x.Number + y.Number)
	case opSub:
		return finiteOrArithmetic(x.Number - y.Number)
	case opMul:
		return finiteOrArithmetic(x.Number * y.Number)
	case opDiv:
		if y.Number == 0 {
			return errorValue(ErrArithmetic)
		}
		return finiteOrArithmetic(x.Number / y.Number)
	}
	return errorValue(ErrArithmetic)
}

func (n *binaryNode) text() string {
	return n.x.text() + binaryOpText[n.op] + n.y.text()
}

func (n *binaryNode) collectRefs(out *[]position.Position) {
	n.x.collectRefs(out)
	n.y.collectRefs(out)
}

// callNode is a range-aggregating function call: SUM, AVERAGE, MIN, MAX,
// COUNT applied to one or more ranges or cell references.
type callNode struct {
	name string
	args []node
}

func (n *callNode) eval(sheet SheetReader) Value {
	values := n.collectValues(sheet)
	fn, ok := builtins[n.name]
	if !ok {
		return errorValue(ErrValue)
	}
	return fn(values)
}

func (n *callNode) collectValues(sheet SheetReader) []Value {
	var values []Value
	for _, arg := range n.args {
		if r, ok := arg.(*rangeNode); ok {
			values = append(values, r.values(sheet)...)
			continue
		}
		values = append(values, arg.eval(sheet))
	}
	return values
}

func (n *callNode) text() string {
	parts := make([]string, len(n.args))
	for i, a := range n.args {
		parts[i] = a.text()
	}
	return n.name + "(" + strings.Join(parts, ",") + ")"
}

func (n *callNode) collectRefs(out *[]position.Position) {
	for _, a := range n.args {
		a.collectRefs(out)
	}
}

func finiteOrArithmetic(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errorValue(ErrArithmetic)
	}
	return numberValue(f)
}
