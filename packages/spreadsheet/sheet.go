package spreadsheet

import (
	"github.com/cerque1/go-spreadsheet/packages/formula"
	"github.com/cerque1/go-spreadsheet/packages/position"
)

// Sheet is the single addressable grid: a sparse map
// from Position to *Cell plus the tight printable bound. Sheet is
// the only type that resolves Position to *Cell; cells never hold
// pointers to one another.
type Sheet struct {
	cells     map[position.Position]*Cell
	printable position.Size
}

// NewSheet returns an empty sheet with a (0, 0) printable size.
func NewSheet() *Sheet {
	return &Sheet{cells: make(map[position.Position]*Cell)}
}

// SetCell is atomic: on any error the sheet is
// left exactly as it was before the call. The cycle check runs before
// referenced positions are auto-materialized as empty cells, so a
// rejected formula leaves no new cells behind.
func (s *Sheet) SetCell(pos position.Position, text string) error {
	if !pos.Valid() {
		return &InvalidPositionError{Pos: pos}
	}

	next, err := classify(text)
	if err != nil {
		return err
	}

	var refs []position.Position
	if next.kind == KindFormula {
		refs = next.parsed.ReferencedCells()
		if s.wouldCycle(pos, refs) {
			return &CircularDependencyError{Pos: pos}
		}
		for _, ref := range refs {
			if !ref.Valid() || ref == pos {
				continue
			}
			if _, ok := s.cells[ref]; !ok {
				if err := s.SetCell(ref, ""); err != nil {
					return err
				}
			}
		}
	}

	if old, ok := s.cells[pos]; ok {
		s.detachOutgoing(pos, old)
		next.dependents = old.dependents
	}

	s.cells[pos] = next
	for _, ref := range refs {
		if !ref.Valid() {
			continue
		}
		next.dependsOn[ref] = struct{}{}
		s.cells[ref].dependents[pos] = struct{}{}
	}

	s.invalidateDependents(pos)
	s.growPrintable(pos)
	return nil
}

// GetCell returns the cell at pos, or nil if pos holds no cell. A
// syntactically invalid pos is reported as an error.
func (s *Sheet) GetCell(pos position.Position) (*Cell, error) {
	if !pos.Valid() {
		return nil, &InvalidPositionError{Pos: pos}
	}
	return s.cells[pos], nil
}

// GetValue is the read operation: the
// rendered value of the cell at pos, or the Empty rendering (number 0) if
// pos holds no cell.
func (s *Sheet) GetValue(pos position.Position) (Rendered, error) {
	cell, err := s.GetCell(pos)
	if err != nil {
		return Rendered{}, err
	}
	if cell == nil {
		return Rendered{Kind: RenderedNumber, Number: 0}, nil
	}
	return cell.render(s), nil
}

// ClearCell implements the clear operation: the position
// reverts to holding no cell (equivalent to Empty for reading purposes),
// its outgoing edges are torn down, and its former dependents are
// invalidated since their referenced cell's value just changed.
func (s *Sheet) ClearCell(pos position.Position) error {
	if !pos.Valid() {
		return &InvalidPositionError{Pos: pos}
	}
	cell, ok := s.cells[pos]
	if !ok {
		return nil
	}
	s.detachOutgoing(pos, cell)
	s.invalidateDependents(pos)
	delete(s.cells, pos)
	s.recomputePrintable()
	return nil
}

// GetPrintableSize reports the tight bounding rectangle containing every
// cell actually present in the sheet.
func (s *Sheet) GetPrintableSize() position.Size {
	return s.printable
}

// ValueAt implements formula.SheetReader: it is the read path a
// ParsedFormula uses to resolve its own cell references, applying the
// same coercion GetValue does for non-formula cells.
func (s *Sheet) ValueAt(pos position.Position) formula.Value {
	if !pos.Valid() {
		return formula.Value{Kind: formula.KindError, Err: formula.ErrRef}
	}
	cell, ok := s.cells[pos]
	if !ok {
		return formula.Value{Kind: formula.KindNumber, Number: 0}
	}
	return renderedToFormulaValue(cell.render(s))
}

func renderedToFormulaValue(r Rendered) formula.Value {
	switch r.Kind {
	case RenderedNumber:
		return formula.Value{Kind: formula.KindNumber, Number: r.Number}
	case RenderedError:
		return formula.Value{Kind: formula.KindError, Err: r.Err}
	default: // RenderedText: a formula cannot consume a non-numeric string
		return formula.Value{Kind: formula.KindError, Err: formula.ErrValue}
	}
}

// detachOutgoing removes cell's dependsOn edges from the sheet, clearing
// pos out of each referenced cell's dependents set.
func (s *Sheet) detachOutgoing(pos position.Position, cell *Cell) {
	for ref := range cell.dependsOn {
		if refCell, ok := s.cells[ref]; ok {
			delete(refCell.dependents, pos)
		}
	}
}

func (s *Sheet) growPrintable(pos position.Position) {
	if pos.Row+1 > s.printable.Rows {
		s.printable.Rows = pos.Row + 1
	}
	if pos.Col+1 > s.printable.Cols {
		s.printable.Cols = pos.Col + 1
	}
}

// recomputePrintable rescans every live cell to find the new tight bound
// after a clear: a clear can shrink the bound, and the only way to know
// the new bound is correct is to look at what remains.
func (s *Sheet) recomputePrintable() {
	var size position.Size
	for pos := range s.cells {
		if pos.Row+1 > size.Rows {
			size.Rows = pos.Row + 1
		}
		if pos.Col+1 > size.Cols {
			size.Cols = pos.Col + 1
		}
	}
	s.printable = size
}
