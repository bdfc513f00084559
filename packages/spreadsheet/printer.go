package spreadsheet

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cerque1/go-spreadsheet/packages/position"
)

// PrintValues writes the sheet's printable rectangle to w, one row per
// line, cells tab-separated, each cell rendered through GetValue:
// numbers in shortest round-trip form, text verbatim, formula
// errors as their mnemonic. Absent cells render as an empty field.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.printRows(w, func(pos position.Position) string {
		cell, ok := s.cells[pos]
		if !ok {
			return ""
		}
		return renderedString(cell.render(s))
	})
}

// PrintTexts writes the sheet's printable rectangle to w, one row per
// line, cells tab-separated, each cell rendered as its canonical text
// form: the raw text literal or "=" plus the formula's
// canonical rendering. Absent cells render as an empty field.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.printRows(w, func(pos position.Position) string {
		cell, ok := s.cells[pos]
		if !ok {
			return ""
		}
		return cell.Text()
	})
}

func (s *Sheet) printRows(w io.Writer, field func(position.Position) string) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < s.printable.Rows; row++ {
		for col := 0; col < s.printable.Cols; col++ {
			if col > 0 {
				if _, err := bw.WriteRune('\t'); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(field(position.Position{Row: row, Col: col})); err != nil {
				return err
			}
		}
		if _, err := bw.WriteRune('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func renderedString(r Rendered) string {
	switch r.Kind {
	case RenderedNumber:
		return strconv.FormatFloat(r.Number, 'f', -1, 64)
	case RenderedText:
		return r.Text
	case RenderedError:
		return r.Err.String()
	}
	return ""
}
