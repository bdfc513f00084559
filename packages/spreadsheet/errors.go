package spreadsheet

import (
	"fmt"

	"github.com/cerque1/go-spreadsheet/packages/position"
)

// InvalidPositionError is raised when an operation receives a Position
// failing Position.Valid(). No sheet state is changed.
type InvalidPositionError struct {
	Pos position.Position
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("spreadsheet: invalid position %s", e.Pos)
}

// FormulaParseError is raised when "="-prefixed text fails the formula
// grammar. No sheet state is changed.
type FormulaParseError struct {
	Text string
	Err  error
}

func (e *FormulaParseError) Error() string {
	return fmt.Sprintf("spreadsheet: invalid formula %q: %v", e.Text, e.Err)
}

func (e *FormulaParseError) Unwrap() error {
	return e.Err
}

// CircularDependencyError is raised when committing a SetCell would close
// a cycle in the dependency graph. No sheet state is changed.
type CircularDependencyError struct {
	Pos position.Position
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("spreadsheet: circular dependency at %s", e.Pos)
}
