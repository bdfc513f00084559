package spreadsheet

import "github.com/cerque1/go-spreadsheet/packages/position"

// wouldCycle answers the cycle check on assignment: would wiring pos's
// outgoing edges to refs ever let a depth-first walk over outgoing edges
// reach pos itself? refs are pos's own tentative edges; every further
// step of the walk follows the already-committed dependsOn of whatever
// cell the sheet currently has at a given position. Ported from
// original_source/spreadsheet/cell.cpp's CheckingCyclicDependenceRec,
// simplified: since pos's own edges are not committed yet, any path that
// reaches pos necessarily closes a cycle through the new edge set.
func (s *Sheet) wouldCycle(pos position.Position, refs []position.Position) bool {
	visited := make(map[position.Position]struct{})

	var visit func(p position.Position) bool
	visit = func(p position.Position) bool {
		if p == pos {
			return true
		}
		if _, ok := visited[p]; ok {
			return false
		}
		visited[p] = struct{}{}
		cell, ok := s.cells[p]
		if !ok {
			return false
		}
		for dep := range cell.dependsOn {
			if visit(dep) {
				return true
			}
		}
		return false
	}

	for _, ref := range refs {
		if visit(ref) {
			return true
		}
	}
	return false
}

// invalidateDependents runs a depth-first traversal
// over outgoing "dependents" edges starting at pos, clearing the
// memoized result of every formula cell visited. A visited set bounds the
// walk to linear work even though acyclicity alone would already
// guarantee termination (kept as a defensive measure and to avoid
// redundant work). Ported from
// original_source/spreadsheet/cell.cpp's CacheInvalidationRec.
func (s *Sheet) invalidateDependents(pos position.Position) {
	visited := make(map[position.Position]struct{})

	var walk func(p position.Position)
	walk = func(p position.Position) {
		if _, ok := visited[p]; ok {
			return
		}
		visited[p] = struct{}{}
		cell, ok := s.cells[p]
		if !ok {
			return
		}
		for dependent := range cell.dependents {
			if dcell, ok := s.cells[dependent]; ok {
				dcell.invalidate()
			}
			walk(dependent)
		}
	}

	walk(pos)
}
