package core

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Selection identifies the highlighted void. It is a copy, so it survives
// the rebuild of the super-cell it was picked from.
type Selection struct {
	Kind      VoidKind     `json:"kind"`
	Index     int          `json:"index"`
	Position  mgl64.Vec3   `json:"position"`
	Neighbors []mgl64.Vec3 `json:"neighbors"`
}

// Label formats the position to two decimals, e.g. "(0.50, 0.25, 0.00)".
func (s Selection) Label() string {
	parts := make([]string, 3)
	for i := range parts {
		parts[i] = fmt.Sprintf("%.2f", s.Position[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// SelectionState holds at most one selected void.
type SelectionState struct {
	active *Selection
}

// Select replaces the current selection with v.
func (s *SelectionState) Select(v VoidInstance) {
	s.active = &Selection{
		Kind:      v.Kind,
		Index:     v.Index,
		Position:  v.Position,
		Neighbors: append([]mgl64.Vec3(nil), v.Neighbors...),
	}
}

// Clear drops the selection.
func (s *SelectionState) Clear() {
	s.active = nil
}

// Current returns the selection and whether there is one.
func (s *SelectionState) Current() (Selection, bool) {
	if s.active == nil {
		return Selection{}, false
	}
	return *s.active, true
}

// IsSelected reports whether the void of kind at pos is the selected one.
func (s *SelectionState) IsSelected(kind VoidKind, pos mgl64.Vec3) bool {
	return s.active != nil && s.active.Kind == kind && distance(s.active.Position, pos) < DedupTolerance
}

// IsNeighbor reports whether an atom at pos coordinates the selected void.
func (s *SelectionState) IsNeighbor(pos mgl64.Vec3) bool {
	if s.active == nil {
		return false
	}
	for _, n := range s.active.Neighbors {
		if distance(n, pos) < DedupTolerance {
			return true
		}
	}
	return false
}

// GhostAtoms derives the neighbours of the selection that have no rendered
// atom in sc. They live in a periodic image outside the tile.
func (s *SelectionState) GhostAtoms(sc *SuperCell) []mgl64.Vec3 {
	if s.active == nil || sc == nil {
		return nil
	}
	var ghosts []mgl64.Vec3
	for _, n := range s.active.Neighbors {
		if !sc.HasAtomNear(n) {
			ghosts = append(ghosts, n)
		}
	}
	return ghosts
}
