package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ViewState is every user-controlled input of a scene pass.
type ViewState struct {
	Family          CrystalFamily `json:"family"`
	GridSize        int           `json:"gridSize"`
	DisplayMode     DisplayMode   `json:"displayMode"`
	ShowAtoms       bool          `json:"showAtoms"`
	ShowOctahedral  bool          `json:"showOctahedral"`
	ShowTetrahedral bool          `json:"showTetrahedral"`
}

// DefaultViewState matches the initial screen: one FCC cell, dots, atoms
// and octahedral voids visible.
func DefaultViewState() ViewState {
	return ViewState{
		Family:         FCC,
		GridSize:       1,
		DisplayMode:    DisplayDot,
		ShowAtoms:      true,
		ShowOctahedral: true,
	}
}

// Validate rejects configurations the geometry cannot run with.
// maxGridSize <= 0 disables the upper bound.
func (v ViewState) Validate(maxGridSize int) error {
	if !v.Family.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownFamily, v.Family)
	}
	if v.GridSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidGridSize, v.GridSize)
	}
	if maxGridSize > 0 && v.GridSize > maxGridSize {
		return fmt.Errorf("%w: got %d, max %d", ErrInvalidGridSize, v.GridSize, maxGridSize)
	}
	switch v.DisplayMode {
	case DisplayDot, DisplayWireframe, DisplaySolid:
	default:
		return fmt.Errorf("%w: %v", ErrUnknownDisplayMode, v.DisplayMode)
	}
	return nil
}

// Visible reports whether kind is currently shown.
func (v ViewState) Visible(kind VoidKind) bool {
	if kind == Octahedral {
		return v.ShowOctahedral
	}
	return v.ShowTetrahedral
}

// AtomRecord is one rendered atom.
type AtomRecord struct {
	Position    mgl64.Vec3 `json:"position"`
	Highlighted bool       `json:"highlighted"`
}

// VoidRecord is one rendered void. Mesh is nil in dot mode and whenever
// the polyhedron could not be built; the renderer then draws a point.
type VoidRecord struct {
	Kind      VoidKind        `json:"kind"`
	Index     int             `json:"index"`
	Position  mgl64.Vec3      `json:"position"`
	Neighbors []mgl64.Vec3    `json:"neighbors"`
	HasMesh   bool            `json:"hasMesh"`
	Mesh      *PolyhedronMesh `json:"mesh,omitempty"`
	Selected  bool            `json:"selected"`
}

// CellStats are the per-cell figures shown beside the scene.
type CellStats struct {
	Description               string `json:"description"`
	PackingEfficiency         string `json:"packingEfficiency"`
	CoordinationNumber        int    `json:"coordinationNumber"`
	EffectiveOctahedralCount  int    `json:"effectiveOctahedralCount"`
	EffectiveTetrahedralCount int    `json:"effectiveTetrahedralCount"`
}

// Scene is the complete description handed to a renderer for one pass.
type Scene struct {
	Type      string       `json:"type"`
	State     ViewState    `json:"state"`
	Stats     CellStats    `json:"stats"`
	Atoms     []AtomRecord `json:"atoms"`
	Voids     []VoidRecord `json:"voids"`
	Ghosts    []mgl64.Vec3 `json:"ghosts"`
	Selection *Selection   `json:"selection"`
}

func statsFor(cell *LatticeCellData) CellStats {
	return CellStats{
		Description:               cell.Description,
		PackingEfficiency:         cell.PackingEfficiency,
		CoordinationNumber:        cell.CoordinationNumber,
		EffectiveOctahedralCount:  cell.EffectiveOctahedralCount,
		EffectiveTetrahedralCount: cell.EffectiveTetrahedralCount,
	}
}
