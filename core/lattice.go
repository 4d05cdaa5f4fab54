package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// LatticeCellData holds the fixed contents of one unit cell of a family.
// The effective counts are amortized over neighbouring cells and are
// constants, not derived from the tables.
type LatticeCellData struct {
	Family                    CrystalFamily `json:"family"`
	Atoms                     []mgl64.Vec3  `json:"atoms"`
	OctahedralVoids           []mgl64.Vec3  `json:"octahedralVoids"`
	TetrahedralVoids          []mgl64.Vec3  `json:"tetrahedralVoids"`
	Description               string        `json:"description"`
	PackingEfficiency         string        `json:"packingEfficiency"`
	CoordinationNumber        int           `json:"coordinationNumber"`
	EffectiveOctahedralCount  int           `json:"effectiveOctahedralCount"`
	EffectiveTetrahedralCount int           `json:"effectiveTetrahedralCount"`
}

// Voids returns the base void table for kind.
func (d *LatticeCellData) Voids(kind VoidKind) []mgl64.Vec3 {
	if kind == Octahedral {
		return d.OctahedralVoids
	}
	return d.TetrahedralVoids
}

// EffectiveCount returns the amortized per-cell count for kind.
func (d *LatticeCellData) EffectiveCount(kind VoidKind) int {
	if kind == Octahedral {
		return d.EffectiveOctahedralCount
	}
	return d.EffectiveTetrahedralCount
}

var structures = map[CrystalFamily]*LatticeCellData{
	FCC: fccCell(),
	BCC: bccCell(),
}

// CellData returns the read-only table for family. Callers must not mutate it.
func CellData(family CrystalFamily) (*LatticeCellData, error) {
	d, ok := structures[family]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, family)
	}
	return d, nil
}

func cornerAtoms() []mgl64.Vec3 {
	atoms := make([]mgl64.Vec3, 0, 8)
	for x := 0.0; x <= 1; x++ {
		for y := 0.0; y <= 1; y++ {
			for z := 0.0; z <= 1; z++ {
				atoms = append(atoms, mgl64.Vec3{x, y, z})
			}
		}
	}
	return atoms
}

func fccCell() *LatticeCellData {
	atoms := cornerAtoms()
	atoms = append(atoms,
		mgl64.Vec3{0.5, 0.5, 0}, mgl64.Vec3{0.5, 0, 0.5}, mgl64.Vec3{0, 0.5, 0.5},
		mgl64.Vec3{0.5, 0.5, 1}, mgl64.Vec3{0.5, 1, 0.5}, mgl64.Vec3{1, 0.5, 0.5},
	)

	// Body centre plus the 12 edge centres.
	oct := []mgl64.Vec3{
		{0.5, 0.5, 0.5},
		{0.5, 0, 0}, {0, 0.5, 0}, {0, 0, 0.5},
		{0.5, 1, 0}, {1, 0.5, 0}, {1, 0, 0.5},
		{0, 0.5, 1}, {0, 1, 0.5}, {0.5, 0, 1},
		{1, 1, 0.5}, {1, 0.5, 1}, {0.5, 1, 1},
	}

	// Centres of the 8 cubelets.
	var tet []mgl64.Vec3
	for _, z := range []float64{0.25, 0.75} {
		for _, y := range []float64{0.25, 0.75} {
			for _, x := range []float64{0.25, 0.75} {
				tet = append(tet, mgl64.Vec3{x, y, z})
			}
		}
	}

	return &LatticeCellData{
		Family:                    FCC,
		Atoms:                     atoms,
		OctahedralVoids:           oct,
		TetrahedralVoids:          tet,
		Description:               "面心立方 (FCC): 原子位于立方体的角和每个面的中心。它是最紧密堆积结构之一。",
		PackingEfficiency:         "74%",
		CoordinationNumber:        12,
		EffectiveOctahedralCount:  4,
		EffectiveTetrahedralCount: 8,
	}
}

func bccCell() *LatticeCellData {
	atoms := append(cornerAtoms(), mgl64.Vec3{0.5, 0.5, 0.5})

	oct := []mgl64.Vec3{
		{0.5, 0.5, 0}, {0.5, 0.5, 1},
		{0.5, 0, 0.5}, {0.5, 1, 0.5},
		{0, 0.5, 0.5}, {1, 0.5, 0.5},
	}
	for _, a := range []float64{0, 1} {
		for _, b := range []float64{0, 1} {
			oct = append(oct, mgl64.Vec3{0.5, a, b})
		}
	}
	for _, a := range []float64{0, 1} {
		for _, b := range []float64{0, 1} {
			oct = append(oct, mgl64.Vec3{a, 0.5, b})
		}
	}
	for _, a := range []float64{0, 1} {
		for _, b := range []float64{0, 1} {
			oct = append(oct, mgl64.Vec3{a, b, 0.5})
		}
	}

	// Four sites on each of the six faces.
	var tet []mgl64.Vec3
	for _, z := range []float64{0, 1} {
		tet = append(tet, mgl64.Vec3{0.5, 0.25, z}, mgl64.Vec3{0.5, 0.75, z}, mgl64.Vec3{0.25, 0.5, z}, mgl64.Vec3{0.75, 0.5, z})
	}
	for _, y := range []float64{0, 1} {
		tet = append(tet, mgl64.Vec3{0.5, y, 0.25}, mgl64.Vec3{0.5, y, 0.75}, mgl64.Vec3{0.25, y, 0.5}, mgl64.Vec3{0.75, y, 0.5})
	}
	for _, x := range []float64{0, 1} {
		tet = append(tet, mgl64.Vec3{x, 0.5, 0.25}, mgl64.Vec3{x, 0.5, 0.75}, mgl64.Vec3{x, 0.25, 0.5}, mgl64.Vec3{x, 0.75, 0.5})
	}

	return &LatticeCellData{
		Family:                    BCC,
		Atoms:                     atoms,
		OctahedralVoids:           oct,
		TetrahedralVoids:          tet,
		Description:               "体心立方 (BCC): 原子位于立方体的角和体中心。它的堆积密度略低于FCC。",
		PackingEfficiency:         "68%",
		CoordinationNumber:        8,
		EffectiveOctahedralCount:  6,
		EffectiveTetrahedralCount: 12,
	}
}
