package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DedupTolerance is the distance under which two atoms are the same site.
const DedupTolerance = 1e-2

// VoidInstance is a void realized in the tiled super-cell.
type VoidInstance struct {
	Kind      VoidKind     `json:"kind"`
	Index     int          `json:"index"`
	Position  mgl64.Vec3   `json:"position"`
	Neighbors []mgl64.Vec3 `json:"neighbors"`
}

// SuperCell is the gridSize^3 tiling of one unit cell.
type SuperCell struct {
	Family   CrystalFamily
	GridSize int
	Atoms    []mgl64.Vec3
	OctVoids []VoidInstance
	TetVoids []VoidInstance

	atomKeys map[[3]int64]struct{}
}

// BuildSuperCell tiles cell over every offset 0 <= x,y,z < gridSize. Atoms
// shared between adjacent cells are merged on their 2-decimal rounded
// coordinates. Void neighbours come from the infinite lattice, so voids on
// the boundary may reference atoms outside the tiling.
func BuildSuperCell(cell *LatticeCellData, family CrystalFamily, gridSize int) (*SuperCell, error) {
	if !family.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFamily, family)
	}
	if gridSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, gridSize)
	}
	if cell == nil {
		return nil, fmt.Errorf("no cell data for %v", family)
	}

	sc := &SuperCell{
		Family:   family,
		GridSize: gridSize,
		atomKeys: make(map[[3]int64]struct{}),
	}

	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			for z := 0; z < gridSize; z++ {
				offset := mgl64.Vec3{float64(x), float64(y), float64(z)}

				for _, a := range cell.Atoms {
					sc.addAtom(a.Add(offset))
				}
				for _, v := range cell.OctahedralVoids {
					sc.OctVoids = append(sc.OctVoids, newVoidInstance(Octahedral, len(sc.OctVoids), v.Add(offset), family))
				}
				for _, v := range cell.TetrahedralVoids {
					sc.TetVoids = append(sc.TetVoids, newVoidInstance(Tetrahedral, len(sc.TetVoids), v.Add(offset), family))
				}
			}
		}
	}

	return sc, nil
}

func newVoidInstance(kind VoidKind, index int, pos mgl64.Vec3, family CrystalFamily) VoidInstance {
	return VoidInstance{
		Kind:      kind,
		Index:     index,
		Position:  pos,
		Neighbors: FindCoordinatingAtoms(pos, family, kind.CoordinationCount()),
	}
}

func roundedKey(p mgl64.Vec3) [3]int64 {
	return [3]int64{
		int64(math.Round(p[0] * 100)),
		int64(math.Round(p[1] * 100)),
		int64(math.Round(p[2] * 100)),
	}
}

func (sc *SuperCell) addAtom(p mgl64.Vec3) {
	key := roundedKey(p)
	if _, ok := sc.atomKeys[key]; ok {
		return
	}
	sc.atomKeys[key] = struct{}{}
	sc.Atoms = append(sc.Atoms, p)
}

// Voids returns the instances of kind.
func (sc *SuperCell) Voids(kind VoidKind) []VoidInstance {
	if kind == Octahedral {
		return sc.OctVoids
	}
	return sc.TetVoids
}

// Void looks up an instance by kind and index.
func (sc *SuperCell) Void(kind VoidKind, index int) (VoidInstance, error) {
	voids := sc.Voids(kind)
	if index < 0 || index >= len(voids) {
		return VoidInstance{}, fmt.Errorf("%w: %s %d of %d", ErrVoidIndex, kind, index, len(voids))
	}
	return voids[index], nil
}

// HasAtomNear reports whether any rendered atom lies within DedupTolerance of p.
func (sc *SuperCell) HasAtomNear(p mgl64.Vec3) bool {
	for _, a := range sc.Atoms {
		if distance(a, p) < DedupTolerance {
			return true
		}
	}
	return false
}
