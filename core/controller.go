package core

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMaxGridSize caps tiling; neighbour search is cubic in the grid size.
const DefaultMaxGridSize = 4

type cellKey struct {
	family   CrystalFamily
	gridSize int
}

// Controller owns the view state and the selection and turns them into
// scenes. Geometry is recomputed only when its inputs change: super-cells
// are memoized by (family, grid size) and meshes are built the first time a
// polyhedron mode asks for them. A Controller is not safe for concurrent use.
type Controller struct {
	state       ViewState
	maxGridSize int
	selection   SelectionState

	cells  map[cellKey]*SuperCell
	meshes map[cellKey]map[VoidKind][]*PolyhedronMesh
}

// NewController validates initial and prepares an empty cache.
func NewController(initial ViewState, maxGridSize int) (*Controller, error) {
	if err := initial.Validate(maxGridSize); err != nil {
		return nil, err
	}
	return &Controller{
		state:       initial,
		maxGridSize: maxGridSize,
		cells:       make(map[cellKey]*SuperCell),
		meshes:      make(map[cellKey]map[VoidKind][]*PolyhedronMesh),
	}, nil
}

// State returns a copy of the view state.
func (c *Controller) State() ViewState {
	return c.state
}

// Selection returns the current selection, if any.
func (c *Controller) Selection() (Selection, bool) {
	return c.selection.Current()
}

// SetFamily switches the crystal family and clears the selection.
func (c *Controller) SetFamily(f CrystalFamily) error {
	if !f.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownFamily, f)
	}
	c.state.Family = f
	c.selection.Clear()
	return nil
}

// SetGridSize retiles the scene. The selection is kept; it is matched by
// position against the new tiling.
func (c *Controller) SetGridSize(n int) error {
	next := c.state
	next.GridSize = n
	if err := next.Validate(c.maxGridSize); err != nil {
		return err
	}
	c.state = next
	return nil
}

// SetDisplayMode switches between dots and polyhedra.
func (c *Controller) SetDisplayMode(m DisplayMode) error {
	next := c.state
	next.DisplayMode = m
	if err := next.Validate(c.maxGridSize); err != nil {
		return err
	}
	c.state = next
	return nil
}

// ToggleCategory flips the visibility of one category and returns the new value.
func (c *Controller) ToggleCategory(cat Category) (bool, error) {
	switch cat {
	case CategoryAtoms:
		c.state.ShowAtoms = !c.state.ShowAtoms
		return c.state.ShowAtoms, nil
	case CategoryOctahedral:
		c.state.ShowOctahedral = !c.state.ShowOctahedral
		return c.state.ShowOctahedral, nil
	case CategoryTetrahedral:
		c.state.ShowTetrahedral = !c.state.ShowTetrahedral
		return c.state.ShowTetrahedral, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownCategory, string(cat))
}

// SelectVoid highlights the void at index among the current tiling's voids of kind.
func (c *Controller) SelectVoid(kind VoidKind, index int) (Selection, error) {
	sc, err := c.SuperCell()
	if err != nil {
		return Selection{}, err
	}
	v, err := sc.Void(kind, index)
	if err != nil {
		return Selection{}, err
	}
	c.selection.Select(v)
	sel, _ := c.selection.Current()
	return sel, nil
}

// SelectAtom clears the selection; atoms are not selectable themselves.
func (c *Controller) SelectAtom() {
	c.selection.Clear()
}

// SelectBackground clears the selection.
func (c *Controller) SelectBackground() {
	c.selection.Clear()
}

// SuperCell returns the memoized tiling for the current family and grid size.
func (c *Controller) SuperCell() (*SuperCell, error) {
	key := cellKey{c.state.Family, c.state.GridSize}
	if sc, ok := c.cells[key]; ok {
		return sc, nil
	}
	cell, err := CellData(key.family)
	if err != nil {
		return nil, err
	}
	sc, err := BuildSuperCell(cell, key.family, key.gridSize)
	if err != nil {
		return nil, err
	}
	c.cells[key] = sc
	return sc, nil
}

func (c *Controller) meshesFor(sc *SuperCell, kind VoidKind) []*PolyhedronMesh {
	key := cellKey{sc.Family, sc.GridSize}
	byKind, ok := c.meshes[key]
	if !ok {
		byKind = make(map[VoidKind][]*PolyhedronMesh)
		c.meshes[key] = byKind
	}
	if m, ok := byKind[kind]; ok {
		return m
	}

	voids := sc.Voids(kind)
	built := make([]*PolyhedronMesh, len(voids))
	for i, v := range voids {
		mesh, err := BuildPolyhedron(v.Neighbors)
		if err != nil {
			if errors.Is(err, ErrIncompletePairing) {
				log.Printf("geometry inconsistency at %s void %d %v: %v", kind, i, v.Position, err)
			}
			continue
		}
		built[i] = mesh
	}
	byKind[kind] = built
	return built
}

// Scene assembles the full description of the current state.
func (c *Controller) Scene() (*Scene, error) {
	sc, err := c.SuperCell()
	if err != nil {
		return nil, err
	}
	cell, err := CellData(c.state.Family)
	if err != nil {
		return nil, err
	}

	scene := &Scene{
		Type:   "scene",
		State:  c.state,
		Stats:  statsFor(cell),
		Atoms:  []AtomRecord{},
		Voids:  []VoidRecord{},
		Ghosts: c.selection.GhostAtoms(sc),
	}
	if scene.Ghosts == nil {
		scene.Ghosts = []mgl64.Vec3{}
	}
	if sel, ok := c.selection.Current(); ok {
		scene.Selection = &sel
	}

	if c.state.ShowAtoms {
		for _, a := range sc.Atoms {
			scene.Atoms = append(scene.Atoms, AtomRecord{
				Position:    a,
				Highlighted: c.selection.IsNeighbor(a),
			})
		}
	}

	for _, kind := range []VoidKind{Octahedral, Tetrahedral} {
		if !c.state.Visible(kind) {
			continue
		}
		var meshes []*PolyhedronMesh
		if c.state.DisplayMode.WantsMesh() {
			meshes = c.meshesFor(sc, kind)
		}
		for i, v := range sc.Voids(kind) {
			rec := VoidRecord{
				Kind:      v.Kind,
				Index:     v.Index,
				Position:  v.Position,
				Neighbors: v.Neighbors,
				Selected:  c.selection.IsSelected(v.Kind, v.Position),
			}
			if meshes != nil && meshes[i] != nil {
				rec.HasMesh = true
				rec.Mesh = meshes[i]
			}
			scene.Voids = append(scene.Voids, rec)
		}
	}

	return scene, nil
}

// Click applies a pick result the way a mouse click does: a void selects,
// an atom or empty space clears.
func (c *Controller) Click(hit Hit) error {
	switch hit.Target {
	case HitVoid:
		_, err := c.SelectVoid(hit.Kind, hit.Index)
		return err
	case HitAtom:
		c.SelectAtom()
	default:
		c.SelectBackground()
	}
	return nil
}
