package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CrystalFamily selects the periodic generator rule and the fixed cell tables.
type CrystalFamily int

const (
	FCC CrystalFamily = iota
	BCC
)

// Families lists every supported family in display order.
var Families = []CrystalFamily{FCC, BCC}

func (f CrystalFamily) String() string {
	switch f {
	case FCC:
		return "FCC"
	case BCC:
		return "BCC"
	default:
		return fmt.Sprintf("CrystalFamily(%d)", int(f))
	}
}

// Valid reports whether f is one of the supported families.
func (f CrystalFamily) Valid() bool {
	return f == FCC || f == BCC
}

// ParseFamily accepts "FCC"/"BCC" in any case.
func ParseFamily(s string) (CrystalFamily, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FCC":
		return FCC, nil
	case "BCC":
		return BCC, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

func (f CrystalFamily) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFamily, int(f))
	}
	return json.Marshal(f.String())
}

func (f *CrystalFamily) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFamily(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// VoidKind distinguishes the two interstitial site types.
type VoidKind int

const (
	Octahedral VoidKind = iota
	Tetrahedral
)

func (k VoidKind) String() string {
	switch k {
	case Octahedral:
		return "oct"
	case Tetrahedral:
		return "tet"
	default:
		return fmt.Sprintf("VoidKind(%d)", int(k))
	}
}

// CoordinationCount is the number of atoms surrounding a void of this kind.
func (k VoidKind) CoordinationCount() int {
	if k == Octahedral {
		return 6
	}
	return 4
}

func ParseVoidKind(s string) (VoidKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "oct", "octahedral":
		return Octahedral, nil
	case "tet", "tetrahedral":
		return Tetrahedral, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVoidKind, s)
}

func (k VoidKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *VoidKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseVoidKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// DisplayMode is how void sites are drawn.
type DisplayMode int

const (
	DisplayDot DisplayMode = iota
	DisplayWireframe
	DisplaySolid
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayDot:
		return "dot"
	case DisplayWireframe:
		return "wireframe"
	case DisplaySolid:
		return "solid"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// WantsMesh reports whether voids are drawn as polyhedra in this mode.
func (m DisplayMode) WantsMesh() bool {
	return m == DisplayWireframe || m == DisplaySolid
}

// Next cycles dot -> wireframe -> solid -> dot.
func (m DisplayMode) Next() DisplayMode {
	switch m {
	case DisplayDot:
		return DisplayWireframe
	case DisplayWireframe:
		return DisplaySolid
	default:
		return DisplayDot
	}
}

func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dot", "point":
		return DisplayDot, nil
	case "wireframe":
		return DisplayWireframe, nil
	case "solid":
		return DisplaySolid, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDisplayMode, s)
}

func (m DisplayMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *DisplayMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDisplayMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Category is a visibility toggle group.
type Category string

const (
	CategoryAtoms       Category = "atoms"
	CategoryOctahedral  Category = "octahedral"
	CategoryTetrahedral Category = "tetrahedral"
)

func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryAtoms, CategoryOctahedral, CategoryTetrahedral:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
