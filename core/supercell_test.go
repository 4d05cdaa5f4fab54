package core

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBuildSuperCell_AtomCounts(t *testing.T) {
	// Closed forms: corners (g+1)^3, FCC face centres 3*g^2*(g+1), BCC body centres g^3.
	tests := []struct {
		family    CrystalFamily
		gridSize  int
		wantAtoms int
		wantOct   int
		wantTet   int
	}{
		{FCC, 1, 14, 13, 8},
		{FCC, 2, 63, 104, 64},
		{FCC, 3, 172, 351, 216},
		{BCC, 1, 9, 18, 24},
		{BCC, 2, 35, 144, 192},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%v grid %d", tc.family, tc.gridSize), func(t *testing.T) {
			cell, _ := CellData(tc.family)
			sc, err := BuildSuperCell(cell, tc.family, tc.gridSize)
			if err != nil {
				t.Fatalf("BuildSuperCell: %v", err)
			}
			if len(sc.Atoms) != tc.wantAtoms {
				t.Errorf("got %d atoms, want %d", len(sc.Atoms), tc.wantAtoms)
			}
			if len(sc.OctVoids) != tc.wantOct {
				t.Errorf("got %d octahedral voids, want %d", len(sc.OctVoids), tc.wantOct)
			}
			if len(sc.TetVoids) != tc.wantTet {
				t.Errorf("got %d tetrahedral voids, want %d", len(sc.TetVoids), tc.wantTet)
			}
			for i := range sc.Atoms {
				for j := i + 1; j < len(sc.Atoms); j++ {
					if distance(sc.Atoms[i], sc.Atoms[j]) < DedupTolerance {
						t.Fatalf("atoms %d %v and %d %v coincide", i, sc.Atoms[i], j, sc.Atoms[j])
					}
				}
			}
			for _, kind := range []VoidKind{Octahedral, Tetrahedral} {
				for i, v := range sc.Voids(kind) {
					if v.Index != i || v.Kind != kind {
						t.Errorf("%s void %d labelled %s %d", kind, i, v.Kind, v.Index)
					}
					if len(v.Neighbors) != kind.CoordinationCount() {
						t.Errorf("%s void %d has %d neighbors", kind, i, len(v.Neighbors))
					}
				}
			}
		})
	}
}

func TestBuildSuperCell_RejectsConfiguration(t *testing.T) {
	cell, _ := CellData(FCC)
	tests := []struct {
		name     string
		family   CrystalFamily
		gridSize int
		want     error
	}{
		{"zero grid", FCC, 0, ErrInvalidGridSize},
		{"negative grid", FCC, -2, ErrInvalidGridSize},
		{"unknown family", CrystalFamily(9), 1, ErrUnknownFamily},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildSuperCell(cell, tc.family, tc.gridSize); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBuildSuperCell_BoundaryVoidsUseInfiniteLattice(t *testing.T) {
	cell, _ := CellData(FCC)
	sc, err := BuildSuperCell(cell, FCC, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Octahedral void 1 is the edge centre (0.5, 0, 0).
	v, err := sc.Void(Octahedral, 1)
	if err != nil {
		t.Fatal(err)
	}
	outside := 0
	for _, n := range v.Neighbors {
		if !sc.HasAtomNear(n) {
			outside++
		}
	}
	if outside != 2 {
		t.Errorf("edge centre has %d neighbors outside the cell, want 2", outside)
	}

	if _, err := sc.Void(Tetrahedral, 8); !errors.Is(err, ErrVoidIndex) {
		t.Errorf("Void(tet, 8) err = %v, want ErrVoidIndex", err)
	}
}

func canonical(points []mgl64.Vec3) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = fmt.Sprintf("%.4f,%.4f,%.4f", p[0], p[1], p[2])
	}
	sort.Strings(out)
	return out
}

func canonicalVoids(voids []VoidInstance) []string {
	var out []string
	for _, v := range voids {
		out = append(out, fmt.Sprintf("%s@%v:%v", v.Kind, canonical([]mgl64.Vec3{v.Position}), canonical(v.Neighbors)))
	}
	sort.Strings(out)
	return out
}

func TestBuildSuperCell_Idempotent(t *testing.T) {
	for _, family := range Families {
		cell, _ := CellData(family)
		a, err := BuildSuperCell(cell, family, 2)
		if err != nil {
			t.Fatal(err)
		}
		b, err := BuildSuperCell(cell, family, 2)
		if err != nil {
			t.Fatal(err)
		}
		if fmt.Sprint(canonical(a.Atoms)) != fmt.Sprint(canonical(b.Atoms)) {
			t.Errorf("%v: atom sets differ between builds", family)
		}
		for _, kind := range []VoidKind{Octahedral, Tetrahedral} {
			if fmt.Sprint(canonicalVoids(a.Voids(kind))) != fmt.Sprint(canonicalVoids(b.Voids(kind))) {
				t.Errorf("%v: %s void sets differ between builds", family, kind)
			}
		}
	}
}

func TestCellData_Tables(t *testing.T) {
	tests := []struct {
		family  CrystalFamily
		atoms   int
		oct     int
		tet     int
		coord   int
		effOct  int
		effTet  int
		packing string
	}{
		{FCC, 14, 13, 8, 12, 4, 8, "74%"},
		{BCC, 9, 18, 24, 8, 6, 12, "68%"},
	}
	for _, tc := range tests {
		t.Run(tc.family.String(), func(t *testing.T) {
			d, err := CellData(tc.family)
			if err != nil {
				t.Fatal(err)
			}
			if len(d.Atoms) != tc.atoms || len(d.OctahedralVoids) != tc.oct || len(d.TetrahedralVoids) != tc.tet {
				t.Errorf("table sizes %d/%d/%d, want %d/%d/%d",
					len(d.Atoms), len(d.OctahedralVoids), len(d.TetrahedralVoids), tc.atoms, tc.oct, tc.tet)
			}
			if d.CoordinationNumber != tc.coord || d.PackingEfficiency != tc.packing {
				t.Errorf("stats %d %s, want %d %s", d.CoordinationNumber, d.PackingEfficiency, tc.coord, tc.packing)
			}
			if d.EffectiveCount(Octahedral) != tc.effOct || d.EffectiveCount(Tetrahedral) != tc.effTet {
				t.Errorf("effective counts %d/%d, want %d/%d",
					d.EffectiveCount(Octahedral), d.EffectiveCount(Tetrahedral), tc.effOct, tc.effTet)
			}
		})
	}
	if _, err := CellData(CrystalFamily(5)); !errors.Is(err, ErrUnknownFamily) {
		t.Errorf("CellData(5) err = %v", err)
	}
}
