package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func sameSet(t *testing.T, got, want []mgl64.Vec3) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %d points %v", len(got), got, len(want), want)
	}
	for _, w := range want {
		found := false
		for _, g := range got {
			if g.ApproxEqualThreshold(w, 1e-9) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing %v in %v", w, got)
		}
	}
}

// TestFindCoordinatingAtoms_EveryVoid checks count, distinctness and
// ordering for every void in both tables.
func TestFindCoordinatingAtoms_EveryVoid(t *testing.T) {
	for _, family := range Families {
		cell, err := CellData(family)
		if err != nil {
			t.Fatalf("CellData(%v): %v", family, err)
		}
		for _, kind := range []VoidKind{Octahedral, Tetrahedral} {
			for i, v := range cell.Voids(kind) {
				count := kind.CoordinationCount()
				got := FindCoordinatingAtoms(v, family, count)
				if len(got) != count {
					t.Fatalf("%v %s void %d %v: got %d neighbors, want %d", family, kind, i, v, len(got), count)
				}
				prev := 0.0
				for j, p := range got {
					d := distance(p, v)
					if d <= 0 {
						t.Errorf("%v %s void %d: neighbor %v at distance %f", family, kind, i, p, d)
					}
					if d < prev {
						t.Errorf("%v %s void %d: distances not sorted at %d (%f < %f)", family, kind, i, j, d, prev)
					}
					prev = d
					for k := j + 1; k < len(got); k++ {
						if got[k].ApproxEqualThreshold(p, 1e-9) {
							t.Errorf("%v %s void %d: duplicate neighbor %v", family, kind, i, p)
						}
					}
				}
			}
		}
	}
}

func TestFindCoordinatingAtoms_KnownShells(t *testing.T) {
	tests := []struct {
		name     string
		family   CrystalFamily
		target   mgl64.Vec3
		count    int
		want     []mgl64.Vec3
		wantDist []float64
	}{
		{
			name:   "FCC body centre octahedral",
			family: FCC,
			target: mgl64.Vec3{0.5, 0.5, 0.5},
			count:  6,
			want: []mgl64.Vec3{
				{0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5},
				{0.5, 0.5, 1}, {0.5, 1, 0.5}, {1, 0.5, 0.5},
			},
			wantDist: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		},
		{
			name:   "FCC edge centre octahedral reaches outside the cell",
			family: FCC,
			target: mgl64.Vec3{0.5, 0, 0},
			count:  6,
			want: []mgl64.Vec3{
				{0, 0, 0}, {1, 0, 0},
				{0.5, 0.5, 0}, {0.5, -0.5, 0},
				{0.5, 0, 0.5}, {0.5, 0, -0.5},
			},
			wantDist: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		},
		{
			name:   "FCC tetrahedral",
			family: FCC,
			target: mgl64.Vec3{0.25, 0.25, 0.25},
			count:  4,
			want: []mgl64.Vec3{
				{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5},
			},
		},
		{
			name:   "BCC face tetrahedral mixes corner and body centre",
			family: BCC,
			target: mgl64.Vec3{0.5, 0.25, 0},
			count:  4,
			want: []mgl64.Vec3{
				{0, 0, 0}, {1, 0, 0}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5},
			},
		},
		{
			name:   "BCC face octahedral is distorted",
			family: BCC,
			target: mgl64.Vec3{0.5, 0.5, 0},
			count:  6,
			want: []mgl64.Vec3{
				{0.5, 0.5, 0.5}, {0.5, 0.5, -0.5},
				{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
			},
			wantDist: []float64{0.5, 0.5, math.Sqrt2 / 2, math.Sqrt2 / 2, math.Sqrt2 / 2, math.Sqrt2 / 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FindCoordinatingAtoms(tc.target, tc.family, tc.count)
			sameSet(t, got, tc.want)
			for i, d := range tc.wantDist {
				if i >= len(got) {
					break
				}
				if math.Abs(distance(got[i], tc.target)-d) > 1e-9 {
					t.Errorf("neighbor %d at distance %f, want %f", i, distance(got[i], tc.target), d)
				}
			}
		})
	}
}

func TestFindCoordinatingAtoms_BCCTetrahedralSubLattices(t *testing.T) {
	got := FindCoordinatingAtoms(mgl64.Vec3{0.5, 0.25, 0}, BCC, 4)
	corners, centres := 0, 0
	for _, p := range got {
		frac := p[0] - math.Floor(p[0])
		if frac == 0 {
			corners++
		} else {
			centres++
		}
	}
	if corners != 2 || centres != 2 {
		t.Errorf("got %d corner and %d body-centre neighbors, want 2 and 2", corners, centres)
	}
}

func TestFindCoordinatingAtoms_NeverPads(t *testing.T) {
	got := FindCoordinatingAtoms(mgl64.Vec3{0.5, 0.5, 0.5}, BCC, 100000)
	if len(got) == 0 || len(got) >= 100000 {
		t.Fatalf("got %d neighbors, want a short non-empty set", len(got))
	}
	if got := FindCoordinatingAtoms(mgl64.Vec3{}, FCC, 0); got != nil {
		t.Errorf("count 0 returned %v", got)
	}
	if got := FindCoordinatingAtoms(mgl64.Vec3{}, CrystalFamily(7), 4); got != nil {
		t.Errorf("unknown family returned %v", got)
	}
}

func TestFindCoordinatingAtoms_ExcludesCoincidentAtom(t *testing.T) {
	// Asking around an atom site returns its shell, not the atom itself.
	got := FindCoordinatingAtoms(mgl64.Vec3{0, 0, 0}, FCC, 12)
	for _, p := range got {
		if math.Abs(distance(p, mgl64.Vec3{})-math.Sqrt2/2) > 1e-9 {
			t.Errorf("FCC nearest shell atom %v not at a/sqrt(2)", p)
		}
	}
}
