package core

import (
	"math"
	"testing"
)

func TestGenerateMarkerSphere(t *testing.T) {
	tests := []struct {
		segments, rings int
		wantVerts       int
		wantIndices     int
	}{
		{8, 4, 9 * 5, 8 * 4 * 6},
		{32, 16, 33 * 17, 32 * 16 * 6},
		// Degenerate requests fall back to 32x16.
		{1, 0, 33 * 17, 32 * 16 * 6},
	}

	for _, tc := range tests {
		vertices, indices := GenerateMarkerSphere(tc.segments, tc.rings)
		if len(vertices) != tc.wantVerts*6 {
			t.Errorf("%dx%d: got %d floats, want %d", tc.segments, tc.rings, len(vertices), tc.wantVerts*6)
		}
		if len(indices) != tc.wantIndices {
			t.Errorf("%dx%d: got %d indices, want %d", tc.segments, tc.rings, len(indices), tc.wantIndices)
		}
		for _, idx := range indices {
			if int(idx) >= tc.wantVerts {
				t.Fatalf("%dx%d: index %d out of range", tc.segments, tc.rings, idx)
			}
		}
		for i := 0; i < len(vertices); i += 6 {
			x, y, z := float64(vertices[i]), float64(vertices[i+1]), float64(vertices[i+2])
			if r := math.Sqrt(x*x + y*y + z*z); math.Abs(r-1) > 1e-5 {
				t.Fatalf("vertex %d at radius %f", i/6, r)
			}
			if vertices[i+3] != vertices[i] || vertices[i+4] != vertices[i+1] || vertices[i+5] != vertices[i+2] {
				t.Fatalf("vertex %d normal differs from position", i/6)
			}
		}
	}
}
