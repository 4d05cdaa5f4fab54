package core

import (
	"math"
)

// GenerateMarkerSphere builds a unit-radius UV sphere for instanced atom
// and void markers. Vertices are interleaved position and normal (6 floats);
// on a unit sphere they coincide, so the normal half is the position again.
func GenerateMarkerSphere(segments, rings int) ([]float32, []uint32) {
	if segments < 3 {
		segments = 32
	}
	if rings < 2 {
		rings = 16
	}

	vertices := make([]float32, 0, (rings+1)*(segments+1)*6)
	indices := make([]uint32, 0, rings*segments*6)

	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * math.Pi / float64(rings)
		sinTheta, cosTheta := math.Sincos(theta)

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2.0 * math.Pi / float64(segments)
			sinPhi, cosPhi := math.Sincos(phi)

			x := float32(cosPhi * sinTheta)
			y := float32(cosTheta)
			z := float32(sinPhi * sinTheta)
			vertices = append(vertices, x, y, z, x, y, z)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1
			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return vertices, indices
}
