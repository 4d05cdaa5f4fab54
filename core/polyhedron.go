package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// PolyhedronMesh is a coordination polyhedron ready for upload: vertex
// positions plus a flat list of triangle indices. Winding is not
// guaranteed to face outward, so solid fills are drawn double sided.
type PolyhedronMesh struct {
	Vertices []mgl64.Vec3 `json:"vertices"`
	Indices  []int        `json:"indices"`
	// Axes holds the antipodal vertex pairs of an octahedron; empty for tetrahedra.
	Axes [][2]int `json:"axes,omitempty"`
}

var tetrahedronFaces = []int{
	0, 1, 2,
	0, 1, 3,
	1, 2, 3,
	2, 0, 3,
}

// BuildPolyhedron turns a coordinating atom set into a mesh. Four points
// give a tetrahedron, six an octahedron whose topology is inferred by
// pairing opposite vertices. Any other count is ErrMalformedNeighborSet.
func BuildPolyhedron(neighbors []mgl64.Vec3) (*PolyhedronMesh, error) {
	switch len(neighbors) {
	case 4:
		return &PolyhedronMesh{
			Vertices: append([]mgl64.Vec3(nil), neighbors...),
			Indices:  append([]int(nil), tetrahedronFaces...),
		}, nil
	case 6:
		axes := pairAntipodes(neighbors)
		if len(axes) != 3 {
			return nil, fmt.Errorf("%w: got %d pairs", ErrIncompletePairing, len(axes))
		}
		indices := make([]int, 0, 24)
		for _, a := range axes[0] {
			for _, b := range axes[1] {
				for _, c := range axes[2] {
					indices = append(indices, a, b, c)
				}
			}
		}
		return &PolyhedronMesh{
			Vertices: append([]mgl64.Vec3(nil), neighbors...),
			Indices:  indices,
			Axes:     axes,
		}, nil
	}
	return nil, fmt.Errorf("%w: got %d", ErrMalformedNeighborSet, len(neighbors))
}

// pairAntipodes greedily matches each unpaired vertex, in index order, with
// the farthest vertex still unpaired. For the two cubic families this
// recovers the three diagonals of the octahedron; it is not a general
// convex hull.
func pairAntipodes(points []mgl64.Vec3) [][2]int {
	used := make([]bool, len(points))
	var pairs [][2]int
	for i := range points {
		if used[i] {
			continue
		}
		partner := -1
		maxD := -1.0
		for j := i + 1; j < len(points); j++ {
			if used[j] {
				continue
			}
			if d := distance(points[i], points[j]); d > maxD {
				maxD = d
				partner = j
			}
		}
		if partner != -1 {
			pairs = append(pairs, [2]int{i, partner})
			used[i] = true
			used[partner] = true
		}
	}
	return pairs
}

// FaceCount is the number of triangles.
func (m *PolyhedronMesh) FaceCount() int {
	return len(m.Indices) / 3
}

// Face returns the vertex indices of triangle i.
func (m *PolyhedronMesh) Face(i int) [3]int {
	return [3]int{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// FaceNormal is the unit normal implied by the winding of triangle i.
func (m *PolyhedronMesh) FaceNormal(i int) mgl64.Vec3 {
	f := m.Face(i)
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl64.Vec3{}
	}
	return n.Normalize()
}

// VertexNormals accumulates area weighted face normals per vertex.
func (m *PolyhedronMesh) VertexNormals() []mgl64.Vec3 {
	normals := make([]mgl64.Vec3, len(m.Vertices))
	for i := 0; i < m.FaceCount(); i++ {
		f := m.Face(i)
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		for _, v := range f {
			normals[v] = normals[v].Add(n)
		}
	}
	for i, n := range normals {
		if n.Len() > 0 {
			normals[i] = n.Normalize()
		}
	}
	return normals
}

// Edges lists each undirected triangle edge once, lower index first.
func (m *PolyhedronMesh) Edges() [][2]int {
	seen := make(map[[2]int]bool)
	var edges [][2]int
	for i := 0; i < m.FaceCount(); i++ {
		f := m.Face(i)
		for k := 0; k < 3; k++ {
			a, b := f[k], f[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if !seen[key] {
				seen[key] = true
				edges = append(edges, key)
			}
		}
	}
	return edges
}
