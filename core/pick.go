package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Marker radii in lattice units.
const (
	AtomRadius          = 0.15
	OctahedralDotScale  = 0.6
	TetrahedralDotScale = 0.4
	HighlightScale      = 1.15
)

// DotRadius is the radius of a void drawn as a point marker.
func DotRadius(kind VoidKind) float64 {
	if kind == Octahedral {
		return AtomRadius * OctahedralDotScale
	}
	return AtomRadius * TetrahedralDotScale
}

// HitTarget says what a pick ray struck first.
type HitTarget int

const (
	HitNothing HitTarget = iota
	HitAtom
	HitVoid
)

// Hit is the result of Pick.
type Hit struct {
	Target   HitTarget
	Kind     VoidKind
	Index    int
	Distance float64
}

// Pick casts a ray through the scene and returns the nearest atom or void.
// Voids with a mesh are hit on their faces, others on their dot marker.
// Ghost atoms are not pickable.
func Pick(scene *Scene, origin, dir mgl64.Vec3) Hit {
	best := Hit{Target: HitNothing, Distance: math.Inf(1)}
	if scene == nil || dir.Len() == 0 {
		return best
	}
	dir = dir.Normalize()

	for _, a := range scene.Atoms {
		if t, ok := raySphereIntersect(origin, dir, a.Position, AtomRadius); ok && t < best.Distance {
			best = Hit{Target: HitAtom, Distance: t}
		}
	}
	for _, v := range scene.Voids {
		var t float64
		var ok bool
		if v.Mesh != nil {
			t, ok = rayMeshIntersect(origin, dir, v.Mesh)
		} else {
			t, ok = raySphereIntersect(origin, dir, v.Position, DotRadius(v.Kind))
		}
		if ok && t < best.Distance {
			best = Hit{Target: HitVoid, Kind: v.Kind, Index: v.Index, Distance: t}
		}
	}
	return best
}

// raySphereIntersect returns the nearest non-negative ray parameter that
// meets the sphere. dir must be unit length.
func raySphereIntersect(origin, dir, center mgl64.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	b := 2.0 * oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	discriminant := b*b - 4*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t := (-b - sqrtD) / 2.0
	if t < 0 {
		t = (-b + sqrtD) / 2.0
		if t < 0 {
			return 0, false
		}
	}
	return t, true
}

// rayMeshIntersect tests every triangle with Möller–Trumbore, both sides.
func rayMeshIntersect(origin, dir mgl64.Vec3, mesh *PolyhedronMesh) (float64, bool) {
	const eps = 1e-9
	best := math.Inf(1)
	for i := 0; i < mesh.FaceCount(); i++ {
		f := mesh.Face(i)
		v0, v1, v2 := mesh.Vertices[f[0]], mesh.Vertices[f[1]], mesh.Vertices[f[2]]
		e1 := v1.Sub(v0)
		e2 := v2.Sub(v0)
		p := dir.Cross(e2)
		det := e1.Dot(p)
		if math.Abs(det) < eps {
			continue
		}
		inv := 1 / det
		s := origin.Sub(v0)
		u := s.Dot(p) * inv
		if u < 0 || u > 1 {
			continue
		}
		q := s.Cross(e1)
		v := dir.Dot(q) * inv
		if v < 0 || u+v > 1 {
			continue
		}
		if t := e2.Dot(q) * inv; t >= 0 && t < best {
			best = t
		}
	}
	return best, !math.IsInf(best, 1)
}
