package core

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// NeighborSearchRadius bounds the integer cells enumerated around a target.
	NeighborSearchRadius = 1.2
	// coincidentEpsilon absorbs floating point noise when excluding the target itself.
	coincidentEpsilon = 1e-3
)

// subLattice returns the offsets added to every integer cell index.
func subLattice(family CrystalFamily) []mgl64.Vec3 {
	switch family {
	case FCC:
		return []mgl64.Vec3{{0, 0, 0}, {0.5, 0.5, 0}, {0.5, 0, 0.5}, {0, 0.5, 0.5}}
	case BCC:
		return []mgl64.Vec3{{0, 0, 0}, {0.5, 0.5, 0.5}}
	}
	return nil
}

type candidate struct {
	pos  mgl64.Vec3
	dist float64
}

// FindCoordinatingAtoms returns the count atoms of the infinite lattice
// nearest to target, nearest first. Equidistant atoms keep enumeration
// order. A result shorter than count means the shell does not exist inside
// the search radius; it is never padded.
func FindCoordinatingAtoms(target mgl64.Vec3, family CrystalFamily, count int) []mgl64.Vec3 {
	offsets := subLattice(family)
	if len(offsets) == 0 || count <= 0 {
		return nil
	}

	lo := [3]int{}
	hi := [3]int{}
	for i := 0; i < 3; i++ {
		lo[i] = int(math.Floor(target[i] - NeighborSearchRadius))
		hi[i] = int(math.Ceil(target[i] + NeighborSearchRadius))
	}

	var candidates []candidate
	for x := lo[0]; x <= hi[0]; x++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for z := lo[2]; z <= hi[2]; z++ {
				cell := mgl64.Vec3{float64(x), float64(y), float64(z)}
				for _, off := range offsets {
					p := cell.Add(off)
					d := p.Sub(target).Len()
					if d <= coincidentEpsilon {
						continue
					}
					candidates = append(candidates, candidate{pos: p, dist: d})
				}
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}
	out := make([]mgl64.Vec3, len(candidates))
	for i, c := range candidates {
		out[i] = c.pos
	}
	return out
}

// distance is the Euclidean distance between two fractional points.
func distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}
