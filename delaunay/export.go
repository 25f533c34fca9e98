// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "sort"

// Triangulation is the canonicalized flat export of a mesh: coordinates has
// length 2*V (point i is (coordinates[2i], coordinates[2i+1])), triangles
// has length 3*T, and every consecutive triple is CCW with the minimum
// index first. coordinates are sorted lexicographically by (x, y).
type Triangulation struct {
	Coordinates []float64
	Triangles   []int
}

// indexTriple is a resolved, rotation-canonicalized triangle.
type indexTriple [3]int

func (a indexTriple) less(b indexTriple) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// rotateMinFirst rotates (a, b, c) cyclically so the smallest value leads,
// preserving the CCW cycle.
func rotateMinFirst(a, b, c int) indexTriple {
	switch {
	case a <= b && a <= c:
		return indexTriple{a, b, c}
	case b <= a && b <= c:
		return indexTriple{b, c, a}
	default:
		return indexTriple{c, a, b}
	}
}

// Export filters the mesh to its solid triangles, assigns indices to the
// referenced vertices in sorted (x, y) order, and emits the canonical flat
// Triangulation.
func (t *Triangulator) Export() Triangulation {
	var solids []Triangle
	refs := map[VertexID]struct{}{}
	for tri := range t.triangles {
		if tri.IsGhost() {
			continue
		}
		solids = append(solids, tri)
		refs[tri[0]] = struct{}{}
		refs[tri[1]] = struct{}{}
		refs[tri[2]] = struct{}{}
	}

	ordered := make([]VertexID, 0, len(refs))
	for id := range refs {
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return lessVertex(t.verts[ordered[i]], t.verts[ordered[j]])
	})

	index := make(map[VertexID]int, len(ordered))
	coordinates := make([]float64, 0, len(ordered)*2)
	for i, id := range ordered {
		index[id] = i
		p := t.coord(id)
		coordinates = append(coordinates, p.X, p.Y)
	}

	triples := make([]indexTriple, 0, len(solids))
	for _, tri := range solids {
		triples = append(triples, rotateMinFirst(index[tri[0]], index[tri[1]], index[tri[2]]))
	}
	sort.Slice(triples, func(i, j int) bool {
		return triples[i].less(triples[j])
	})

	triangles := make([]int, 0, len(triples)*3)
	for _, tr := range triples {
		triangles = append(triangles, tr[0], tr[1], tr[2])
	}

	return Triangulation{Coordinates: coordinates, Triangles: triangles}
}
