// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "github.com/golang/geo/r2"

// coordLookup resolves a VertexID to its planar coordinates. It is never
// called with GhostVertex.
type coordLookup func(VertexID) r2.Point

// Triangle is an ordered triple of vertex handles.
//
// Solid triangles (no ghost vertex) are oriented CCW. Ghost triangles are of
// the form (a, b, Ghost) where the directed edge a -> b lies on the convex
// hull and the hull's exterior is on the CCW side of a -> b.
type Triangle [3]VertexID

// IsGhost reports whether any vertex of t is the ghost sentinel.
func (t Triangle) IsGhost() bool {
	return t[0].IsGhost() || t[1].IsGhost() || t[2].IsGhost()
}

// Area returns the signed area of t, or 0 for a ghost triangle.
func (t Triangle) Area(coord coordLookup) float64 {
	if t.IsGhost() {
		return 0
	}
	return signedArea2(coord(t[0]), coord(t[1]), coord(t[2])) / 2
}

// Encircles tests whether p lies inside t's circumcircle (solid triangles)
// or inside the half-plane bounded by t's hull edge (ghost triangles). eps
// is the in-circle determinant's zero tolerance; it has no effect on the
// ghost half-plane test, which is exact by construction.
func (t Triangle) Encircles(coord coordLookup, p VertexID, eps float64) Continence {
	if t.IsGhost() {
		if orient2D(coord(t[0]), coord(t[1]), coord(p)) == CCW {
			return Inside
		}
		return Outside
	}
	return inCircle(coord(t[0]), coord(t[1]), coord(t[2]), coord(p), eps)
}

// directedEdge is an ordered pair of vertex handles, the adjacency key.
type directedEdge struct {
	from, to VertexID
}

// edges returns t's three directed edges in CCW cycle order.
func (t Triangle) edges() [3]directedEdge {
	return [3]directedEdge{
		{t[0], t[1]},
		{t[1], t[2]},
		{t[2], t[0]},
	}
}
