// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay implements a 2D incremental Delaunay triangulation engine
// built around a ghost-vertex representation of the convex hull.
package delaunay

import "github.com/golang/geo/r2"

// VertexID is a stable integer handle into a Triangulator's vertex arena.
//
// Real vertices are assigned sequentially starting from 0 when they are
// added to a Triangulator and remain valid for the triangulator's lifetime.
// GhostVertex is the single reserved handle for the sentinel "point at
// infinity" used to tile the exterior of the convex hull; it never occupies
// an arena slot.
type VertexID int

// GhostVertex is the sentinel handle for the ghost vertex.
const GhostVertex VertexID = -1

// IsGhost reports whether id is the ghost sentinel.
func (id VertexID) IsGhost() bool {
	return id == GhostVertex
}

// IsValid reports whether id refers to a real, arena-backed vertex.
func (id VertexID) IsValid() bool {
	return id >= 0
}

// Vertex is an immutable 2D point.
type Vertex struct {
	Point r2.Point
}

// NewVertex builds a plain (non-ghost) vertex at (x, y).
func NewVertex(x, y float64) Vertex {
	return Vertex{Point: r2.Point{X: x, Y: y}}
}

// VerticesFromCoordinates turns a flat [x0,y0,x1,y1,...] sequence into a list
// of vertices. It fails with ErrBadInput if the sequence has odd length.
func VerticesFromCoordinates(flat []float64) ([]Vertex, error) {
	if len(flat)%2 != 0 {
		return nil, ErrBadInput
	}

	verts := make([]Vertex, len(flat)/2)
	for i := range verts {
		verts[i] = NewVertex(flat[i*2], flat[i*2+1])
	}
	return verts, nil
}

// lessVertex defines the total order on non-ghost vertices used by Export:
// lexicographic on (x, y).
func lessVertex(a, b Vertex) bool {
	if a.Point.X != b.Point.X {
		return a.Point.X < b.Point.X
	}
	return a.Point.Y < b.Point.Y
}
