// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"fmt"

	"github.com/golang/geo/r2"
)

/*
Triangulator builds and edits a Delaunay triangulation incrementally.

  - vertices not yet placed into the mesh live in pending.
  - triangles currently in the mesh (solid and ghost) live in triangles.
  - conflictVertex maps a triangle to a single vertex known to lie strictly
    inside its circumcircle (or, for a ghost, its half-plane). A triangle
    appearing as a conflictVertex key is never also in triangles.
    conflictOrder tracks FIFO insertion order so that draining the map is
    deterministic, per the documented ordering policy.
  - adjacency maps each directed edge (u -> v) to the unique triangle in the
    mesh having that edge in its CCW cycle.
*/
type Triangulator struct {
	verts []Vertex

	pending []VertexID

	triangles map[Triangle]struct{}

	conflictVertex map[Triangle]VertexID
	conflictOrder  []Triangle

	adjacency map[directedEdge]Triangle

	eps float64
}

// defaultEps is the in-circle determinant's default zero tolerance.
const defaultEps = 1e-12

// Option configures a Triangulator at construction time.
type Option func(*Triangulator) error

// WithEpsilon sets the in-circle determinant's zero tolerance. It must be
// positive.
func WithEpsilon(eps float64) Option {
	return func(t *Triangulator) error {
		if eps <= 0 {
			return ErrBadInput
		}
		t.eps = eps
		return nil
	}
}

// FromCoordinates builds a Triangulator from a flat [x0,y0,x1,y1,...]
// sequence. It fails with ErrBadInput if the sequence has odd length or
// fewer than three vertices result.
func FromCoordinates(flat []float64, opts ...Option) (*Triangulator, error) {
	verts, err := VerticesFromCoordinates(flat)
	if err != nil {
		return nil, err
	}
	return FromVertices(verts, opts...)
}

// FromVertices builds a Triangulator from an explicit vertex list. It fails
// with ErrBadInput if fewer than three vertices are supplied.
func FromVertices(verts []Vertex, opts ...Option) (*Triangulator, error) {
	if len(verts) < 3 {
		return nil, ErrBadInput
	}

	t := &Triangulator{
		verts:          append([]Vertex(nil), verts...),
		triangles:      make(map[Triangle]struct{}),
		conflictVertex: make(map[Triangle]VertexID),
		adjacency:      make(map[directedEdge]Triangle),
		eps:            defaultEps,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.pending = make([]VertexID, len(verts))
	for i := range verts {
		t.pending[i] = VertexID(i)
	}
	return t, nil
}

// coord resolves a VertexID to its coordinates. Never called with a ghost.
func (t *Triangulator) coord(id VertexID) r2.Point {
	return t.verts[id].Point
}

// Triangulate seeds the mesh (if not already seeded) and drains every
// pending conflict. It is idempotent once the conflict queue is empty.
func (t *Triangulator) Triangulate() error {
	if len(t.triangles) == 0 && len(t.conflictVertex) == 0 {
		if err := t.init(); err != nil {
			return err
		}
	}
	for len(t.conflictOrder) > 0 {
		if err := t.handleConflict(); err != nil {
			return err
		}
	}
	return nil
}

// popPending removes and returns the last pending vertex.
func (t *Triangulator) popPending() VertexID {
	n := len(t.pending) - 1
	v := t.pending[n]
	t.pending = t.pending[:n]
	return v
}

// init pops three vertices and seeds the mesh with one solid CCW triangle
// plus three ghost triangles tiling its exterior.
func (t *Triangulator) init() error {
	if len(t.pending) < 3 {
		return ErrBadInput
	}

	v3 := t.popPending()
	v2 := t.popPending()
	v1 := t.popPending()

	// Bounds the colinear-rotation search below: every remaining pending
	// vertex gets one chance as a v3 candidate before giving up. Without
	// this bound, rotating a rejected v3 back onto pending and popping a
	// fresh candidate can cycle between the same handful of points forever
	// on malformed input instead of terminating with ErrDegenerate.
	attempts := len(t.pending) + 1

	for {
		switch orient2D(t.coord(v1), t.coord(v2), t.coord(v3)) {
		case CCW:
			return t.seed(v1, v2, v3)
		case CW:
			v2, v3 = v3, v2
			return t.seed(v1, v2, v3)
		default: // Colinear
			attempts--
			if attempts <= 0 {
				return ErrDegenerate
			}
			t.pending = append([]VertexID{v3}, t.pending...)
			v3 = t.popPending()
		}
	}
}

// seed installs the initial solid triangle (v1, v2, v3), assumed CCW, and
// its three bounding ghost triangles.
func (t *Triangulator) seed(v1, v2, v3 VertexID) error {
	t.includeTriangle(Triangle{v1, v2, v3})
	t.includeTriangle(Triangle{v2, v1, GhostVertex})
	t.includeTriangle(Triangle{v3, v2, GhostVertex})
	t.includeTriangle(Triangle{v1, v3, GhostVertex})
	return nil
}

// cavityEdge is a candidate boundary edge of the cavity being dug.
type cavityEdge struct {
	a, b VertexID
}

// handleConflict resolves exactly one (triangle, vertex) conflict: it digs
// the cavity of all triangles whose circumcircle contains the vertex and
// re-triangulates the star-shaped hole by fanning from the vertex.
func (t *Triangulator) handleConflict() error {
	if len(t.conflictOrder) == 0 {
		panic("handleConflict: conflictOrder is empty")
	}

	tri := t.conflictOrder[0]
	t.conflictOrder = t.conflictOrder[1:]
	p, ok := t.conflictVertex[tri]
	if !ok {
		return ErrInvariantViolation
	}
	delete(t.conflictVertex, tri)
	t.removeInnerAdjacency(tri)

	stack := []cavityEdge{
		{tri[0], tri[1]},
		{tri[1], tri[2]},
		{tri[2], tri[0]},
	}

	for len(stack) > 0 {
		n := len(stack) - 1
		edge := stack[n]
		stack = stack[:n]

		outer, ok := t.adjacency[directedEdge{edge.b, edge.a}]
		if !ok {
			return ErrInvariantViolation
		}

		if outer.Encircles(t.coord, p, t.eps) == Inside {
			if err := t.removeTriangle(outer); err != nil {
				return err
			}
			stack = append(stack, nextCavityEdges(outer, edge.a)...)
			continue
		}

		t.includeTriangle(replacementTriangle(edge.a, edge.b, p))
	}
	return nil
}

// nextCavityEdges returns the two edges of o other than (b -> begin), in CCW
// order starting at begin, for the caller to push onto the cavity stack.
func nextCavityEdges(o Triangle, begin VertexID) []cavityEdge {
	switch begin {
	case o[0]:
		return []cavityEdge{{o[0], o[1]}, {o[1], o[2]}}
	case o[1]:
		return []cavityEdge{{o[1], o[2]}, {o[2], o[0]}}
	default:
		return []cavityEdge{{o[2], o[0]}, {o[0], o[1]}}
	}
}

// replacementTriangle builds the new triangle fanning edge (a -> b) to p,
// keeping the ghost vertex (if any) in the third position.
func replacementTriangle(a, b, p VertexID) Triangle {
	switch {
	case a.IsGhost():
		return Triangle{b, p, a}
	case b.IsGhost():
		return Triangle{p, a, b}
	default:
		return Triangle{a, b, p}
	}
}

// includeTriangle registers t's adjacency and either parks it against the
// first pending vertex its circumcircle/half-plane contains, or commits it
// to the live mesh.
func (t *Triangulator) includeTriangle(tri Triangle) {
	for _, e := range tri.edges() {
		t.adjacency[e] = tri
	}

	for i, vid := range t.pending {
		if tri.Encircles(t.coord, vid, t.eps) == Inside {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			t.conflictVertex[tri] = vid
			t.conflictOrder = append(t.conflictOrder, tri)
			return
		}
	}
	t.triangles[tri] = struct{}{}
}

// removeTriangle clears tri's adjacency and removes it from whichever of
// triangles/conflictVertex currently owns it, restoring a parked vertex to
// pending if it was a conflict key. It panics if tri is owned by neither.
func (t *Triangulator) removeTriangle(tri Triangle) error {
	t.removeInnerAdjacency(tri)

	if _, ok := t.triangles[tri]; ok {
		delete(t.triangles, tri)
		return nil
	}

	if vid, ok := t.conflictVertex[tri]; ok {
		delete(t.conflictVertex, tri)
		t.dropConflictOrder(tri)
		t.pending = append(t.pending, vid)
		return nil
	}

	panic(fmt.Sprintf("removeTriangle: %v is neither a live triangle nor a conflict key", tri))
}

func (t *Triangulator) removeInnerAdjacency(tri Triangle) {
	for _, e := range tri.edges() {
		delete(t.adjacency, e)
	}
}

func (t *Triangulator) dropConflictOrder(tri Triangle) {
	for i, c := range t.conflictOrder {
		if c == tri {
			t.conflictOrder = append(t.conflictOrder[:i], t.conflictOrder[i+1:]...)
			return
		}
	}
}

// addVertex appends v to the arena and returns its new handle.
func (t *Triangulator) addVertex(v Vertex) VertexID {
	id := VertexID(len(t.verts))
	t.verts = append(t.verts, v)
	return id
}

// InsertVertex adds a single vertex after the initial triangulation exists.
// It fails with ErrMissingConflict if no live triangle's circumcircle (or
// half-plane, for a ghost) contains it.
func (t *Triangulator) InsertVertex(v Vertex) error {
	return t.insertVertexID(t.addVertex(v))
}

func (t *Triangulator) insertVertexID(id VertexID) error {
	for tri := range t.triangles {
		if tri.Encircles(t.coord, id, t.eps) == Inside {
			delete(t.triangles, tri)
			t.conflictVertex[tri] = id
			t.conflictOrder = append(t.conflictOrder, tri)
			return t.handleConflict()
		}
	}
	return ErrMissingConflict
}

// findVertexID scans the arena for a vertex matching v by coordinate value.
func (t *Triangulator) findVertexID(v Vertex) (VertexID, bool) {
	for i, existing := range t.verts {
		if existing.Point == v.Point {
			return VertexID(i), true
		}
	}
	return GhostVertex, false
}

// starTriangles returns the live (non-conflict) triangles incident to id.
func (t *Triangulator) starTriangles(id VertexID) []Triangle {
	var star []Triangle
	for tri := range t.triangles {
		if tri[0] == id || tri[1] == id || tri[2] == id {
			star = append(star, tri)
		}
	}
	return star
}

// DeleteVertex removes an interior vertex, matched to v by coordinate value.
//
// If v was never placed into the mesh, it is simply dropped from the
// pending pool. Otherwise its star is re-triangulated via a fresh
// Triangulator over its neighbor polygon and merged back in. It fails with
// ErrBoundaryDeletion if v lies on the convex hull, and is a no-op error
// (ErrMissingConflict) if no vertex matches v at all.
func (t *Triangulator) DeleteVertex(v Vertex) error {
	for i, id := range t.pending {
		if t.verts[id].Point == v.Point {
			t.pending = append(t.pending[:i], t.pending[i+1:]...)
			return nil
		}
	}

	id, ok := t.findVertexID(v)
	if !ok {
		return ErrMissingConflict
	}

	star := t.starTriangles(id)
	for _, tri := range star {
		if tri.IsGhost() {
			return ErrBoundaryDeletion
		}
	}

	neighbors := map[VertexID]struct{}{}
	for _, tri := range star {
		for _, vid := range tri {
			if vid != id {
				neighbors[vid] = struct{}{}
			}
		}
	}

	for _, tri := range star {
		if err := t.removeTriangle(tri); err != nil {
			return err
		}
	}

	idMap := make([]VertexID, 0, len(neighbors))
	neighborVerts := make([]Vertex, 0, len(neighbors))
	for vid := range neighbors {
		idMap = append(idMap, vid)
		neighborVerts = append(neighborVerts, t.verts[vid])
	}

	inner, err := FromVertices(neighborVerts)
	if err != nil {
		return err
	}
	if err := inner.Triangulate(); err != nil {
		return err
	}

	return t.mergeInner(inner, idMap)
}

// mergeInner copies inner's solid triangles into t, remapping inner's local
// vertex handles back to t's via idMap. Inner's own ghost triangles (its
// local exterior) are discarded: the outer mesh's untouched ghost/solid
// triangles beyond the former star already bound that exterior.
func (t *Triangulator) mergeInner(inner *Triangulator, idMap []VertexID) error {
	for tri := range inner.triangles {
		if tri.IsGhost() {
			continue
		}
		outer := Triangle{idMap[tri[0]], idMap[tri[1]], idMap[tri[2]]}
		t.triangles[outer] = struct{}{}
		for _, e := range outer.edges() {
			t.adjacency[e] = outer
		}
	}
	return nil
}

// InsertHole carves a polygonal hole into the mesh. path must describe a
// simple, closed polygon traversed counterclockwise around the hole, so that
// the hole lies on the CCW side of each directed edge (vi -> vi+1) and the
// live domain on its CW side; this is required but never validated. The
// triangle owning each edge (vi -> vi+1) is removed and replaced by the
// ghost triangle (vi, vi+1, Ghost).
func (t *Triangulator) InsertHole(path []Vertex) error {
	ids := make([]VertexID, len(path))
	for i, v := range path {
		ids[i] = t.addVertex(v)
		if err := t.insertVertexID(ids[i]); err != nil {
			return err
		}
	}

	for i := range ids {
		a := ids[i]
		b := ids[(i+1)%len(ids)]

		if tri, ok := t.adjacency[directedEdge{a, b}]; ok {
			if err := t.removeTriangle(tri); err != nil {
				return err
			}
		}

		t.includeTriangle(Triangle{a, b, GhostVertex})
	}
	return nil
}
