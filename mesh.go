// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay2d is a thin convenience layer over delaunay, the
// incremental planar Delaunay triangulation engine. It mirrors how
// s2voronoi sits above s2delaunay: functional-option construction and a
// wrapper type exposing the engine's public operations under Go-idiomatic
// names.
package delaunay2d

import (
	"github.com/2dChan/delaunay2d/delaunay"
	"github.com/golang/geo/r2"
)

// MeshOption configures a Mesh at construction time. It is a thin rename of
// delaunay.Option so callers of this package never need to import delaunay
// directly just to pass WithEpsilon.
type MeshOption = delaunay.Option

// WithEpsilon sets the in-circle determinant's zero tolerance. It must be
// positive.
func WithEpsilon(eps float64) MeshOption {
	return delaunay.WithEpsilon(eps)
}

// Triangulation is the canonicalized flat export of a Mesh.
type Triangulation = delaunay.Triangulation

// Mesh wraps a delaunay.Triangulator, exposing its operations under names
// that read naturally from outside the engine package.
type Mesh struct {
	t *delaunay.Triangulator
}

// NewMeshFromCoordinates builds a Mesh from a flat [x0,y0,x1,y1,...] list.
func NewMeshFromCoordinates(flat []float64, opts ...MeshOption) (*Mesh, error) {
	t, err := delaunay.FromCoordinates(flat, opts...)
	if err != nil {
		return nil, err
	}
	return &Mesh{t: t}, nil
}

// NewMeshFromPoints builds a Mesh from a slice of r2.Point sites.
func NewMeshFromPoints(points []r2.Point, opts ...MeshOption) (*Mesh, error) {
	verts := make([]delaunay.Vertex, len(points))
	for i, p := range points {
		verts[i] = delaunay.NewVertex(p.X, p.Y)
	}
	t, err := delaunay.FromVertices(verts, opts...)
	if err != nil {
		return nil, err
	}
	return &Mesh{t: t}, nil
}

// Triangulate seeds the mesh and resolves every pending vertex.
func (m *Mesh) Triangulate() error {
	return m.t.Triangulate()
}

// InsertVertex adds a single site after Triangulate has been called once.
func (m *Mesh) InsertVertex(x, y float64) error {
	return m.t.InsertVertex(delaunay.NewVertex(x, y))
}

// DeleteVertex removes the site at (x, y), matched by coordinate value.
func (m *Mesh) DeleteVertex(x, y float64) error {
	return m.t.DeleteVertex(delaunay.NewVertex(x, y))
}

// InsertHole carves a polygonal hole into the mesh. path must be traversed
// counterclockwise around the hole's interior, so the hole lies on the CCW
// side of each directed edge (vi -> vi+1) and the remaining live domain on
// its CW side.
func (m *Mesh) InsertHole(path []r2.Point) error {
	verts := make([]delaunay.Vertex, len(path))
	for i, p := range path {
		verts[i] = delaunay.NewVertex(p.X, p.Y)
	}
	return m.t.InsertHole(verts)
}

// Export returns the canonicalized flat triangulation.
func (m *Mesh) Export() Triangulation {
	return m.t.Export()
}

// Stats reports the mesh's live vertex and solid-triangle counts.
func (m *Mesh) Stats() delaunay.Stats {
	return m.t.Stats()
}

// DebugString renders the underlying engine's diagnostic dump.
func (m *Mesh) DebugString() string {
	return m.t.DebugString()
}
