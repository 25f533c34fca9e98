// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay2d

import (
	"fmt"
	"io"

	"github.com/golang/geo/r2"
	"gopkg.in/yaml.v3"
)

// Scene describes a triangulation job: the initial point set, an optional
// hole polygon, and a sequence of post-triangulation edits, as decoded from
// YAML by LoadScene.
type Scene struct {
	// Points is a flat [x0,y0,x1,y1,...] list of the initial sites.
	Points []float64 `yaml:"points"`
	// Hole is a flat [x0,y0,x1,y1,...] polygon carved out after
	// triangulation. Empty means no hole.
	Hole []float64 `yaml:"hole,omitempty"`
	// Inserts lists sites added after the initial triangulation, applied in
	// order.
	Inserts [][2]float64 `yaml:"inserts,omitempty"`
	// Deletes lists sites removed after the initial triangulation (and any
	// inserts), applied in order.
	Deletes [][2]float64 `yaml:"deletes,omitempty"`
}

// LoadScene decodes a Scene from r. It fails if points has odd length or
// fewer than three points.
func LoadScene(r io.Reader) (*Scene, error) {
	var s Scene
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("LoadScene: yaml %w", err)
	}
	if len(s.Points)%2 != 0 {
		return nil, fmt.Errorf("LoadScene: points has odd length %d", len(s.Points))
	}
	if len(s.Points) < 6 {
		return nil, fmt.Errorf("LoadScene: need at least 3 points, got %d", len(s.Points)/2)
	}
	return &s, nil
}

// HolePath converts Hole into the point slice expected by Mesh.InsertHole.
func (s *Scene) HolePath() []r2.Point {
	path := make([]r2.Point, 0, len(s.Hole)/2)
	for i := 0; i+1 < len(s.Hole); i += 2 {
		path = append(path, r2.Point{X: s.Hole[i], Y: s.Hole[i+1]})
	}
	return path
}
