// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating and manipulating planar
// point sets for Delaunay triangulation.
package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates a slice of random points in the unit square [0,1) x [0,1).
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{X: random.Float64(), Y: random.Float64()}
	}

	return points
}

// FlattenPoints converts a slice of points into the flat [x0,y0,x1,y1,...] form
// accepted by delaunay.FromCoordinates.
func FlattenPoints(points []r2.Point) []float64 {
	flat := make([]float64, 0, len(points)*2)
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	return flat
}
