// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"testing"

	"github.com/golang/geo/r2"
)

func TestOrient2D(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c r2.Point
		want    Orientation
	}{
		{"ccw", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0, Y: 1}, CCW},
		{"cw", r2.Point{X: 0, Y: 0}, r2.Point{X: 0, Y: 1}, r2.Point{X: 1, Y: 0}, CW},
		{"colinear", r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}, r2.Point{X: 2, Y: 2}, Colinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orient2D(tt.a, tt.b, tt.c); got != tt.want {
				t.Errorf("orient2D(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
			}
		})
	}
}

func TestInCircle(t *testing.T) {
	a := r2.Point{X: 0, Y: 0}
	b := r2.Point{X: 1, Y: 0}
	c := r2.Point{X: 0, Y: 1}

	tests := []struct {
		name string
		d    r2.Point
		want Continence
	}{
		{"inside", r2.Point{X: 0.3, Y: 0.3}, Inside},
		{"outside", r2.Point{X: 2, Y: 2}, Outside},
		{"boundary", r2.Point{X: 1, Y: 1}, Boundary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inCircle(a, b, c, tt.d, defaultEps); got != tt.want {
				t.Errorf("inCircle(a, b, c, %v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}
