// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"errors"
	"testing"
)

func TestVerticesFromCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		flat    []float64
		wantLen int
		wantErr error
	}{
		{"three points", []float64{0, 1, 4, 5, 2, 3}, 3, nil},
		{"odd length", []float64{0, 0, 1, 0, 2}, 0, ErrBadInput},
		{"empty", nil, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerticesFromCoordinates(tt.flat)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("VerticesFromCoordinates(%v) error = %v, want %v", tt.flat, err, tt.wantErr)
			}
			if tt.wantErr == nil && len(got) != tt.wantLen {
				t.Errorf("VerticesFromCoordinates(%v) len = %v, want %v", tt.flat, len(got), tt.wantLen)
			}
		})
	}
}

func TestVerticesFromCoordinates_PreservesOrder(t *testing.T) {
	got, err := VerticesFromCoordinates([]float64{0, 1, 4, 5, 2, 3})
	if err != nil {
		t.Fatalf("VerticesFromCoordinates(...) error = %v, want nil", err)
	}

	want := []Vertex{NewVertex(0, 1), NewVertex(4, 5), NewVertex(2, 3)}
	for i := range want {
		if got[i].Point != want[i].Point {
			t.Errorf("VerticesFromCoordinates(...)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestVertexID_GhostAndValid(t *testing.T) {
	if !GhostVertex.IsGhost() {
		t.Error("GhostVertex.IsGhost() = false, want true")
	}
	if GhostVertex.IsValid() {
		t.Error("GhostVertex.IsValid() = true, want false")
	}

	real := VertexID(0)
	if real.IsGhost() {
		t.Error("VertexID(0).IsGhost() = true, want false")
	}
	if !real.IsValid() {
		t.Error("VertexID(0).IsValid() = false, want true")
	}
}

func TestLessVertex(t *testing.T) {
	tests := []struct {
		name string
		a, b Vertex
		want bool
	}{
		{"lower x", NewVertex(0, 5), NewVertex(1, 0), true},
		{"equal x lower y", NewVertex(1, 0), NewVertex(1, 1), true},
		{"equal", NewVertex(1, 1), NewVertex(1, 1), false},
		{"greater x", NewVertex(2, 0), NewVertex(1, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lessVertex(tt.a, tt.b); got != tt.want {
				t.Errorf("lessVertex(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
