// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	points := GenerateRandomPoints(10, 1)
	if len(points) != 10 {
		t.Errorf("len(GenerateRandomPoints(10, 1)) = %d, want 10", len(points))
	}
}

func TestGenerateRandomPoints_Deterministic(t *testing.T) {
	a := GenerateRandomPoints(20, 42)
	b := GenerateRandomPoints(20, 42)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("GenerateRandomPoints(20, 42) not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerateRandomPoints_SeedVaries(t *testing.T) {
	a := GenerateRandomPoints(20, 1)
	b := GenerateRandomPoints(20, 2)
	if cmp.Equal(a, b) {
		t.Error("GenerateRandomPoints with different seeds produced identical output")
	}
}

func TestFlattenPoints(t *testing.T) {
	points := GenerateRandomPoints(5, 7)
	flat := FlattenPoints(points)

	if len(flat) != len(points)*2 {
		t.Fatalf("len(FlattenPoints(points)) = %d, want %d", len(flat), len(points)*2)
	}
	for i, p := range points {
		if flat[2*i] != p.X || flat[2*i+1] != p.Y {
			t.Errorf("FlattenPoints(points)[%d:%d] = (%v, %v), want (%v, %v)", 2*i, 2*i+1, flat[2*i], flat[2*i+1], p.X, p.Y)
		}
	}
}
