// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay2d

import (
	"strings"
	"testing"
)

const sceneYAML = `
points: [0, 0, 10, 0, 5, 10]
hole: [5, 2, 4, 3, 3, 3]
inserts:
  - [1, 1]
deletes:
  - [1, 1]
`

func TestLoadScene(t *testing.T) {
	s, err := LoadScene(strings.NewReader(sceneYAML))
	if err != nil {
		t.Fatalf("LoadScene(...) error = %v", err)
	}

	if got, want := len(s.Points), 6; got != want {
		t.Errorf("len(Points) = %v, want %v", got, want)
	}
	if got, want := len(s.Hole), 6; got != want {
		t.Errorf("len(Hole) = %v, want %v", got, want)
	}
	if got, want := len(s.Inserts), 1; got != want {
		t.Errorf("len(Inserts) = %v, want %v", got, want)
	}
	if got, want := len(s.Deletes), 1; got != want {
		t.Errorf("len(Deletes) = %v, want %v", got, want)
	}
}

func TestLoadScene_RejectsOddPoints(t *testing.T) {
	_, err := LoadScene(strings.NewReader("points: [0, 0, 1]\n"))
	if err == nil {
		t.Fatal("LoadScene(odd points) error = nil, want non-nil")
	}
}

func TestLoadScene_RejectsTooFewPoints(t *testing.T) {
	_, err := LoadScene(strings.NewReader("points: [0, 0, 1, 1]\n"))
	if err == nil {
		t.Fatal("LoadScene(two points) error = nil, want non-nil")
	}
}

func TestScene_HolePath(t *testing.T) {
	s, err := LoadScene(strings.NewReader(sceneYAML))
	if err != nil {
		t.Fatalf("LoadScene(...) error = %v", err)
	}

	path := s.HolePath()
	if len(path) != 3 {
		t.Fatalf("len(HolePath()) = %v, want 3", len(path))
	}
	if path[0].X != 5 || path[0].Y != 2 {
		t.Errorf("HolePath()[0] = %v, want (5, 2)", path[0])
	}
}
