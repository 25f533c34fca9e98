// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "errors"

// Error policy: sentinels only, matched with errors.Is. None are wrapped with
// formatted context at the definition site; callers that need context should
// wrap with fmt.Errorf("...: %w", ErrX) at the boundary.
var (
	// ErrBadInput is returned when a coordinate sequence has odd length, or
	// when fewer than three vertices are supplied to build a Triangulator.
	ErrBadInput = errors.New("delaunay: odd-length coordinate array or fewer than 3 vertices")

	// ErrDegenerate is returned when every candidate seed vertex is colinear
	// with the other two, so no initial triangle can be formed.
	ErrDegenerate = errors.New("delaunay: all input vertices are colinear")

	// ErrMissingConflict is returned when InsertVertex cannot find any
	// triangle whose circumcircle (or, for a ghost, half-plane) contains the
	// vertex being inserted.
	ErrMissingConflict = errors.New("delaunay: no triangle contains the inserted vertex")

	// ErrBoundaryDeletion is returned when DeleteVertex targets a vertex that
	// lies on the convex hull.
	ErrBoundaryDeletion = errors.New("delaunay: cannot delete a vertex on the convex hull")

	// ErrInvariantViolation indicates a bug in the cavity-digging walk: a
	// triangle popped off the conflict queue has no recorded conflict
	// vertex, or a cavity edge has no opposite triangle in adjacency. The
	// two other internal-consistency failures this engine can hit —
	// handleConflict invoked with an empty conflict queue, and
	// removeTriangle asked to remove a triangle owned by neither the mesh
	// nor the conflict map — panic instead, since by construction they can
	// only be reached by a caller misusing unexported state, not by any
	// reachable sequence of public operations.
	ErrInvariantViolation = errors.New("delaunay: internal invariant violated")
)
