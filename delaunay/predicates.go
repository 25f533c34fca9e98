// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "github.com/golang/geo/r2"

// Orientation is the three-valued result of orient2D.
type Orientation int

const (
	// Colinear means the three points have zero signed area.
	Colinear Orientation = iota
	// CCW means the three points turn counterclockwise.
	CCW
	// CW means the three points turn clockwise.
	CW
)

// Continence is the three-valued result of a circumcircle/half-plane test.
type Continence int

const (
	// Boundary means the tested point lies exactly on the circle or line.
	Boundary Continence = iota
	// Inside means the tested point lies strictly inside.
	Inside
	// Outside means the tested point lies strictly outside.
	Outside
)

// signedArea2 returns twice the signed area of triangle (a, b, c).
func signedArea2(a, b, c r2.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// orient2D returns the sign of the signed area of (a, b, c).
func orient2D(a, b, c r2.Point) Orientation {
	switch area := signedArea2(a, b, c); {
	case area > 0:
		return CCW
	case area < 0:
		return CW
	default:
		return Colinear
	}
}

// inCircle returns the sign of the standard 4x4 in-circle determinant for
// (a, b, c, d), assuming (a, b, c) is oriented CCW. eps is the tolerance
// below which the determinant is treated as exactly zero (Boundary),
// absorbing the floating-point noise a production system would otherwise
// hand to an adaptive-precision predicate.
func inCircle(a, b, c, d r2.Point, eps float64) Continence {
	ax, ay := a.X-d.X, a.Y-d.Y
	bx, by := b.X-d.X, b.Y-d.Y
	cx, cy := c.X-d.X, c.Y-d.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	switch {
	case det > eps:
		return Inside
	case det < -eps:
		return Outside
	default:
		return Boundary
	}
}
