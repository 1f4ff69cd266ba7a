// Package d2 holds small r2 vector helpers for planar polygon math.
package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Elem returns a vector with both components set to the same value.
func Elem(sides float64) r2.Vec {
	return r2.Vec{X: sides, Y: sides}
}

// EqualWithin compares two vectors component-wise to a tolerance.
func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// Cross returns the z component of the cross product of a and b.
func Cross(a, b r2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Orient returns the signed double area of triangle (a, b, c):
// positive for a counter-clockwise turn, negative for clockwise and
// zero for collinear points.
func Orient(a, b, c r2.Vec) float64 {
	return Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// onSegment reports whether c lies on segment ab, assuming the three
// points are collinear.
func onSegment(a, b, c r2.Vec) bool {
	return math.Min(a.X, b.X) <= c.X && c.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= c.Y && c.Y <= math.Max(a.Y, b.Y)
}

// SegmentsIntersect reports whether segments p1p2 and q1q2 share any
// point, including collinear overlap and endpoint contact.
func SegmentsIntersect(p1, p2, q1, q2 r2.Vec) bool {
	d1 := Orient(q1, q2, p1)
	d2 := Orient(q1, q2, p2)
	d3 := Orient(p1, p2, q1)
	d4 := Orient(p1, p2, q2)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}
