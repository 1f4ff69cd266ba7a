// Package form2 provides validated planar polygons used as extrusion
// cross sections.
package form2

import (
	"errors"
	"fmt"
	"math"

	"github.com/3togo/trimesh/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Validation failure causes. Errors returned by Validate wrap one of
// these sentinels.
var (
	ErrDegenerate       = errors.New("form2: degenerate polygon")
	ErrSelfIntersecting = errors.New("form2: self-intersecting polygon")
)

const (
	vertexTolerance = 1e-12
	areaTolerance   = 1e-12
)

// Polygon is a validated closed planar curve: at least three distinct
// vertices, non-zero area, no self-intersections, counter-clockwise
// winding. The zero value is the empty polygon.
type Polygon struct {
	vertex []r2.Vec
}

// Validate builds a Polygon from an open or explicitly closed vertex
// loop. The winding is canonicalized to counter-clockwise. Degenerate
// or self-intersecting input fails with an error wrapping
// ErrDegenerate or ErrSelfIntersecting.
func Validate(vertex []r2.Vec) (Polygon, error) {
	v := make([]r2.Vec, len(vertex))
	copy(v, vertex)
	// Accept loops that repeat the first vertex at the end.
	if len(v) > 1 && d2.EqualWithin(v[0], v[len(v)-1], vertexTolerance) {
		v = v[:len(v)-1]
	}
	if len(v) < 3 {
		return Polygon{}, fmt.Errorf("%w: need at least 3 vertices, got %d", ErrDegenerate, len(v))
	}
	n := len(v)
	for i := range v {
		if d2.EqualWithin(v[i], v[(i+1)%n], vertexTolerance) {
			return Polygon{}, fmt.Errorf("%w: repeated vertex at index %d", ErrDegenerate, i)
		}
	}
	area := signedArea(v)
	if math.Abs(area) < areaTolerance {
		return Polygon{}, fmt.Errorf("%w: area is zero", ErrDegenerate)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacentEdges(i, j, n) {
				continue
			}
			if d2.SegmentsIntersect(v[i], v[(i+1)%n], v[j], v[(j+1)%n]) {
				return Polygon{}, fmt.Errorf("%w: edges %d and %d cross", ErrSelfIntersecting, i, j)
			}
		}
	}
	if area < 0 {
		reverse(v)
	}
	return Polygon{vertex: v}, nil
}

// adjacentEdges reports whether edges i and j (i < j) of an n-gon share
// a vertex. Adjacent edges always touch and are excluded from the
// self-intersection test.
func adjacentEdges(i, j, n int) bool {
	return j == i+1 || (i == 0 && j == n-1)
}

// Nagon returns a regular polygon with n sides inscribed in a circle
// of the given radius, first vertex on the +X axis.
func Nagon(n int, radius float64) (Polygon, error) {
	if n < 3 {
		return Polygon{}, fmt.Errorf("%w: nagon needs at least 3 sides, got %d", ErrDegenerate, n)
	}
	v := make([]r2.Vec, n)
	for i := range v {
		theta := 2 * math.Pi * float64(i) / float64(n)
		v[i] = r2.Vec{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
	}
	return Validate(v)
}

// Empty reports whether the polygon is the zero value.
func (p Polygon) Empty() bool { return len(p.vertex) == 0 }

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.vertex) }

// Vertices returns a copy of the polygon vertex loop in
// counter-clockwise order, without a repeated closing vertex.
func (p Polygon) Vertices() []r2.Vec {
	v := make([]r2.Vec, len(p.vertex))
	copy(v, p.vertex)
	return v
}

// Area returns the enclosed area. It is always positive for a
// validated polygon.
func (p Polygon) Area() float64 {
	return math.Abs(signedArea(p.vertex))
}

// Perimeter returns the total edge length of the polygon.
func (p Polygon) Perimeter() float64 {
	var sum float64
	n := len(p.vertex)
	for i := 0; i < n; i++ {
		sum += r2.Norm(r2.Sub(p.vertex[(i+1)%n], p.vertex[i]))
	}
	return sum
}

// Triangulate decomposes the polygon interior into triangles by ear
// clipping and returns index triples into the vertex loop.
func (p Polygon) Triangulate() ([][3]int, error) {
	if p.Empty() {
		return nil, fmt.Errorf("%w: empty polygon", ErrDegenerate)
	}
	idx := make([]int, len(p.vertex))
	for i := range idx {
		idx[i] = i
	}
	tris := make([][3]int, 0, len(p.vertex)-2)
	for len(idx) > 3 {
		if i, ok := p.findEar(idx); ok {
			n := len(idx)
			tris = append(tris, [3]int{idx[(i+n-1)%n], idx[i], idx[(i+1)%n]})
			idx = append(idx[:i], idx[i+1:]...)
			continue
		}
		// No strict ear left: drop a collinear vertex, it bounds no
		// area and produces no triangle.
		if i, ok := p.findCollinear(idx); ok {
			idx = append(idx[:i], idx[i+1:]...)
			continue
		}
		return nil, errors.New("form2: ear clipping made no progress")
	}
	tris = append(tris, [3]int{idx[0], idx[1], idx[2]})
	return tris, nil
}

// findEar locates a strictly convex vertex whose ear triangle contains
// no other remaining vertex.
func (p Polygon) findEar(idx []int) (int, bool) {
	n := len(idx)
	for i := 0; i < n; i++ {
		a := p.vertex[idx[(i+n-1)%n]]
		b := p.vertex[idx[i]]
		c := p.vertex[idx[(i+1)%n]]
		if d2.Orient(a, b, c) <= 0 {
			continue // reflex or collinear corner
		}
		blocked := false
		for j := 0; j < n; j++ {
			if j == i || j == (i+n-1)%n || j == (i+1)%n {
				continue
			}
			if pointInTriangle(p.vertex[idx[j]], a, b, c) {
				blocked = true
				break
			}
		}
		if !blocked {
			return i, true
		}
	}
	return 0, false
}

func (p Polygon) findCollinear(idx []int) (int, bool) {
	n := len(idx)
	for i := 0; i < n; i++ {
		a := p.vertex[idx[(i+n-1)%n]]
		b := p.vertex[idx[i]]
		c := p.vertex[idx[(i+1)%n]]
		if d2.Orient(a, b, c) == 0 {
			return i, true
		}
	}
	return 0, false
}

// pointInTriangle reports whether pt lies inside or on the boundary of
// the counter-clockwise triangle (a, b, c).
func pointInTriangle(pt, a, b, c r2.Vec) bool {
	return d2.Orient(a, b, pt) >= 0 &&
		d2.Orient(b, c, pt) >= 0 &&
		d2.Orient(c, a, pt) >= 0
}

// signedArea returns the shoelace area of the loop: positive for
// counter-clockwise winding.
func signedArea(v []r2.Vec) float64 {
	var sum float64
	n := len(v)
	for i := 0; i < n; i++ {
		sum += d2.Cross(v[i], v[(i+1)%n])
	}
	return sum / 2
}

func reverse(v []r2.Vec) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}
