package trimesh

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 4x4 affine matrix combining a rotation/scale block
// (top-left 3x3) and a translation column. The zero value of Transform
// is the identity transform.
type Transform struct {
	// The identity matrix is subtracted from the diagonal so that the
	// zero value represents identity:
	//  d00 = x00-1, d11 = x11-1, d22 = x22-1, d33 = x33-1
	d00, x01, x02, x03 float64
	x10, d11, x12, x13 float64
	x20, x21, d22, x23 float64
	x30, x31, x32, d33 float64
}

// Identity returns the identity transform.
func Identity() Transform { return Transform{} }

// NewTransform builds a transform from 16 row-major values. It returns
// a ShapeError if the slice does not describe a 4x4 matrix.
func NewTransform(a []float64) (Transform, error) {
	if len(a) != 16 {
		return Transform{}, &ShapeError{
			Want: "4x4 matrix (16 row-major values)",
			Got:  fmt.Sprintf("%d values", len(a)),
		}
	}
	var v [16]float64
	copy(v[:], a)
	return fromArray(v), nil
}

// Translating returns a pure translation transform.
func Translating(v r3.Vec) Transform {
	return Transform{x03: v.X, x13: v.Y, x23: v.Z}
}

// Scaling returns a transform scaling each axis independently.
// Negative factors mirror the respective axis.
func Scaling(v r3.Vec) Transform {
	return Transform{d00: v.X - 1, d11: v.Y - 1, d22: v.Z - 1}
}

// Rotating returns a rotation of theta radians about the given axis
// through the origin (Rodrigues' formula).
func Rotating(axis r3.Vec, theta float64) Transform {
	u := r3.Unit(axis)
	s, c := math.Sin(theta), math.Cos(theta)
	k := 1 - c
	return fromArray([16]float64{
		c + u.X*u.X*k, u.X*u.Y*k - u.Z*s, u.X*u.Z*k + u.Y*s, 0,
		u.Y*u.X*k + u.Z*s, c + u.Y*u.Y*k, u.Y*u.Z*k - u.X*s, 0,
		u.Z*u.X*k - u.Y*s, u.Z*u.Y*k + u.X*s, c + u.Z*u.Z*k, 0,
		0, 0, 0, 1,
	})
}

func fromArray(a [16]float64) Transform {
	return Transform{
		d00: a[0] - 1, x01: a[1], x02: a[2], x03: a[3],
		x10: a[4], d11: a[5] - 1, x12: a[6], x13: a[7],
		x20: a[8], x21: a[9], d22: a[10] - 1, x23: a[11],
		x30: a[12], x31: a[13], x32: a[14], d33: a[15] - 1,
	}
}

func (t Transform) array() [16]float64 {
	return [16]float64{
		t.d00 + 1, t.x01, t.x02, t.x03,
		t.x10, t.d11 + 1, t.x12, t.x13,
		t.x20, t.x21, t.d22 + 1, t.x23,
		t.x30, t.x31, t.x32, t.d33 + 1,
	}
}

// Slice returns a copy of the matrix in row-major order (16 values).
func (t Transform) Slice() []float64 {
	a := t.array()
	return a[:]
}

// Apply transforms a point by the full affine matrix, including the
// perspective divide for the (rare) non-affine bottom row.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	w := 1 / (t.x30*p.X + t.x31*p.Y + t.x32*p.Z + t.d33 + 1)
	return r3.Vec{
		X: ((t.d00+1)*p.X + t.x01*p.Y + t.x02*p.Z + t.x03) * w,
		Y: (t.x10*p.X + (t.d11+1)*p.Y + t.x12*p.Z + t.x13) * w,
		Z: (t.x20*p.X + t.x21*p.Y + (t.d22+1)*p.Z + t.x23) * w,
	}
}

// ApplyDirection transforms a direction vector by the rotation/scale
// block only. Translation never affects directions.
func (t Transform) ApplyDirection(d r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*d.X + t.x01*d.Y + t.x02*d.Z,
		Y: t.x10*d.X + (t.d11+1)*d.Y + t.x12*d.Z,
		Z: t.x20*d.X + t.x21*d.Y + (t.d22+1)*d.Z,
	}
}

// Mul returns the composition t*b, i.e. b applied first.
func (t Transform) Mul(b Transform) Transform {
	if t == (Transform{}) {
		return b
	}
	if b == (Transform{}) {
		return t
	}
	x := t.array()
	y := b.array()
	var m [16]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += x[i*4+k] * y[k*4+j]
			}
			m[i*4+j] = sum
		}
	}
	return fromArray(m)
}

// Translation returns the translation column of the transform.
func (t Transform) Translation() r3.Vec {
	return r3.Vec{X: t.x03, Y: t.x13, Z: t.x23}
}

// WithTranslation returns a copy of the transform with the translation
// column replaced. The rotation/scale block is untouched.
func (t Transform) WithTranslation(v r3.Vec) Transform {
	t.x03 = v.X
	t.x13 = v.Y
	t.x23 = v.Z
	return t
}

// RotationIsIdentity reports whether the rotation/scale block is the
// identity within tolerance, i.e. the transform is at most a pure
// translation.
func (t Transform) RotationIsIdentity() bool {
	return math.Abs(t.d00) < tolerance &&
		math.Abs(t.d11) < tolerance &&
		math.Abs(t.d22) < tolerance &&
		math.Abs(t.x01) < tolerance &&
		math.Abs(t.x02) < tolerance &&
		math.Abs(t.x10) < tolerance &&
		math.Abs(t.x12) < tolerance &&
		math.Abs(t.x20) < tolerance &&
		math.Abs(t.x21) < tolerance
}

// EqualWithin tests the equality of two transforms to within a
// per-element tolerance.
func (t Transform) EqualWithin(b Transform, tol float64) bool {
	x := t.array()
	y := b.array()
	for i := range x {
		if math.Abs(x[i]-y[i]) > tol {
			return false
		}
	}
	return true
}

// applyToPoints returns the transform applied to every point. The
// input is never modified; identity returns a plain copy.
func (t Transform) applyToPoints(pts []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	if t == (Transform{}) {
		copy(out, pts)
		return out
	}
	for i, p := range pts {
		out[i] = t.Apply(p)
	}
	return out
}

// applyToNormals rotates unit normals by the rotation/scale block and
// re-normalizes, so shear or non-uniform scale cannot produce
// non-unit normals.
func (t Transform) applyToNormals(normals []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(normals))
	if t.RotationIsIdentity() {
		copy(out, normals)
		return out
	}
	for i, n := range normals {
		out[i] = r3.Unit(t.ApplyDirection(n))
	}
	return out
}
