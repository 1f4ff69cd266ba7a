package trimesh

import (
	"log/slog"
	"math"

	"github.com/3togo/trimesh/form3"
	"github.com/3togo/trimesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// BoxConfig holds the box parameter schema. A zero Extents vector
// defaults to (1,1,1); the zero Transform is the identity. Negative
// extents components are legal and mirror the box.
type BoxConfig struct {
	Extents   r3.Vec
	Transform Transform
}

// Box is a parametric rectangular solid: a unit cube template scaled
// component-wise by the extents and placed by a 4x4 transform.
type Box struct {
	lazy
	extents   r3.Vec
	transform Transform
	unit      Mesh
	vol       scalarCache
}

var _ Solid = (*Box)(nil)

// NewBox creates a box primitive. The unit cube template is generated
// eagerly; the placed mesh is not computed until first requested.
func NewBox(cfg BoxConfig) *Box {
	b := &Box{
		extents:   cfg.Extents,
		transform: cfg.Transform,
	}
	if b.extents == (r3.Vec{}) {
		b.extents = d3.Elem(1)
	}
	v, f, n := form3.UnitBox()
	b.unit = Mesh{Vertices: v, Faces: f, FaceNormals: n}
	b.src = b
	return b
}

// Extents returns the box side lengths.
func (b *Box) Extents() r3.Vec { return b.extents }

// SetExtents changes the side lengths and invalidates the derived mesh
// and volume.
func (b *Box) SetExtents(e r3.Vec) {
	b.extents = e
	b.invalidate()
}

// Transform returns the placement transform.
func (b *Box) Transform() Transform { return b.transform }

// SetTransform changes the placement and invalidates the derived mesh.
func (b *Box) SetTransform(t Transform) {
	b.transform = t
	b.invalidate()
}

// Center returns the translation column of the placement transform.
func (b *Box) Center() r3.Vec { return b.transform.Translation() }

// SetCenter replaces only the translation column of the placement
// transform, leaving the rotation block untouched.
func (b *Box) SetCenter(c r3.Vec) {
	b.transform = b.transform.WithTranslation(c)
	b.invalidate()
}

// IsOriented reports whether the box has a non-trivial orientation,
// i.e. the transform's rotation block is not the identity.
func (b *Box) IsOriented() bool {
	return !b.transform.RotationIsIdentity()
}

// Volume returns the product of the extents components, cached until
// the extents change.
func (b *Box) Volume() float64 {
	if v, ok := b.vol.get(b.generation()); ok {
		return v
	}
	return b.vol.put(b.generation(), b.extents.X*b.extents.Y*b.extents.Z)
}

// Attribute returns a schema parameter by name: "extents" or
// "transform".
func (b *Box) Attribute(key string) (any, error) {
	switch key {
	case "extents":
		return b.extents, nil
	case "transform":
		return b.transform, nil
	}
	return nil, &SchemaError{Key: key}
}

// synthesize scales the unit cube by the extents, applies the full
// placement transform to the vertices and its rotation block to the
// normals, then repairs the face winding if the combination introduced
// a reflection.
func (b *Box) synthesize() (Mesh, error) {
	slog.Debug("trimesh: creating box mesh", "extents", b.extents)
	verts := make([]r3.Vec, len(b.unit.Vertices))
	for i, v := range b.unit.Vertices {
		verts[i] = b.transform.Apply(d3.MulElem(v, b.extents))
	}
	// Normals transform as covectors: a negative extents component
	// mirrors that axis and flips the sign of the normal along it.
	local := make([]r3.Vec, len(b.unit.FaceNormals))
	sx := math.Copysign(1, b.extents.X)
	sy := math.Copysign(1, b.extents.Y)
	sz := math.Copysign(1, b.extents.Z)
	for i, n := range b.unit.FaceNormals {
		local[i] = r3.Vec{X: n.X * sx, Y: n.Y * sy, Z: n.Z * sz}
	}
	normals := b.transform.applyToNormals(local)
	faces := make([][3]int, len(b.unit.Faces))
	copy(faces, b.unit.Faces)

	// A negative-determinant rotation block or negative extents flip
	// every face the same way, so one representative face decides for
	// the whole mesh.
	first := [3]r3.Vec{verts[faces[0][0]], verts[faces[0][1]], verts[faces[0][2]]}
	if !WindingAligned(first, normals[0]) {
		for i := range faces {
			faces[i][0], faces[i][2] = faces[i][2], faces[i][0]
		}
	}
	return Mesh{Vertices: verts, Faces: faces, FaceNormals: normals}, nil
}
