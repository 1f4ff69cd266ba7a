// Package trimesh provides parametric solid primitives (cylinder,
// sphere, box and polygon extrusion) that present themselves as plain
// triangle meshes. Mesh data is synthesized lazily from a small set of
// shape parameters plus a 4x4 transform and cached until a parameter
// changes. Derived geometry is never mutable: the parameters are the
// single source of truth.
package trimesh

import (
	"errors"
	"fmt"

	"github.com/3togo/trimesh/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const tolerance = 1e-9

// Mesh is a plain triangle mesh: an independent snapshot with no link
// back to the primitive it may have been derived from.
type Mesh struct {
	Vertices []r3.Vec
	// Faces index into Vertices, three distinct indices per triangle.
	Faces [][3]int
	// FaceNormals holds one unit vector per face, same order as Faces.
	FaceNormals []r3.Vec
}

// Validate checks the structural invariants of the mesh: every face
// references three distinct in-range vertices and, when normals are
// present, there is exactly one normal per face.
func (m Mesh) Validate() error {
	if len(m.FaceNormals) != 0 && len(m.FaceNormals) != len(m.Faces) {
		return fmt.Errorf("trimesh: %d face normals for %d faces", len(m.FaceNormals), len(m.Faces))
	}
	nv := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= nv {
				return fmt.Errorf("trimesh: face %d references vertex %d of %d", i, idx, nv)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			return fmt.Errorf("trimesh: face %d has repeated vertex indices", i)
		}
	}
	return nil
}

// Triangle resolves face i to its three vertices.
func (m Mesh) Triangle(i int) [3]r3.Vec {
	f := m.Faces[i]
	return [3]r3.Vec{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// Bounds returns the axis-aligned bounding box of the mesh vertices.
// The zero box is returned for an empty mesh.
func (m Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	bb := r3.Box{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		bb.Min = d3.MinElem(bb.Min, v)
		bb.Max = d3.MaxElem(bb.Max, v)
	}
	return bb
}

// Clone returns a deep copy of the mesh.
func (m Mesh) Clone() Mesh {
	c := Mesh{
		Vertices:    make([]r3.Vec, len(m.Vertices)),
		Faces:       make([][3]int, len(m.Faces)),
		FaceNormals: make([]r3.Vec, len(m.FaceNormals)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Faces, m.Faces)
	copy(c.FaceNormals, m.FaceNormals)
	return c
}

// WindingAligned reports whether the winding order of a triangle agrees
// with the candidate normal under the right-hand rule. A degenerate
// triangle is never aligned.
func WindingAligned(tri [3]r3.Vec, normal r3.Vec) bool {
	cross := r3.Cross(r3.Sub(tri[1], tri[0]), r3.Sub(tri[2], tri[0]))
	return r3.Dot(cross, normal) > 0
}

var errUndefinedSynthesis = errors.New("trimesh: primitive does not define mesh synthesis")
