package trimesh_test

import (
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/3togo/trimesh"
)

// The synthesized meshes are cross-checked against sdfx signed
// distance fields of the same solids: every mesh vertex must lie on
// the zero level-set of the exact SDF.

const sdfTolerance = 1e-9

func assertOnSurface(t *testing.T, s sdf.SDF3, vertices []r3.Vec) {
	t.Helper()
	for i, v := range vertices {
		d := s.Evaluate(v3.Vec{X: v.X, Y: v.Y, Z: v.Z})
		if d > sdfTolerance || d < -sdfTolerance {
			t.Fatalf("vertex %d at %v is distance %g from the surface", i, v, d)
		}
	}
}

func TestSphereVerticesOnSDFSurface(t *testing.T) {
	const radius = 1.5
	field, err := sdf.Sphere3D(radius)
	if err != nil {
		t.Fatal(err)
	}
	s := trimesh.NewSphere(trimesh.SphereConfig{Radius: radius, Subdivisions: 3})
	v, err := s.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	assertOnSurface(t, field, v)
}

func TestBoxVerticesOnSDFSurface(t *testing.T) {
	extents := r3.Vec{X: 2, Y: 3, Z: 4}
	field, err := sdf.Box3D(v3.Vec{X: extents.X, Y: extents.Y, Z: extents.Z}, 0)
	if err != nil {
		t.Fatal(err)
	}
	b := trimesh.NewBox(trimesh.BoxConfig{Extents: extents})
	v, err := b.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	assertOnSurface(t, field, v)
}

func TestCylinderVerticesOnSDFSurface(t *testing.T) {
	const (
		radius = 1.25
		height = 3
	)
	field, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		t.Fatal(err)
	}
	c := trimesh.NewCylinder(trimesh.CylinderConfig{
		Radius:   radius,
		Height:   height,
		Sections: 32,
	})
	v, err := c.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	assertOnSurface(t, field, v)
}
