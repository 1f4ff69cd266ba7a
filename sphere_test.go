package trimesh

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestSphereDefaults(t *testing.T) {
	s := NewSphere(SphereConfig{})
	if s.Radius() != 1 {
		t.Errorf("default radius = %v", s.Radius())
	}
	if s.Center() != (r3.Vec{}) {
		t.Errorf("default center = %v", s.Center())
	}
	if s.Subdivisions() != 3 {
		t.Errorf("default subdivisions = %v", s.Subdivisions())
	}
}

func TestSphereSubdivisionClamp(t *testing.T) {
	if got := NewSphere(SphereConfig{Subdivisions: 99}).Subdivisions(); got != maxSubdivisions {
		t.Errorf("oversized subdivision count = %d, want %d", got, maxSubdivisions)
	}
	if got := NewSphere(SphereConfig{Subdivisions: -1}).Subdivisions(); got != 3 {
		t.Errorf("negative subdivision count = %d, want default 3", got)
	}
}

func TestSphereTopology(t *testing.T) {
	// Icosphere counts: 10*4^n+2 vertices, 20*4^n faces.
	for _, tc := range []struct {
		subdivisions    int
		vertices, faces int
	}{
		{1, 42, 80},
		{2, 162, 320},
		{3, 642, 1280},
		{4, 2562, 5120},
	} {
		s := NewSphere(SphereConfig{Subdivisions: tc.subdivisions})
		v, err := s.Vertices()
		if err != nil {
			t.Fatal(err)
		}
		f, _ := s.Faces()
		if len(v) != tc.vertices || len(f) != tc.faces {
			t.Errorf("subdivisions=%d: %d vertices, %d faces, want %d, %d",
				tc.subdivisions, len(v), len(f), tc.vertices, tc.faces)
		}
	}
}

func TestSphereVerticesOnSurface(t *testing.T) {
	const radius = 2.5
	center := r3.Vec{X: 1, Y: -2, Z: 3}
	s := NewSphere(SphereConfig{Radius: radius, Center: center, Subdivisions: 2})
	v, err := s.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range v {
		if got := r3.Norm(r3.Sub(p, center)); !scalar.EqualWithinAbs(got, radius, 1e-12) {
			t.Fatalf("vertex %d at distance %v from center, want %v", i, got, radius)
		}
	}
}

func TestSphereVolume(t *testing.T) {
	s := NewSphere(SphereConfig{Radius: 2})
	want := 4.0 / 3.0 * math.Pi * 8
	if got := s.Volume(); !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("Volume() = %v, want %v", got, want)
	}
	// The cached volume must track radius changes.
	s.SetRadius(3)
	want = 4.0 / 3.0 * math.Pi * 27
	if got := s.Volume(); !scalar.EqualWithinAbs(got, want, 1e-12) {
		t.Errorf("Volume() after SetRadius(3) = %v, want %v", got, want)
	}
}

func TestSphereSetCenterInvalidates(t *testing.T) {
	s := NewSphere(SphereConfig{Subdivisions: 1})
	v1, err := s.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	bb1 := Mesh{Vertices: v1}.Bounds()
	s.SetCenter(r3.Vec{Z: 5})
	v2, err := s.Vertices()
	if err != nil {
		t.Fatal(err)
	}
	bb2 := Mesh{Vertices: v2}.Bounds()
	if !scalar.EqualWithinAbs(bb2.Min.Z-bb1.Min.Z, 5, 1e-12) {
		t.Errorf("bounds did not move with center: %v -> %v", bb1.Min.Z, bb2.Min.Z)
	}
}

func TestSphereOutwardNormals(t *testing.T) {
	s := NewSphere(SphereConfig{Subdivisions: 2})
	m, err := s.Mesh()
	if err != nil {
		t.Fatal(err)
	}
	for i := range m.Faces {
		tri := m.Triangle(i)
		centroid := r3.Scale(1.0/3.0, r3.Add(tri[0], r3.Add(tri[1], tri[2])))
		if r3.Dot(centroid, m.FaceNormals[i]) <= 0 {
			t.Fatalf("face %d normal points inward", i)
		}
	}
}

func TestSphereAttributes(t *testing.T) {
	s := NewSphere(SphereConfig{Radius: 4, Center: r3.Vec{Y: 1}, Subdivisions: 2})
	if v, err := s.Attribute("radius"); err != nil || v.(float64) != 4 {
		t.Errorf("radius = %v, %v", v, err)
	}
	if v, err := s.Attribute("center"); err != nil || v.(r3.Vec) != (r3.Vec{Y: 1}) {
		t.Errorf("center = %v, %v", v, err)
	}
	if v, err := s.Attribute("subdivisions"); err != nil || v.(int) != 2 {
		t.Errorf("subdivisions = %v, %v", v, err)
	}
}
