package form3

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/3togo/trimesh/form2"
)

// assertMesh checks the structural invariants shared by every
// generator: in-range distinct face indices, one unit normal per face
// and windings that agree with the normals.
func assertMesh(t *testing.T, vertices []r3.Vec, faces [][3]int, normals []r3.Vec) {
	t.Helper()
	if len(normals) != len(faces) {
		t.Fatalf("%d normals for %d faces", len(normals), len(faces))
	}
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				t.Fatalf("face %d references vertex %d of %d", i, idx, len(vertices))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[2] == f[0] {
			t.Fatalf("face %d has repeated indices", i)
		}
		if !scalar.EqualWithinAbs(r3.Norm(normals[i]), 1, 1e-12) {
			t.Fatalf("face %d normal is not unit length: %v", i, normals[i])
		}
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		cross := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
		if r3.Dot(cross, normals[i]) <= 0 {
			t.Fatalf("face %d winding disagrees with its normal", i)
		}
	}
}

func TestIcosphereTopology(t *testing.T) {
	for n := 0; n <= 4; n++ {
		v, f, nrm, err := Icosphere(n)
		if err != nil {
			t.Fatal(err)
		}
		wantV := 10*pow4(n) + 2
		wantF := 20 * pow4(n)
		if len(v) != wantV || len(f) != wantF {
			t.Errorf("subdivisions=%d: %d vertices, %d faces, want %d, %d",
				n, len(v), len(f), wantV, wantF)
		}
		assertMesh(t, v, f, nrm)
	}
	if _, _, _, err := Icosphere(-1); err == nil {
		t.Error("negative subdivision count did not fail")
	}
}

func pow4(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 4
	}
	return p
}

func TestIcosphereVerticesOnUnitSphere(t *testing.T) {
	v, _, _, err := Icosphere(3)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range v {
		if !scalar.EqualWithinAbs(r3.Norm(p), 1, 1e-12) {
			t.Fatalf("vertex %d at radius %v", i, r3.Norm(p))
		}
	}
}

func TestUnitBox(t *testing.T) {
	v, f, n := UnitBox()
	if len(v) != 8 || len(f) != 12 {
		t.Fatalf("%d vertices, %d faces, want 8, 12", len(v), len(f))
	}
	assertMesh(t, v, f, n)
	for i, p := range v {
		if a := [3]float64{p.X, p.Y, p.Z}; a[0]*a[0] != 0.25 || a[1]*a[1] != 0.25 || a[2]*a[2] != 0.25 {
			t.Fatalf("vertex %d not at a unit cube corner: %v", i, p)
		}
	}
}

func TestCylinderTopology(t *testing.T) {
	for _, s := range []int{3, 7, 32} {
		v, f, n, err := Cylinder(1, 2, s)
		if err != nil {
			t.Fatal(err)
		}
		if len(v) != 2*s+2 {
			t.Errorf("sections=%d: %d vertices, want %d", s, len(v), 2*s+2)
		}
		if len(f) != 4*s {
			t.Errorf("sections=%d: %d faces, want %d", s, len(f), 4*s)
		}
		assertMesh(t, v, f, n)
	}
}

func TestCylinderBadParameters(t *testing.T) {
	if _, _, _, err := Cylinder(1, 1, 2); err == nil {
		t.Error("2 sections did not fail")
	}
	if _, _, _, err := Cylinder(0, 1, 8); err == nil {
		t.Error("zero radius did not fail")
	}
	if _, _, _, err := Cylinder(1, -1, 8); err == nil {
		t.Error("negative height did not fail")
	}
}

func TestExtrude(t *testing.T) {
	p, err := form2.Validate([]r2.Vec{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1},
		{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	v, f, n, err := Extrude(p, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(v) != 12 {
		t.Errorf("%d vertices, want 12", len(v))
	}
	if want := 2*4 + 2*6; len(f) != want {
		t.Errorf("%d faces, want %d", len(f), want)
	}
	assertMesh(t, v, f, n)
}

func TestExtrudeBadParameters(t *testing.T) {
	if _, _, _, err := Extrude(form2.Polygon{}, 1); err == nil {
		t.Error("empty polygon did not fail")
	}
	p, err := form2.Nagon(5, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Extrude(p, 0); err == nil {
		t.Error("zero height did not fail")
	}
}

func TestErrMsgNamesCaller(t *testing.T) {
	err := ErrMsg("boom")
	if err == nil {
		t.Fatal("nil error")
	}
	// The message carries the calling function for quick diagnosis.
	if got := err.Error(); !strings.Contains(got, "TestErrMsgNamesCaller") || !strings.Contains(got, "boom") {
		t.Fatalf("unexpected message %q", got)
	}
}
