package trimesh

import (
	"log/slog"
	"math"

	"github.com/3togo/trimesh/form3"
	"gonum.org/v1/gonum/spatial/r3"
)

// SphereConfig holds the sphere parameter schema. Zero-valued fields
// take their defaults at construction: radius 1, center at the origin,
// 3 icosphere subdivisions. Subdivisions are fixed for the lifetime of
// the primitive and clamped to at most 8.
type SphereConfig struct {
	Radius       float64
	Center       r3.Vec
	Subdivisions int
}

// Sphere is a parametric sphere placed by uniform scale and
// translation of a precomputed unit icosphere. Rotation is not
// supported for sphere placement: a sphere is rotation-invariant.
type Sphere struct {
	lazy
	radius       float64
	center       r3.Vec
	subdivisions int
	unit         Mesh
	vol          scalarCache
}

var _ Solid = (*Sphere)(nil)

const maxSubdivisions = 8

// NewSphere creates a sphere primitive. The unit icosphere template is
// generated eagerly; the placed mesh is not computed until first
// requested.
func NewSphere(cfg SphereConfig) *Sphere {
	s := &Sphere{
		radius:       cfg.Radius,
		center:       cfg.Center,
		subdivisions: cfg.Subdivisions,
	}
	if s.radius == 0 {
		s.radius = 1
	}
	if s.subdivisions <= 0 {
		s.subdivisions = 3
	}
	if s.subdivisions > maxSubdivisions {
		s.subdivisions = maxSubdivisions
	}
	v, f, n, err := form3.Icosphere(s.subdivisions)
	if err != nil {
		panic(err) // unreachable: subdivisions clamped above
	}
	s.unit = Mesh{Vertices: v, Faces: f, FaceNormals: n}
	s.src = s
	return s
}

// Radius returns the sphere radius.
func (s *Sphere) Radius() float64 { return s.radius }

// SetRadius changes the radius and invalidates the derived mesh and
// volume.
func (s *Sphere) SetRadius(r float64) {
	s.radius = r
	s.invalidate()
}

// Center returns the sphere center.
func (s *Sphere) Center() r3.Vec { return s.center }

// SetCenter moves the sphere and invalidates the derived mesh.
func (s *Sphere) SetCenter(c r3.Vec) {
	s.center = c
	s.invalidate()
}

// Subdivisions returns the icosphere subdivision count fixed at
// construction.
func (s *Sphere) Subdivisions() int { return s.subdivisions }

// Volume returns the analytic sphere volume 4/3*pi*r^3, cached until
// the radius changes.
func (s *Sphere) Volume() float64 {
	if v, ok := s.vol.get(s.generation()); ok {
		return v
	}
	return s.vol.put(s.generation(), 4.0/3.0*math.Pi*s.radius*s.radius*s.radius)
}

// Attribute returns a schema parameter by name: "radius", "center" or
// "subdivisions".
func (s *Sphere) Attribute(key string) (any, error) {
	switch key {
	case "radius":
		return s.radius, nil
	case "center":
		return s.center, nil
	case "subdivisions":
		return s.subdivisions, nil
	}
	return nil, &SchemaError{Key: key}
}

// synthesize scales and translates the unit icosphere. Faces and
// normals carry over unchanged: uniform positive scaling preserves
// topology and outward normal orientation.
func (s *Sphere) synthesize() (Mesh, error) {
	slog.Debug("trimesh: creating sphere mesh", "radius", s.radius, "center", s.center)
	m := Mesh{
		Vertices:    make([]r3.Vec, len(s.unit.Vertices)),
		Faces:       make([][3]int, len(s.unit.Faces)),
		FaceNormals: make([]r3.Vec, len(s.unit.FaceNormals)),
	}
	for i, v := range s.unit.Vertices {
		m.Vertices[i] = r3.Add(r3.Scale(s.radius, v), s.center)
	}
	copy(m.Faces, s.unit.Faces)
	copy(m.FaceNormals, s.unit.FaceNormals)
	return m, nil
}
