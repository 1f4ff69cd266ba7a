package trimesh

import (
	"log/slog"

	"github.com/3togo/trimesh/form3"
)

// CylinderConfig holds the cylinder parameter schema. Zero-valued
// fields take their defaults at construction: radius 1, height 1,
// 32 sections, identity transform.
type CylinderConfig struct {
	Radius    float64
	Height    float64
	Sections  int
	Transform Transform
}

// Cylinder is a parametric closed cylinder centered at its local
// origin with its axis on local Z, placed by a 4x4 transform.
type Cylinder struct {
	lazy
	radius    float64
	height    float64
	sections  int
	transform Transform
}

var _ Solid = (*Cylinder)(nil)

// NewCylinder creates a cylinder primitive. Mesh data is not computed
// until first requested.
func NewCylinder(cfg CylinderConfig) *Cylinder {
	c := &Cylinder{
		radius:    cfg.Radius,
		height:    cfg.Height,
		sections:  cfg.Sections,
		transform: cfg.Transform,
	}
	if c.radius == 0 {
		c.radius = 1
	}
	if c.height == 0 {
		c.height = 1
	}
	if c.sections == 0 {
		c.sections = 32
	}
	c.src = c
	return c
}

// Radius returns the cylinder radius.
func (c *Cylinder) Radius() float64 { return c.radius }

// SetRadius changes the radius and invalidates the derived mesh.
func (c *Cylinder) SetRadius(r float64) {
	c.radius = r
	c.invalidate()
}

// Height returns the cylinder height.
func (c *Cylinder) Height() float64 { return c.height }

// SetHeight changes the height and invalidates the derived mesh.
func (c *Cylinder) SetHeight(h float64) {
	c.height = h
	c.invalidate()
}

// Sections returns the number of circumferential facets.
func (c *Cylinder) Sections() int { return c.sections }

// SetSections changes the facet count and invalidates the derived mesh.
func (c *Cylinder) SetSections(n int) {
	c.sections = n
	c.invalidate()
}

// Transform returns the placement transform.
func (c *Cylinder) Transform() Transform { return c.transform }

// SetTransform changes the placement and invalidates the derived mesh.
func (c *Cylinder) SetTransform(t Transform) {
	c.transform = t
	c.invalidate()
}

// Attribute returns a schema parameter by name: "radius", "height",
// "sections" or "transform".
func (c *Cylinder) Attribute(key string) (any, error) {
	switch key {
	case "radius":
		return c.radius, nil
	case "height":
		return c.height, nil
	case "sections":
		return c.sections, nil
	case "transform":
		return c.transform, nil
	}
	return nil, &SchemaError{Key: key}
}

func (c *Cylinder) synthesize() (Mesh, error) {
	slog.Debug("trimesh: creating cylinder mesh",
		"radius", c.radius, "height", c.height, "sections", c.sections)
	v, f, n, err := form3.Cylinder(c.radius, c.height, c.sections)
	if err != nil {
		return Mesh{}, err
	}
	return Mesh{
		Vertices:    c.transform.applyToPoints(v),
		Faces:       f,
		FaceNormals: c.transform.applyToNormals(n),
	}, nil
}
