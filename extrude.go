package trimesh

import (
	"fmt"
	"log/slog"

	"github.com/3togo/trimesh/form2"
	"github.com/3togo/trimesh/form3"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExtrusionConfig holds the extrusion parameter schema. Polygon and
// Height have no defaults: leaving them zero creates an extrusion
// whose mesh cannot be synthesized until both are set. The zero
// Transform is the identity.
type ExtrusionConfig struct {
	Polygon   form2.Polygon
	Height    float64
	Transform Transform
}

// Extrusion is a parametric solid swept from a planar polygon along
// local +Z, placed by a 4x4 transform.
type Extrusion struct {
	lazy
	polygon   form2.Polygon
	height    float64
	hasHeight bool
	transform Transform
}

var _ Solid = (*Extrusion)(nil)

// NewExtrusion creates an extrusion primitive. A zero Height in the
// config is treated as unset.
func NewExtrusion(cfg ExtrusionConfig) *Extrusion {
	e := &Extrusion{
		polygon:   cfg.Polygon,
		transform: cfg.Transform,
	}
	if cfg.Height != 0 {
		e.height = cfg.Height
		e.hasHeight = true
	}
	e.src = e
	return e
}

// Polygon returns the cross-section polygon, or a
// MissingParameterError if it has not been set.
func (e *Extrusion) Polygon() (form2.Polygon, error) {
	if e.polygon.Empty() {
		return form2.Polygon{}, &MissingParameterError{Param: "extrude_polygon"}
	}
	return e.polygon, nil
}

// SetPolygon changes the cross section and invalidates the derived
// mesh. The polygon must be a validated, non-empty form2.Polygon.
func (e *Extrusion) SetPolygon(p form2.Polygon) error {
	if p.Empty() {
		return fmt.Errorf("trimesh: extrusion cross section: %w", form2.ErrDegenerate)
	}
	e.polygon = p
	e.invalidate()
	return nil
}

// Height returns the extrusion height, or a MissingParameterError if
// it has not been set.
func (e *Extrusion) Height() (float64, error) {
	if !e.hasHeight {
		return 0, &MissingParameterError{Param: "extrude_height"}
	}
	return e.height, nil
}

// SetHeight changes the extrusion height and invalidates the derived
// mesh.
func (e *Extrusion) SetHeight(h float64) {
	e.height = h
	e.hasHeight = true
	e.invalidate()
}

// Transform returns the placement transform.
func (e *Extrusion) Transform() Transform { return e.transform }

// SetTransform changes the placement and invalidates the derived mesh.
func (e *Extrusion) SetTransform(t Transform) {
	e.transform = t
	e.invalidate()
}

// Direction returns the current world-space extrusion axis: the
// transform's rotation block applied to local +Z.
func (e *Extrusion) Direction() r3.Vec {
	return e.transform.ApplyDirection(r3.Vec{Z: 1})
}

// Slide translates the extrusion along its own local Z axis by
// composing the placement with a pure Z translation on the right.
// Unlike editing the translation column directly, the slide follows
// the extrusion axis even when the transform is rotated.
func (e *Extrusion) Slide(distance float64) {
	e.transform = e.transform.Mul(Translating(r3.Vec{Z: distance}))
	e.invalidate()
}

// Attribute returns a schema parameter by name: "polygon", "height" or
// "transform". Unset required parameters yield a
// MissingParameterError.
func (e *Extrusion) Attribute(key string) (any, error) {
	switch key {
	case "polygon":
		return e.Polygon()
	case "height":
		return e.Height()
	case "transform":
		return e.transform, nil
	}
	return nil, &SchemaError{Key: key}
}

func (e *Extrusion) synthesize() (Mesh, error) {
	p, err := e.Polygon()
	if err != nil {
		return Mesh{}, err
	}
	h, err := e.Height()
	if err != nil {
		return Mesh{}, err
	}
	slog.Debug("trimesh: creating extrusion mesh", "vertices", p.Len(), "height", h)
	v, f, n, err := form3.Extrude(p, h)
	if err != nil {
		return Mesh{}, err
	}
	return Mesh{
		Vertices:    e.transform.applyToPoints(v),
		Faces:       f,
		FaceNormals: e.transform.applyToNormals(n),
	}, nil
}
