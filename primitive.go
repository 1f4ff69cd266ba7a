package trimesh

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is the read surface every primitive exposes: the derived
// triangle mesh plus schema-gated access to the shape parameters.
type Solid interface {
	// Vertices, Faces and FaceNormals return the derived mesh arrays,
	// synthesizing and caching them on first access. The returned
	// slices are owned by the primitive and must not be modified.
	Vertices() ([]r3.Vec, error)
	Faces() ([][3]int, error)
	FaceNormals() ([]r3.Vec, error)
	// Mesh returns an independent snapshot of the derived mesh with no
	// link back to the primitive.
	Mesh() (Mesh, error)
	// Attribute returns the value of a named schema parameter. A key
	// outside the primitive's schema yields a SchemaError.
	Attribute(key string) (any, error)
}

// synthesizer produces a complete mesh from the current parameter
// values. Each primitive variant supplies its own implementation;
// it is the only code allowed to produce derived geometry.
type synthesizer interface {
	synthesize() (Mesh, error)
}

// lazy is the caching core shared by all primitives. The cache is
// keyed to a monotonic generation counter bumped by every parameter
// setter: a cache built against an older generation is treated as
// absent, so setters never touch the cache directly.
type lazy struct {
	src      synthesizer
	gen      uint64
	cacheGen uint64
	cache    *Mesh
}

// invalidate marks all derived state stale. Every parameter setter
// must call this before returning.
func (l *lazy) invalidate() { l.gen++ }

// generation returns the current parameter generation, used to key
// derived scalar caches (volumes) to the same invalidation scheme.
func (l *lazy) generation() uint64 { return l.gen }

// mesh returns the cached mesh, synthesizing it if absent or stale.
// All three derived arrays are populated from a single synthesis so a
// caller can never observe a partially filled cache.
func (l *lazy) mesh() (*Mesh, error) {
	if l.cache != nil && l.cacheGen == l.gen {
		return l.cache, nil
	}
	if l.src == nil {
		return nil, errUndefinedSynthesis
	}
	m, err := l.src.synthesize()
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	l.cache = &m
	l.cacheGen = l.gen
	return l.cache, nil
}

func (l *lazy) Vertices() ([]r3.Vec, error) {
	m, err := l.mesh()
	if err != nil {
		return nil, err
	}
	return m.Vertices, nil
}

func (l *lazy) Faces() ([][3]int, error) {
	m, err := l.mesh()
	if err != nil {
		return nil, err
	}
	return m.Faces, nil
}

func (l *lazy) FaceNormals() ([]r3.Vec, error) {
	m, err := l.mesh()
	if err != nil {
		return nil, err
	}
	return m.FaceNormals, nil
}

func (l *lazy) Mesh() (Mesh, error) {
	m, err := l.mesh()
	if err != nil {
		return Mesh{}, err
	}
	return m.Clone(), nil
}

// Derived geometry is a pure function of the parameters; honoring a
// direct write would silently desynchronize the mesh from its source
// of truth. The setters below are accepted for compatibility with
// generic mesh-consumer code but never take effect.

func (l *lazy) SetVertices([]r3.Vec) {
	slog.Warn("trimesh: primitive vertices are derived and immutable, not setting")
}

func (l *lazy) SetFaces([][3]int) {
	slog.Warn("trimesh: primitive faces are derived and immutable, not setting")
}

func (l *lazy) SetFaceNormals([]r3.Vec) {
	slog.Warn("trimesh: primitive face normals are derived and immutable, not setting")
}

// scalarCache keys a derived scalar (a volume) to the parameter
// generation it was computed against.
type scalarCache struct {
	gen   uint64
	valid bool
	value float64
}

func (c *scalarCache) get(gen uint64) (float64, bool) {
	if !c.valid || c.gen != gen {
		return 0, false
	}
	return c.value, true
}

func (c *scalarCache) put(gen uint64, v float64) float64 {
	c.gen = gen
	c.valid = true
	c.value = v
	return v
}
