// Package render rasterizes trimesh meshes to images for visual
// verification of synthesized geometry. It is a development aid, not a
// mesh serialization layer.
package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/3togo/trimesh"
	"github.com/3togo/trimesh/internal/d3"
)

// View describes the camera used to render a mesh.
type View struct {
	// Lookat is the point the camera looks at.
	Lookat r3.Vec
	// Up is the camera up direction.
	Up r3.Vec
	// Eyepos is the camera position.
	Eyepos r3.Vec
	Near   float64
	Far    float64
}

// DefaultView returns a camera looking at the origin from a diagonal
// offset with Z up.
func DefaultView() View {
	return View{
		Up:     r3.Vec{Z: 1},
		Eyepos: d3.Elem(3),
		Near:   1,
		Far:    10,
	}
}

const coordTolerance = 1e-6

// TriangleBuffer flattens a mesh into a float32 triangle-soup position
// buffer, nine values per face in face order, the layout rasterizers
// and GPU vertex buffers consume. It fails on structural mesh errors
// and on coordinates that are not finite in single precision.
func TriangleBuffer(m trimesh.Mesh) ([]float32, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	buf := make([]float32, 0, 9*len(m.Faces))
	for i := range m.Faces {
		tri := m.Triangle(i)
		for _, v := range tri {
			for _, c := range [3]float64{v.X, v.Y, v.Z} {
				f := float32(c)
				if math32.IsNaN(f) || math32.IsInf(f, 0) {
					return nil, fmt.Errorf("render: non-finite coordinate in face %d", i)
				}
				buf = append(buf, f)
			}
		}
	}
	return buf, nil
}

// Triangles converts a mesh to fauxgl triangles. Degenerate faces are
// dropped rather than rasterized.
func Triangles(m trimesh.Mesh) ([]*fauxgl.Triangle, error) {
	buf, err := TriangleBuffer(m)
	if err != nil {
		return nil, err
	}
	tris := make([]*fauxgl.Triangle, 0, len(buf)/9)
	for i := 0; i+8 < len(buf); i += 9 {
		if degenerate(buf[i : i+9]) {
			continue
		}
		tris = append(tris, fauxgl.NewTriangleForPoints(
			fauxgl.V(float64(buf[i]), float64(buf[i+1]), float64(buf[i+2])),
			fauxgl.V(float64(buf[i+3]), float64(buf[i+4]), float64(buf[i+5])),
			fauxgl.V(float64(buf[i+6]), float64(buf[i+7]), float64(buf[i+8])),
		))
	}
	return tris, nil
}

// degenerate reports whether any two corners of the 9-value triangle
// record coincide within tolerance.
func degenerate(t []float32) bool {
	return equalWithin3F32(t[0:3], t[3:6], coordTolerance) ||
		equalWithin3F32(t[3:6], t[6:9], coordTolerance) ||
		equalWithin3F32(t[6:9], t[0:3], coordTolerance)
}

func equalWithin3F32(a, b []float32, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}

// Image renders the mesh with a Phong shader and returns the image.
// Zero-valued View fields fall back to DefaultView.
func Image(m trimesh.Mesh, view View) (image.Image, error) {
	def := DefaultView()
	if view.Up == (r3.Vec{}) {
		view.Up = def.Up
	}
	if view.Eyepos == (r3.Vec{}) {
		view.Eyepos = def.Eyepos
	}
	if view.Near == 0 {
		view.Near = def.Near
	}
	if view.Far == 0 {
		view.Far = def.Far
	}
	tris, err := Triangles(m)
	if err != nil {
		return nil, err
	}
	if len(tris) == 0 {
		return nil, errors.New("render: no renderable triangles")
	}
	const (
		width, height = 1920, 1080 // output size in pixels
		scale         = 1          // optional supersampling
		fovy          = 30         // vertical field of view in degrees
	)
	var (
		eye    = fauxgl.V(view.Eyepos.X, view.Eyepos.Y, view.Eyepos.Z)
		center = fauxgl.V(view.Lookat.X, view.Lookat.Y, view.Lookat.Z)
		up     = fauxgl.V(view.Up.X, view.Up.Y, view.Up.Z)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color  = fauxgl.HexColor("#468966")
	)
	mesh := fauxgl.NewTriangleMesh(tris)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	img := context.Image()
	img = resize.Resize(width, height, img, resize.Bilinear)
	return img, nil
}

// SavePNG renders the mesh and writes it to a PNG file.
func SavePNG(path string, m trimesh.Mesh, view View) error {
	img, err := Image(m, view)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}
