package form3

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/3togo/trimesh/form2"
)

// Extrude sweeps a validated polygon along local +Z from z=0 to
// z=height, producing a closed solid: triangulated bottom and top caps
// plus two triangles per polygon edge.
func Extrude(p form2.Polygon, height float64) (vertices []r3.Vec, faces [][3]int, normals []r3.Vec, err error) {
	switch {
	case p.Empty():
		return nil, nil, nil, ErrMsg("extrusion polygon is empty")
	case height <= 0:
		return nil, nil, nil, ErrMsg("extrusion height must be positive")
	}
	caps, err := p.Triangulate()
	if err != nil {
		return nil, nil, nil, err
	}
	loop := p.Vertices()
	n := len(loop)
	vertices = make([]r3.Vec, 2*n)
	for i, v := range loop {
		vertices[i] = r3.Vec{X: v.X, Y: v.Y}
		vertices[n+i] = r3.Vec{X: v.X, Y: v.Y, Z: height}
	}
	faces = make([][3]int, 0, 2*len(caps)+2*n)
	for _, t := range caps {
		// The polygon loop is counter-clockwise, so cap triangles wind
		// +Z: reversed on the bottom to face outward, as-is on top.
		faces = append(faces, [3]int{t[2], t[1], t[0]})
		faces = append(faces, [3]int{n + t[0], n + t[1], n + t[2]})
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		faces = append(faces, [3]int{i, j, n + j}, [3]int{i, n + j, n + i})
	}
	return vertices, faces, faceNormals(vertices, faces), nil
}
