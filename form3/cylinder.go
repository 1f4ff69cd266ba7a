package form3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder generates a closed cylinder of the given radius and height,
// axis on local Z, centered at the origin. sections is the number of
// facets around the circumference; the mesh has 2*sections+2 vertices
// and 4*sections outward-facing triangles.
func Cylinder(radius, height float64, sections int) (vertices []r3.Vec, faces [][3]int, normals []r3.Vec, err error) {
	switch {
	case sections < 3:
		return nil, nil, nil, ErrMsg("cylinder needs at least 3 sections")
	case radius <= 0:
		return nil, nil, nil, ErrMsg("cylinder radius must be positive")
	case height <= 0:
		return nil, nil, nil, ErrMsg("cylinder height must be positive")
	}
	s := sections
	h := height / 2
	vertices = make([]r3.Vec, 2*s+2)
	for i := 0; i < s; i++ {
		theta := 2 * math.Pi * float64(i) / float64(s)
		x, y := radius*math.Cos(theta), radius*math.Sin(theta)
		vertices[i] = r3.Vec{X: x, Y: y, Z: -h}
		vertices[s+i] = r3.Vec{X: x, Y: y, Z: h}
	}
	bottom := 2 * s
	top := 2*s + 1
	vertices[bottom] = r3.Vec{Z: -h}
	vertices[top] = r3.Vec{Z: h}

	faces = make([][3]int, 0, 4*s)
	for i := 0; i < s; i++ {
		j := (i + 1) % s
		// wall quad split along the diagonal
		faces = append(faces, [3]int{i, j, s + j}, [3]int{i, s + j, s + i})
		// caps fan out from the axis vertices
		faces = append(faces, [3]int{bottom, j, i}, [3]int{top, s + i, s + j})
	}
	return vertices, faces, faceNormals(vertices, faces), nil
}
