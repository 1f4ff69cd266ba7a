package form3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Icosphere generates a unit sphere mesh by subdividing an icosahedron
// and projecting every vertex onto the sphere. The topology is fully
// determined by the subdivision count: 20*4^n faces and 10*4^n+2
// vertices. Subdivision 0 is the plain icosahedron.
func Icosphere(subdivisions int) (vertices []r3.Vec, faces [][3]int, normals []r3.Vec, err error) {
	if subdivisions < 0 {
		return nil, nil, nil, ErrMsg("negative subdivision count")
	}
	vertices, faces = icosahedron()
	for s := 0; s < subdivisions; s++ {
		vertices, faces = subdivide(vertices, faces)
	}
	return vertices, faces, faceNormals(vertices, faces), nil
}

// icosahedron returns the 12 vertices and 20 outward-wound faces of a
// unit icosahedron.
func icosahedron() ([]r3.Vec, [][3]int) {
	t := (1 + math.Sqrt(5)) / 2
	raw := []r3.Vec{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	vertices := make([]r3.Vec, len(raw))
	for i, v := range raw {
		vertices[i] = r3.Unit(v)
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
	return vertices, faces
}

// subdivide splits every face into four, adding one vertex per edge
// projected onto the unit sphere. Edge midpoints are shared between
// the two faces of each edge.
func subdivide(vertices []r3.Vec, faces [][3]int) ([]r3.Vec, [][3]int) {
	midpoints := make(map[[2]int]int, len(faces)*3/2)
	midpoint := func(a, b int) int {
		key := [2]int{a, b}
		if b < a {
			key = [2]int{b, a}
		}
		if i, ok := midpoints[key]; ok {
			return i
		}
		m := r3.Unit(r3.Scale(0.5, r3.Add(vertices[a], vertices[b])))
		vertices = append(vertices, m)
		midpoints[key] = len(vertices) - 1
		return len(vertices) - 1
	}
	out := make([][3]int, 0, len(faces)*4)
	for _, f := range faces {
		ab := midpoint(f[0], f[1])
		bc := midpoint(f[1], f[2])
		ca := midpoint(f[2], f[0])
		out = append(out,
			[3]int{f[0], ab, ca},
			[3]int{f[1], bc, ab},
			[3]int{f[2], ca, bc},
			[3]int{ab, bc, ca},
		)
	}
	return vertices, out
}
