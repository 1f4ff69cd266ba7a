package form3

import "gonum.org/v1/gonum/spatial/r3"

// UnitBox returns a unit cube centered at the origin: 8 vertices at
// coordinates of magnitude 0.5 and 12 consistently outward-wound
// triangles.
func UnitBox() (vertices []r3.Vec, faces [][3]int, normals []r3.Vec) {
	const h = 0.5
	vertices = []r3.Vec{
		{X: -h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h},
		{X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h},
		{X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h},
		{X: -h, Y: h, Z: h},
	}
	faces = [][3]int{
		{0, 3, 2}, {0, 2, 1}, // -Z
		{4, 5, 6}, {4, 6, 7}, // +Z
		{0, 1, 5}, {0, 5, 4}, // -Y
		{1, 2, 6}, {1, 6, 5}, // +X
		{2, 3, 7}, {2, 7, 6}, // +Y
		{3, 0, 4}, {3, 4, 7}, // -X
	}
	return vertices, faces, faceNormals(vertices, faces)
}
