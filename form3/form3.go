// Package form3 synthesizes triangle meshes for basic solids. Every
// generator is a pure function returning parallel vertex, face and
// face-normal slices: faces index into vertices and carry exactly one
// unit normal each, derived from the face winding so the result is
// consistently outward-oriented.
package form3

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrMsg returns an error annotated with the calling function's name
// and line number.
func ErrMsg(msg string) error {
	pc, _, line, ok := runtime.Caller(1)
	if !ok {
		return fmt.Errorf("?: %s", msg)
	}
	fn := runtime.FuncForPC(pc)
	return fmt.Errorf("%s line %d: %s", fn.Name(), line, msg)
}

// faceNormals computes one unit normal per face from the right-hand
// rule over the face winding.
func faceNormals(vertices []r3.Vec, faces [][3]int) []r3.Vec {
	normals := make([]r3.Vec, len(faces))
	for i, f := range faces {
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		normals[i] = r3.Unit(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
	}
	return normals
}
