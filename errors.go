package trimesh

import "fmt"

// SchemaError is returned when a named attribute is not part of a
// primitive's parameter schema, or a value cannot be coerced to the
// attribute's canonical form.
type SchemaError struct {
	Key string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("trimesh: attribute %q not in primitive schema", e.Key)
}

// ShapeError is returned when matrix or vector data has the wrong
// dimensions, i.e. a transform that is not 4x4.
type ShapeError struct {
	Want string
	Got  string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("trimesh: bad shape: want %s, got %s", e.Want, e.Got)
}

// MissingParameterError is returned when a required, non-defaulted
// parameter is read before being set. Only the extrusion polygon and
// height are required parameters.
type MissingParameterError struct {
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("trimesh: required parameter %q not specified", e.Param)
}
