package core

import "fmt"

// ShapeError reports a wire value whose structure does not match the
// expected field type (wrong primitive kind, or no union variant matched).
type ShapeError struct {
	Property string
	Want     string
}

func (e ShapeError) Error() string {
	return fmt.Sprintf("invalid shape for %s: want %s", e.Property, e.Want)
}

func NewShapeError(property string, want string) ShapeError {
	return ShapeError{Property: property, Want: want}
}

// ValueError reports a wire value that is structurally valid but
// semantically invalid, such as an unparseable date string.
type ValueError struct {
	Property string
	Reason   string
}

func (e ValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %s", e.Property, e.Reason)
}

func NewValueError(property string, reason string) ValueError {
	return ValueError{Property: property, Reason: reason}
}
