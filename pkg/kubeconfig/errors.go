package kubeconfig

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when a kubeconfig file does not exist.
	ErrNotFound = errors.New("file does not exist")
	// ErrParse is returned when a kubeconfig file is not a valid YAML mapping.
	ErrParse = errors.New("malformed document")
	// ErrIO is returned when reading, copying or writing a file fails.
	ErrIO = errors.New("i/o failure")
)

// ShapeError is returned when a value in the document does not have the
// shape an operation needs, for example a clusters entry without a name.
type ShapeError struct {
	// Path locates the value, e.g. "contexts[2].context.cluster".
	Path string
	// Want describes the expected shape.
	Want string
	// Got is the value found, nil when the key is missing.
	Got any
}

func (e *ShapeError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("%s: missing, expected %s", e.Path, e.Want)
	}
	return fmt.Sprintf("%s: expected %s, got %T", e.Path, e.Want, e.Got)
}

// shapeError reports scalars by their decoded value rather than as a node.
func shapeError(path, want string, got any) *ShapeError {
	if n, ok := got.(*yaml.Node); ok {
		var v any
		if err := n.Decode(&v); err == nil {
			got = v
		}
	}
	return &ShapeError{Path: path, Want: want, Got: got}
}
