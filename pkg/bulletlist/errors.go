package bulletlist

import (
	"errors"
	"fmt"
)

// ErrNoFont indicates a surface was asked to draw text without a font path.
var ErrNoFont = errors.New("no font configured")

// InfrastructureError represents a failure outside the layout core: a style
// file that cannot be read, a font that will not open, an image that will
// not decode. Building a layout never produces one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_style", "open_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bulletlist: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("bulletlist: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// StyleError reports a style file value that could not be interpreted.
type StyleError struct {
	Key   string
	Value string
	Err   error
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("style %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *StyleError) Unwrap() error {
	return e.Err
}
