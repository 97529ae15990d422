package referenceframe

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFrameNotFound is matched by every error returned for a frame name that is not registered.
var ErrFrameNotFound = errors.New("frame not found")

// ErrNoParent is returned when asking for the parent of the root frame.
var ErrNoParent = errors.New("no parent")

// FrameNotFoundError is returned whenever a frame name is referenced, as source, destination or
// parent, that does not exist in the frame graph at the time of the call.
type FrameNotFoundError struct {
	Name string
}

// NewFrameNotFoundError returns an error indicating that the named frame is missing.
func NewFrameNotFoundError(name string) error {
	return &FrameNotFoundError{Name: name}
}

func (e *FrameNotFoundError) Error() string {
	return fmt.Sprintf("frame %q does not exist in the frame graph", e.Name)
}

// Is lets errors.Is match any FrameNotFoundError against ErrFrameNotFound.
func (e *FrameNotFoundError) Is(target error) bool {
	return target == ErrFrameNotFound
}

// NewCyclicFramesError is returned when frame configs only reference each other and can never
// be attached to the origin.
func NewCyclicFramesError(names []string) error {
	return errors.Errorf("frames %v form a cycle and cannot be attached to %q", names, Origin)
}
