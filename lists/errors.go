package lists

import "errors"

// Sentinel errors returned by List operations.
//
// Use [errors.Is] for comparisons:
//
//	if err := view.Add(1); errors.Is(err, lists.ErrReadOnly) {
//	    // attempted to mutate a read-only view
//	}
var (
	// ErrReadOnly is returned by every mutating method of a [ReadOnly]
	// view. The backing list is never touched when it is returned.
	ErrReadOnly = errors.New("lists: list is read-only")

	// ErrIndexOutOfRange is returned by index-addressed mutators when the
	// index is outside the valid range for the operation.
	ErrIndexOutOfRange = errors.New("lists: index out of range")
)

// ArgumentError reports a nil required argument. It is raised by panic,
// eagerly at the call that received the bad argument.
type ArgumentError struct {
	// Param is the name of the offending parameter.
	Param string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return "lists: " + e.Param + " must not be nil"
}
