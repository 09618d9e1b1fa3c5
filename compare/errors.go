package compare

// ArgumentError reports a nil required argument passed to a combinator.
// It is raised by panic, eagerly at the call that received the bad
// argument, never deferred to the first Compare call.
//
// Recover and inspect it with [errors.As] when calling combinators with
// arguments that are not known to be non-nil:
//
//	defer func() {
//	    if r := recover(); r != nil {
//	        var argErr *compare.ArgumentError
//	        if err, ok := r.(error); ok && errors.As(err, &argErr) {
//	            log.Printf("bad argument: %s", argErr.Param)
//	        }
//	    }
//	}()
type ArgumentError struct {
	// Param is the name of the offending parameter.
	Param string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return "compare: " + e.Param + " must not be nil"
}
