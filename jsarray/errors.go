package jsarray

import "errors"

// Sentinel errors returned by Array operations.
//
// Absence (a missing value, an out-of-range index, reducing an empty array
// without a seed) is never reported as an error; those cases return the
// sentinel values documented on each method.
var (
	// ErrInvalidAccess is returned by [Array.Property] when the requested
	// computed property does not exist.
	ErrInvalidAccess = errors.New("jsarray: unknown property")

	// ErrIllegalMutation is returned when state is written outside of the
	// container's methods, or when [Array.Set] / [Array.Unset] are called on
	// an immutable array.
	ErrIllegalMutation = errors.New("jsarray: illegal mutation")

	// ErrMalformedInput is returned by [FromJSON] when the text is not valid
	// JSON or its top-level value is neither an array nor an object.
	ErrMalformedInput = errors.New("jsarray: malformed JSON input")

	// ErrCyclicValue is returned when serialising an array that contains
	// itself.
	ErrCyclicValue = errors.New("jsarray: cyclic value")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("jsarray: macro not found")
)
