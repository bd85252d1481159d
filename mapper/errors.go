package mapper

import "errors"

var (
	ErrTargetNotPointer   = errors.New("mapping target must be a non-nil pointer")
	ErrUnsupportedShape   = errors.New("no mapping exists between the source and target shapes")
	ErrIncompatibleTypes  = errors.New("source value is not assignable to the target")
	ErrDepthExceeded      = errors.New("mapping recursion depth exceeded")
	ErrUnexportedEmbedded = errors.New("target field is promoted through a nil unexported embedded pointer")
)
