package field

import "errors"

var (
	// ErrUnsupportedToken is returned when a format token is missing from
	// the adapter's token map.
	ErrUnsupportedToken = errors.New("field: unsupported format token")

	// ErrFormatExpansionOverflow is returned when expanding a format does
	// not reach a fixed point.
	ErrFormatExpansionOverflow = errors.New("field: format expansion did not converge")

	// ErrMissingMaxDigits is returned for a token that needs zero padding
	// in the input but declares no max length.
	ErrMissingMaxDigits = errors.New("field: token has no max digit count")

	// ErrInvalidSectionType is returned when a computation is asked about a
	// section type it has no rule for.
	ErrInvalidSectionType = errors.New("field: invalid section type")

	// ErrUnsupportedOperation is returned when an operation is called on a
	// section it cannot handle.
	ErrUnsupportedOperation = errors.New("field: unsupported operation")
)
