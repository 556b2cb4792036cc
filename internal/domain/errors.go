package domain

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, compared with errors.Is. Callers wrap them with detail.
var (
	// ErrInvalidEntry indicates a waste entry with an unknown category or a
	// weight that is not a positive finite number.
	ErrInvalidEntry = constError("invalid waste entry")

	// ErrInvalidProgressData indicates progress values that could not be
	// coerced to finite numbers.
	ErrInvalidProgressData = constError("invalid progress data")

	// ErrSessionNotFound indicates an unknown or already discarded session.
	ErrSessionNotFound = constError("session not found")
)
