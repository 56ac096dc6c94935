package expense

import "errors"

var (
	// ErrInvalidInput marks a request that is missing required fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnparsable marks model output that is not the expected JSON payload.
	ErrUnparsable = errors.New("model output is not a valid expense payload")
)
