package domain

import "errors"

// Sentinel errors shared across services and repositories. HTTP controllers
// match these with errors.Is and map them to response error codes.
var (
	// ErrNotFound is returned when a referenced record does not exist or does
	// not belong to the caller's event scope.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when the caller does not own the targeted record.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyCheckedIn is returned when the conditional check-in update
	// finds the guest already checked in. Kept distinct from a generic
	// conflict so the scanning UI can show "already scanned".
	ErrAlreadyCheckedIn = errors.New("guest already checked in")

	// ErrInvalidTransition is returned when a payment or assignment status
	// update attempts a transition the lifecycle tables do not allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrValidation is returned for malformed input such as an unknown
	// category or a negative contract amount.
	ErrValidation = errors.New("validation failed")

	// ErrEncoding is returned when QR code generation fails.
	ErrEncoding = errors.New("qr encoding failed")
)
