package booking

import "errors"

// Sentinel errors let handlers map failures onto 404 vs 400 vs 500 without
// substring-matching message text.
var (
	// ErrDraftNotFound signals a missing or expired draft session. The
	// flow cannot be resumed; clients redirect to the start.
	ErrDraftNotFound = errors.New("booking draft not found or expired")

	// ErrNotFound signals that a referenced entity (service, business,
	// booking) does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError is a client-input failure detected before any write.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
