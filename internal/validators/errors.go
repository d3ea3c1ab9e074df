package validators

import "errors"

// ErrValidation is wrapped by every error this package returns, so callers
// can map the whole family with a single errors.Is check.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyDomain      = errors.New("domain is required")
	ErrEmptyAccountName = errors.New("account name is required")
	ErrEmptySecret      = errors.New("pin or password is required")
	ErrEmptyEntryID     = errors.New("entry id is required")

	ErrDomainTooLong      = errors.New("domain is too long")
	ErrAccountNameTooLong = errors.New("account name is too long")
	ErrSecretTooLong      = errors.New("pin or password is too long")
	ErrURLTooLong         = errors.New("url is too long")
	ErrNotesTooLong       = errors.New("notes are too long")
	ErrInvalidURL         = errors.New("url is invalid")
	ErrSecretIsMask       = errors.New("pin or password cannot be the mask placeholder")

	ErrSecretTooShort = errors.New("vault password is too short")
)

func invalid(err error) error {
	return &validationError{err: err}
}

// validationError matches both ErrValidation and the specific sentinel it
// carries. Its message is the specific one so handlers can show it as is.
type validationError struct {
	err error
}

func (e *validationError) Error() string {
	return e.err.Error()
}

func (e *validationError) Unwrap() []error {
	return []error{ErrValidation, e.err}
}
