package uri

import "github.com/ghettovoice/gohttp/internal/errorutil"

// Error represents a URL validation error.
//
// All errors except [ErrInvalidArgument] are kinds of [ErrInvalidURL],
// i.e. errors.Is(ErrURLTooLong, ErrInvalidURL) reports true.
type Error string

func (e Error) Error() string { return string(e) }

// Is reports whether target is the general [ErrInvalidURL] kind.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t == ErrInvalidURL
}

// Validation errors.
const (
	// ErrInvalidURL is the general URL validation error.
	// It is returned for malformed IP literals, invalid ports, invalid paths
	// and hosts that can't be IDNA-encoded.
	ErrInvalidURL Error = "invalid URL"
	// ErrURLTooLong is returned when the URL or one of its components exceeds [MaxURLLength].
	ErrURLTooLong Error = "URL too long"
	// ErrInvalidCharacter is returned when the URL or one of its components
	// contains a non-printable ASCII character.
	ErrInvalidCharacter Error = "invalid non-printable ASCII character"
	// ErrInvalidComponentSyntax is returned when a component override
	// doesn't match the grammar of the component.
	ErrInvalidComponentSyntax Error = "invalid URL component"
)

// ErrInvalidArgument is returned when an unknown component name or
// an unsupported component value is provided.
const ErrInvalidArgument = errorutil.ErrInvalidArgument

func newInvalidURLError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidURL, args...) //errtrace:skip
}

func newInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
