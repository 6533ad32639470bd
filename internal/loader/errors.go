package loader

import "errors"

var (
	// ErrEmptyURL is returned when no target URL is given.
	ErrEmptyURL = errors.New("empty target URL")

	// ErrUnsupportedScheme is returned for non-HTTP(S) URL schemes.
	ErrUnsupportedScheme = errors.New("unsupported URL scheme")

	// ErrBadStatus is returned when the server answers with an error
	// status code.
	ErrBadStatus = errors.New("server returned error status")
)
