package chardet

import "errors"

// Error definitions for the cybergodev/chardet package.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("chardet: invalid config")

	// ErrUnknownEncoding is returned when a Config's IncludeEncodings or
	// ExcludeEncodings entry does not name a supported IANA encoding.
	ErrUnknownEncoding = errors.New("chardet: unknown encoding")
)
