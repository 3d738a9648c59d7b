package reqchain

import "errors"

var (
	// ErrProviderUnavailable is returned when the token provider
	// cannot parse. It aborts the whole extraction batch: no partial
	// relationship data is retained.
	ErrProviderUnavailable = errors.New("reqchain: token provider unavailable")

	// ErrNoProvider is returned when an extractor is built without a
	// token provider.
	ErrNoProvider = errors.New("reqchain: no token provider configured")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("reqchain: invalid configuration")
)
