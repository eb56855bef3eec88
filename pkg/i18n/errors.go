package i18n

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of
// these sentinels, so callers can classify failures with errors.Is.
var (
	// ErrInvalidArgument marks a nil or empty required parameter.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState marks an operation invoked before SetLocale
	// succeeded, or a host plugin that is not active.
	ErrInvalidState = errors.New("invalid state")
	// ErrConfig marks a locale file that failed schema validation.
	ErrConfig = errors.New("config error")
)
