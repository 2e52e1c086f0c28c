package clients

import "errors"

// ErrNotFound classifies platform errors for missing channels, messages,
// members or users.
var ErrNotFound = errors.New("discord entity not found")

// ErrForbidden classifies permission failures (missing access or send
// rights). Mutations must be aborted, not retried, when this is returned.
var ErrForbidden = errors.New("discord permission denied")

// IsNotFound reports whether err is a platform "not found" failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsForbidden reports whether err is a platform permission failure.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}
