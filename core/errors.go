package core

import "errors"

// ErrNotFound is a sentinel error for "not found" cases
var ErrNotFound = errors.New("not found")

// ErrCharacterNotFound means the argument resolved against a non-empty
// candidate set but nothing matched it, exactly or fuzzily.
var ErrCharacterNotFound = errors.New("character not found")

// ErrNoCharacters means the scope (user or guild) has no characters
// registered at all, so there was nothing to match against.
var ErrNoCharacters = errors.New("no characters registered")

// IsNotFoundError checks if an error is any flavor of "not found"
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCharacterNotFound) ||
		errors.Is(err, ErrNoCharacters)
}
