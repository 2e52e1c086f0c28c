package core

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"ocbot/utils"
)

// CharacterIDPrefix is the prefix carried by every character identifier.
const CharacterIDPrefix = "char"

// NewID generates a new ULID with the given prefix.
// The format is: prefix_ULID
// Example: core.NewID("char") returns "char_01G0EZ1XTM37C5X11SQTDNCTM1"
func NewID(prefix string) string {
	utils.AssertInvariant(prefix != "" && strings.TrimSpace(prefix) != "", "prefix cannot be empty")

	// Generate a new ULID with current timestamp and crypto/rand entropy
	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)

	return strings.ToLower(strings.TrimSpace(prefix)) + "_" + id.String()
}

// IsValidULID checks if the given string is a valid ULID format with prefix.
// The format should be: prefix_ULID where ULID is 26 characters, base32 encoded.
func IsValidULID(id string) bool {
	if id == "" {
		return false
	}

	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		return false
	}

	prefix := parts[0]
	ulidPart := parts[1]

	// Validate prefix: should be non-empty, lowercase alphanumeric
	if prefix == "" {
		return false
	}
	for _, r := range prefix {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}

	if len(ulidPart) != 26 {
		return false
	}

	_, err := ulid.Parse(ulidPart)
	return err == nil
}

// IsCharacterID reports whether the argument is a well-formed character
// identifier. The resolver uses this to decide between an ID lookup and a
// name lookup before touching storage.
func IsCharacterID(id string) bool {
	return IsValidULID(id) && strings.HasPrefix(id, CharacterIDPrefix+"_")
}

// IDTimestamp extracts the creation time embedded in a prefixed ULID.
// Returns the zero time for malformed identifiers.
func IDTimestamp(id string) time.Time {
	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		return time.Time{}
	}

	parsed, err := ulid.Parse(parts[1])
	if err != nil {
		return time.Time{}
	}

	return ulid.Time(parsed.Time()).UTC()
}
