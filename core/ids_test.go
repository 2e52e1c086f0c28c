package core

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	t.Run("generates prefixed ULID", func(t *testing.T) {
		id := NewID("char")
		assert.True(t, strings.HasPrefix(id, "char_"))
		assert.Len(t, id, len("char_")+26)
		assert.True(t, IsValidULID(id))
	})

	t.Run("normalizes prefix casing and whitespace", func(t *testing.T) {
		id := NewID("  CHAR  ")
		assert.True(t, strings.HasPrefix(id, "char_"))
	})

	t.Run("panics on empty prefix", func(t *testing.T) {
		assert.Panics(t, func() { NewID("") })
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := NewID("char")
			assert.False(t, seen[id], "duplicate ID generated: %s", id)
			seen[id] = true
		}
	})
}

func TestIsCharacterID(t *testing.T) {
	assert.True(t, IsCharacterID(NewID("char")))
	assert.False(t, IsCharacterID(NewID("rem")))
	assert.False(t, IsCharacterID("Spark"))
	assert.False(t, IsCharacterID(""))
	assert.False(t, IsCharacterID("char_notaulid"))
}

func TestIDTimestamp(t *testing.T) {
	t.Run("carries creation time", func(t *testing.T) {
		before := time.Now().Add(-time.Second)
		id := NewID("char")
		after := time.Now().Add(time.Second)

		ts := IDTimestamp(id)
		assert.True(t, ts.After(before), "timestamp %v should be after %v", ts, before)
		assert.True(t, ts.Before(after), "timestamp %v should be before %v", ts, after)
	})

	t.Run("zero time for garbage", func(t *testing.T) {
		assert.True(t, IDTimestamp("not-an-id").IsZero())
		assert.True(t, IDTimestamp("").IsZero())
	})
}
