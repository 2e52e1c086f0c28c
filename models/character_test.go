package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ocbot/core"
)

func TestCharacterDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		charName    string
		description string
		expected    string
	}{
		{
			name:        "full sheet",
			charName:    "Spark",
			description: "Name: Spark\nSpecies: Jolteon\nLevel: 5",
			expected:    "005〙Spark《Jolteon》",
		},
		{
			name:        "no sheet fields falls back to raw name",
			charName:    "Spark",
			description: "just a free-text bio",
			expected:    "000〙Spark《Unknown》",
		},
		{
			name:        "species only",
			charName:    "Ember",
			description: "Species: Flareon",
			expected:    "000〙Ember《Flareon》",
		},
		{
			name:        "level zero padded to three digits",
			charName:    "Willow",
			description: "Species: Leafeon\nLevel: 42",
			expected:    "042〙Willow《Leafeon》",
		},
		{
			name:        "three digit level unpadded",
			charName:    "Willow",
			description: "Species: Leafeon\nLevel: 100",
			expected:    "100〙Willow《Leafeon》",
		},
		{
			name:        "sheet name wins over raw name",
			charName:    "old name",
			description: "Name: Aurora\nSpecies: Glaceon\nLevel: 12",
			expected:    "012〙Aurora《Glaceon》",
		},
		{
			name:        "long name truncated at 20 runes",
			charName:    "An Exceedingly Long Character Name",
			description: "",
			expected:    "000〙An Exceedingly Long ...《Unknown》",
		},
		{
			name:        "species sentence trimmed at period",
			charName:    "Frost",
			description: "Species: Glaceon. Cold and aloof.\nLevel: 7",
			expected:    "007〙Frost《Glaceon》",
		},
		{
			name:        "case insensitive field labels",
			charName:    "Spark",
			description: "name: Spark\nspecies: Jolteon\nlevel: 5",
			expected:    "005〙Spark《Jolteon》",
		},
		{
			name:        "markdown stripped from fields",
			charName:    "Spark",
			description: "Name: **Spark**\nSpecies: *Jolteon*\nLevel: 5",
			expected:    "005〙Spark《Jolteon》",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Character{Name: tt.charName, Description: tt.description}
			assert.Equal(t, tt.expected, c.DisplayName())
		})
	}
}

func TestCharacterDisplayNameIsDeterministic(t *testing.T) {
	c := &Character{Name: "Spark", Description: "Name: Spark\nSpecies: Jolteon\nLevel: 5"}
	first := c.DisplayName()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.DisplayName())
	}
}

func TestCharacterOCName(t *testing.T) {
	t.Run("name field preferred", func(t *testing.T) {
		c := &Character{Name: "raw", Description: "Name: Aurora\nSpecies: Glaceon"}
		assert.Equal(t, "Aurora", c.OCName())
	})

	t.Run("falls back to raw name", func(t *testing.T) {
		c := &Character{Name: "Spark", Description: "no fields here"}
		assert.Equal(t, "Spark", c.OCName())
	})

	t.Run("trims after comma", func(t *testing.T) {
		c := &Character{Name: "x", Description: "Name: Aurora, the cold one"}
		assert.Equal(t, "Aurora", c.OCName())
	})

	t.Run("strips markdown", func(t *testing.T) {
		c := &Character{Name: "x", Description: "Name: **Aurora**"}
		assert.Equal(t, "Aurora", c.OCName())
	})
}

func TestCharacterEquality(t *testing.T) {
	id := core.NewID("char")

	a := &Character{ID: id, Name: "Spark", Description: "v1"}
	b := &Character{ID: id, Name: "Renamed", Description: "v2 after edits"}
	c := &Character{ID: core.NewID("char"), Name: "Spark", Description: "v1"}

	// Identity equality survives content mutation
	assert.True(t, a.Equal(b))
	// Same content, different identity
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestCharacterCreationTime(t *testing.T) {
	c := &Character{ID: core.NewID("char")}
	assert.False(t, c.CreationTime().IsZero())
}

func TestCharacterMatches(t *testing.T) {
	c := &Character{Name: "Spark", Description: "Species: Jolteon\nLevel: 5"}

	assert.True(t, c.Matches("spark"))
	assert.True(t, c.Matches("jolteon"))
	assert.True(t, c.Matches("**Spark**"))
	assert.False(t, c.Matches("umbreon"))
}
