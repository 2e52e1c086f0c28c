package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"ocbot/core"
	"ocbot/utils"
)

// Sheet fields characters embed as "Key: value" lines in their free-text
// description. Derivation is tolerant of spacing and casing.
var (
	nameFieldRegex    = regexp.MustCompile(`(?i)Name\s*:\s*(.+)`)
	speciesFieldRegex = regexp.MustCompile(`(?i)Species\s*:\s*(.+)`)
	levelFieldRegex   = regexp.MustCompile(`(?i)Level\s*:\s*(\d+)`)
)

const (
	// MaxCharacterNameLength is the longest name accepted on create/rename.
	MaxCharacterNameLength = 256

	// displayFieldLimit is how many runes of the name and species survive
	// into the composed display name.
	displayFieldLimit = 20

	unknownSpecies = "Unknown"
)

// Character is a registered roleplay character sheet. Identity lives in ID
// (a time-ordered "char_" ULID) and never changes; name and description are
// freely mutable. Equality is defined by ID alone.
type Character struct {
	ID          string    `json:"id"          db:"id"`
	UserID      string    `json:"user_id"     db:"user_id"`
	GuildID     string    `json:"guild_id"    db:"guild_id"`
	Name        string    `json:"name"        db:"name"`
	Description string    `json:"description" db:"description"`
	Server      string    `json:"server"      db:"server"`
	CreatedAt   time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"  db:"updated_at"`
}

// Equal reports identity-based equality: two lookups of the same ID are the
// same character no matter how the sheet was edited in between.
func (c *Character) Equal(other *Character) bool {
	if other == nil {
		return false
	}
	return c.ID == other.ID
}

// CreationTime is derived from the ULID embedded in the identifier.
func (c *Character) CreationTime() time.Time {
	return core.IDTimestamp(c.ID)
}

// OCName is the character's sheet name: the first "Name:" line of the
// description, else the raw name. Trailing sentence fragments after a period
// or comma are dropped and markdown is stripped.
func (c *Character) OCName() string {
	desc := utils.RemoveMarkdown(c.Description)

	name := c.Name
	if m := nameFieldRegex.FindStringSubmatch(desc); m != nil {
		name = strings.TrimSpace(m[1])
	}

	name, _, _ = strings.Cut(name, ".")
	name, _, _ = strings.Cut(name, ",")

	return utils.RemoveMarkdown(name)
}

// DisplayName composes the listing label: zero-padded level, sheet name
// truncated to 20 runes, and bracketed species.
// Example: "005〙Spark《Jolteon》".
func (c *Character) DisplayName() string {
	desc := utils.RemoveMarkdown(c.Description)

	name := c.Name
	if m := nameFieldRegex.FindStringSubmatch(desc); m != nil {
		name = strings.TrimSpace(m[1])
	}
	name = utils.TruncateRunes(name, displayFieldLimit)

	species := unknownSpecies
	if m := speciesFieldRegex.FindStringSubmatch(desc); m != nil {
		species = strings.TrimSpace(m[1])
		species, _, _ = strings.Cut(species, ".")
		species, _, _ = strings.Cut(species, ",")
		species = utils.TruncateRunes(species, displayFieldLimit)
	}

	level := 0
	if m := levelFieldRegex.FindStringSubmatch(desc); m != nil {
		level, _ = strconv.Atoi(m[1])
	}

	return utils.RemoveMarkdown(fmt.Sprintf("%03d〙%s《%s》", level, name, species))
}

// Matches reports whether the term appears in the character's name or
// description, case-insensitively and ignoring markdown in the term.
func (c *Character) Matches(term string) bool {
	needle := strings.ToLower(utils.RemoveMarkdown(term))
	return strings.Contains(strings.ToLower(c.Name), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle)
}

// CharacterScope partitions character lookups: a user's own characters when
// UserID is set, a whole guild's when only GuildID is. Both empty means the
// lookup is unscoped, which no caller should want.
type CharacterScope struct {
	UserID  string
	GuildID string
}

func (s CharacterScope) IsZero() bool {
	return s.UserID == "" && s.GuildID == ""
}

func (s CharacterScope) String() string {
	return fmt.Sprintf("user=%s guild=%s", s.UserID, s.GuildID)
}
