package core

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// SnowflakeTime derives the creation timestamp embedded in a Discord
// snowflake ID. Returns the zero time when the ID doesn't parse.
func SnowflakeTime(id string) time.Time {
	if id == "" {
		return time.Time{}
	}
	ts, err := discordgo.SnowflakeTimestamp(id)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}
