package models

import (
	"time"

	"ocbot/core"
)

// ReminderInfo tracks one user's reply reminder in one channel. The
// (UserID, ChannelID, GuildID) triple is the identity: a user has at most one
// active reminder per channel per guild.
//
// State machine: Disabled (no cooldown) -> Armed (cooldown set, not notified)
// -> Fired (notified) -> Armed again when the user replies.
type ReminderInfo struct {
	UserID          string    `json:"user_id"          db:"user_id"`
	ChannelID       string    `json:"channel_id"       db:"channel_id"`
	GuildID         string    `json:"guild_id"         db:"guild_id"`
	CooldownMinutes int       `json:"cooldown_minutes" db:"cooldown_minutes"`
	LastMessageID   string    `json:"last_message_id"  db:"last_message_id"`
	NotifiedAlready bool      `json:"notified_already" db:"notified_already"`
	CreatedAt       time.Time `json:"created_at"       db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"       db:"updated_at"`
}

// LastSeen is the timestamp of the last tracked message, derived from its
// snowflake ID. Zero when no message has been observed yet.
func (r *ReminderInfo) LastSeen() time.Time {
	return core.SnowflakeTime(r.LastMessageID)
}

// NextFire is when the reminder becomes due. Zero when the reminder is
// disabled or has never seen a message.
func (r *ReminderInfo) NextFire() time.Time {
	if r.CooldownMinutes <= 0 || r.LastMessageID == "" {
		return time.Time{}
	}
	return r.LastSeen().Add(time.Duration(r.CooldownMinutes) * time.Minute)
}

// Expired reports whether the cooldown has elapsed since the last tracked
// message. A disabled or never-messaged reminder never expires.
func (r *ReminderInfo) Expired(now time.Time) bool {
	next := r.NextFire()
	return !next.IsZero() && !next.After(now)
}

// Due reports whether the sweep should fire this reminder: expired and not
// yet notified.
func (r *ReminderInfo) Due(now time.Time) bool {
	return !r.NotifiedAlready && r.Expired(now)
}
