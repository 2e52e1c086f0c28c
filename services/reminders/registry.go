package reminders

import (
	"sort"
	"sync"

	"ocbot/models"
)

// registry is the in-memory reminder table, keyed channel -> user. All
// access goes through the mutex; reads hand out copies so callers never
// observe concurrent mutation.
type registry struct {
	mu       sync.RWMutex
	channels map[string]map[string]*models.ReminderInfo
}

func newRegistry() *registry {
	return &registry{channels: make(map[string]map[string]*models.ReminderInfo)}
}

// set stores the reminder and returns a copy of the stored entry. When an
// entry already exists and the incoming one carries no tracked message, the
// existing countdown survives: changing the cooldown must not disarm a
// running timer.
func (r *registry) set(reminder *models.ReminderInfo) *models.ReminderInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.channels[reminder.ChannelID]
	if !ok {
		users = make(map[string]*models.ReminderInfo)
		r.channels[reminder.ChannelID] = users
	}
	clone := *reminder
	if existing, ok := users[reminder.UserID]; ok && clone.LastMessageID == "" {
		clone.LastMessageID = existing.LastMessageID
		clone.NotifiedAlready = existing.NotifiedAlready
	}
	users[reminder.UserID] = &clone

	stored := clone
	return &stored
}

func (r *registry) get(userID, channelID string) (*models.ReminderInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reminder, ok := r.channels[channelID][userID]
	if !ok {
		return nil, false
	}
	clone := *reminder
	return &clone, true
}

func (r *registry) remove(userID, channelID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.channels[channelID]
	if !ok {
		return false
	}
	if _, ok := users[userID]; !ok {
		return false
	}
	delete(users, userID)
	if len(users) == 0 {
		delete(r.channels, channelID)
	}
	return true
}

func (r *registry) removeChannel(channelID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := len(r.channels[channelID])
	delete(r.channels, channelID)
	return count
}

// recordMessage advances the tracked message and resets the notified flag.
// Returns false when no reminder exists for (user, channel).
func (r *registry) recordMessage(userID, channelID, messageID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminder, ok := r.channels[channelID][userID]
	if !ok {
		return false
	}
	reminder.LastMessageID = messageID
	reminder.NotifiedAlready = false
	return true
}

func (r *registry) markNotified(userID, channelID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	reminder, ok := r.channels[channelID][userID]
	if !ok {
		return false
	}
	reminder.NotifiedAlready = true
	return true
}

func (r *registry) trackedChannels() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	channels := make([]string, 0, len(r.channels))
	for channelID := range r.channels {
		channels = append(channels, channelID)
	}
	sort.Strings(channels)
	return channels
}

func (r *registry) remindersForChannel(channelID string) []*models.ReminderInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := r.channels[channelID]
	reminders := make([]*models.ReminderInfo, 0, len(users))
	for _, reminder := range users {
		clone := *reminder
		reminders = append(reminders, &clone)
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].UserID < reminders[j].UserID
	})
	return reminders
}

func (r *registry) listForUser(userID string) []*models.ReminderInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var reminders []*models.ReminderInfo
	for _, users := range r.channels {
		if reminder, ok := users[userID]; ok {
			clone := *reminder
			reminders = append(reminders, &clone)
		}
	}
	sort.Slice(reminders, func(i, j int) bool {
		return reminders[i].ChannelID < reminders[j].ChannelID
	})
	return reminders
}
