package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ocbot/models"
)

func newTestCorrelator(now *time.Time) *echoCorrelator {
	c := newEchoCorrelator()
	c.now = func() time.Time { return *now }
	return c
}

func TestEchoCorrelatorContentMatch(t *testing.T) {
	now := time.Now()
	c := newTestCorrelator(&now)

	c.observe(models.MessageEvent{
		ChannelID: "channel-1",
		MessageID: "msg-1",
		UserID:    "user-1",
		Content:   "Spark trots into the clearing",
	})

	userID, ok := c.attribute(models.MessageEvent{
		ChannelID: "channel-1",
		MessageID: "msg-2",
		WebhookID: "hook-1",
		Content:   "Spark trots into the clearing.",
	})
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)
}

func TestEchoCorrelatorAttachmentMatch(t *testing.T) {
	now := time.Now()
	c := newTestCorrelator(&now)

	c.observe(models.MessageEvent{
		ChannelID:   "channel-1",
		UserID:      "user-1",
		Attachments: []models.MessageAttachment{{ID: "a1", Filename: "spark.png"}},
	})

	userID, ok := c.attribute(models.MessageEvent{
		ChannelID:   "channel-1",
		WebhookID:   "hook-1",
		Attachments: []models.MessageAttachment{{ID: "a2", Filename: "spark.png"}},
	})
	assert.True(t, ok)
	assert.Equal(t, "user-1", userID)
}

func TestEchoCorrelatorDissimilarContent(t *testing.T) {
	now := time.Now()
	c := newTestCorrelator(&now)

	c.observe(models.MessageEvent{
		ChannelID: "channel-1",
		UserID:    "user-1",
		Content:   "Spark trots into the clearing",
	})

	_, ok := c.attribute(models.MessageEvent{
		ChannelID: "channel-1",
		WebhookID: "hook-1",
		Content:   "completely unrelated narration about someone else",
	})
	assert.False(t, ok)
}

func TestEchoCorrelatorWindowExpiry(t *testing.T) {
	now := time.Now()
	c := newTestCorrelator(&now)

	c.observe(models.MessageEvent{
		ChannelID: "channel-1",
		UserID:    "user-1",
		Content:   "Spark trots into the clearing",
	})

	now = now.Add(echoWindow + time.Second)

	_, ok := c.attribute(models.MessageEvent{
		ChannelID: "channel-1",
		WebhookID: "hook-1",
		Content:   "Spark trots into the clearing",
	})
	assert.False(t, ok)
}

func TestEchoCorrelatorConsumesOriginal(t *testing.T) {
	now := time.Now()
	c := newTestCorrelator(&now)

	c.observe(models.MessageEvent{
		ChannelID: "channel-1",
		UserID:    "user-1",
		Content:   "Spark trots into the clearing",
	})

	echo := models.MessageEvent{
		ChannelID: "channel-1",
		WebhookID: "hook-1",
		Content:   "Spark trots into the clearing",
	}

	_, ok := c.attribute(echo)
	assert.True(t, ok)

	_, ok = c.attribute(echo)
	assert.False(t, ok)
}

func TestEchoCorrelatorChannelIsolation(t *testing.T) {
	now := time.Now()
	c := newTestCorrelator(&now)

	c.observe(models.MessageEvent{
		ChannelID: "channel-1",
		UserID:    "user-1",
		Content:   "Spark trots into the clearing",
	})

	_, ok := c.attribute(models.MessageEvent{
		ChannelID: "channel-2",
		WebhookID: "hook-1",
		Content:   "Spark trots into the clearing",
	})
	assert.False(t, ok)
}
