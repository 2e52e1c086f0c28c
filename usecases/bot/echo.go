package bot

import (
	"sync"
	"time"

	"ocbot/models"
	"ocbot/utils"
)

const (
	// echoWindow bounds how long after an original post a webhook relay is
	// still considered a possible echo of it.
	echoWindow = 2 * time.Second
	// echoSimilarityCutoff is the fuzzy score above which relay content is
	// treated as a restatement of the original.
	echoSimilarityCutoff = 80
)

type pendingOriginal struct {
	event models.MessageEvent
	seen  time.Time
}

// echoCorrelator attributes webhook "proxy" messages back to the user whose
// post they echo. Relays repost a user's message under a webhook identity
// within a couple of seconds; matching on content similarity or a shared
// attachment filename recovers the author.
type echoCorrelator struct {
	mu      sync.Mutex
	now     func() time.Time
	pending map[string][]pendingOriginal
}

func newEchoCorrelator() *echoCorrelator {
	return &echoCorrelator{
		now:     time.Now,
		pending: make(map[string][]pendingOriginal),
	}
}

// observe records a direct user message as a potential echo source.
func (c *echoCorrelator) observe(event models.MessageEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.prune(event.ChannelID, now)
	c.pending[event.ChannelID] = append(c.pending[event.ChannelID], pendingOriginal{event: event, seen: now})
}

// attribute matches a webhook message against recent originals in the same
// channel. On a match it returns the original author and consumes the
// pending entry so one original never claims two echoes.
func (c *echoCorrelator) attribute(echo models.MessageEvent) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.prune(echo.ChannelID, now)

	candidates := c.pending[echo.ChannelID]
	best := -1
	bestScore := 0
	for i, candidate := range candidates {
		score, ok := echoMatchScore(candidate.event, echo)
		if !ok {
			continue
		}
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}
	if best == -1 {
		return "", false
	}

	userID := candidates[best].event.UserID
	c.pending[echo.ChannelID] = append(candidates[:best], candidates[best+1:]...)
	return userID, true
}

func (c *echoCorrelator) prune(channelID string, now time.Time) {
	kept := c.pending[channelID][:0]
	for _, candidate := range c.pending[channelID] {
		if now.Sub(candidate.seen) <= echoWindow {
			kept = append(kept, candidate)
		}
	}
	if len(kept) == 0 {
		delete(c.pending, channelID)
	} else {
		c.pending[channelID] = kept
	}
}

// echoMatchScore scores a (original, echo) pair. Attachment filename
// identity is decisive; otherwise content similarity must clear the cutoff.
func echoMatchScore(original, echo models.MessageEvent) (int, bool) {
	for _, a := range original.Attachments {
		for _, b := range echo.Attachments {
			if a.Filename != "" && a.Filename == b.Filename {
				return 100, true
			}
		}
	}

	if original.Content == "" || echo.Content == "" {
		return 0, false
	}
	score := utils.FuzzyScore(original.Content, echo.Content)
	if score < echoSimilarityCutoff {
		return 0, false
	}
	return score, true
}
