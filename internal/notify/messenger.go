// Package notify delivers rendered game messages to players. The Messenger
// abstracts the chat transport; the Notifier subscribes to game events and
// turns them into localized text.
package notify

import (
	"context"
	"errors"
	"sync"

	"github.com/hmelikyan/wanderbot/internal/logger"
)

// ErrMessageNotModified is returned by transports that refuse to re-send
// identical content. Callers treat it as success.
var ErrMessageNotModified = errors.New("message not modified")

// Messenger sends a text message to a player.
type Messenger interface {
	Send(ctx context.Context, playerID int64, text string) error
}

// MemoryMessenger records sent messages, used in tests and as a buffer for
// transports that poll.
type MemoryMessenger struct {
	mu   sync.Mutex
	sent map[int64][]string
}

// NewMemoryMessenger creates an empty MemoryMessenger.
func NewMemoryMessenger() *MemoryMessenger {
	return &MemoryMessenger{sent: make(map[int64][]string)}
}

// Send records the message.
func (m *MemoryMessenger) Send(_ context.Context, playerID int64, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	msgs := m.sent[playerID]
	if len(msgs) > 0 && msgs[len(msgs)-1] == text {
		return ErrMessageNotModified
	}
	m.sent[playerID] = append(msgs, text)
	return nil
}

// Sent returns a copy of the messages recorded for the player.
func (m *MemoryMessenger) Sent(playerID int64) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent[playerID]...)
}

// SlogMessenger writes messages to the structured log. It backs deployments
// without a chat transport wired in.
type SlogMessenger struct{}

// Send logs the message.
func (SlogMessenger) Send(ctx context.Context, playerID int64, text string) error {
	logger.FromContext(ctx).Info("player message", "player_id", playerID, "text", text)
	return nil
}
