package event

import (
	"context"
	"time"

	"github.com/hmelikyan/wanderbot/internal/logger"
)

// ResilientConfig configures the ResilientPublisher.
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter
}

// ResilientPublisher wraps an event bus with retry logic and dead-letter
// queuing. A failed publish is retried in the background; the caller is
// never blocked on handler failures.
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
}

// NewResilientPublisher creates a new ResilientPublisher.
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	return &ResilientPublisher{
		inner:  inner,
		config: config,
	}
}

// Publish attempts to publish an event. On failure it starts a background
// retry loop and returns nil, so game handlers never fail an interaction
// because a notification could not be delivered.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn("event publish failed, scheduling retries",
		"event_type", event.Type,
		"error", err,
		"max_retries", p.config.MaxRetries)

	go p.retryLoop(event)
	return nil
}

func (p *ResilientPublisher) retryLoop(event Event) {
	// The originating request context may already be cancelled.
	ctx := context.Background()
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		time.Sleep(CalculateRetryDelay(p.config.RetryDelay, attempt))

		lastErr = p.inner.Publish(ctx, event)
		if lastErr == nil {
			log.Info("event published after retry",
				"event_type", event.Type,
				"attempt", attempt)
			return
		}

		log.Warn("event retry failed",
			"event_type", event.Type,
			"attempt", attempt,
			"error", lastErr)
	}

	if p.config.DeadLetter == nil {
		log.Error("event dropped, no dead-letter writer configured", "event_type", event.Type)
		return
	}
	if err := p.config.DeadLetter.Write(event, p.config.MaxRetries, lastErr); err != nil {
		log.Error("dead-letter write failed", "event_type", event.Type, "error", err)
	}
}

// Subscribe delegates to the inner bus.
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}
