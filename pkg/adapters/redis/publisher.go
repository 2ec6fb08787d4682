package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/zerohour/internal/logging"
	"github.com/aretw0/zerohour/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel transition events are published to.
const DefaultChannel = "zerohour:transitions"

// Publisher fans transition events out over Redis pub/sub.
type Publisher struct {
	client  *backend.Client
	channel string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithChannel overrides the pub/sub channel.
func WithChannel(channel string) Option {
	return func(p *Publisher) {
		if channel != "" {
			p.channel = channel
		}
	}
}

// WithTimeout bounds each publish round trip.
func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		p.timeout = d
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New connects to the Redis server at addr.
func New(addr string, opts ...Option) *Publisher {
	return NewFromClient(backend.NewClient(&backend.Options{Addr: addr}), opts...)
}

// NewFromClient wraps an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Publisher {
	p := &Publisher{
		client:  client,
		channel: DefaultChannel,
		timeout: 2 * time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Channel returns the channel events are published to.
func (p *Publisher) Channel() string { return p.channel }

// Ping checks connectivity.
func (p *Publisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Publish sends one event as JSON.
func (p *Publisher) Publish(ctx context.Context, e domain.TransitionEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode transition: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish transition: %w", err)
	}
	return nil
}

// Hooks publishes every transition. Failures are logged and never reach the engine.
func (p *Publisher) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(e domain.TransitionEvent) {
			ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
			defer cancel()
			if err := p.Publish(ctx, e); err != nil {
				p.logger.Error("redis publish failed", "error", err, "channel", p.channel)
			}
		},
	}
}

// Close releases the underlying connection pool.
func (p *Publisher) Close() error {
	return p.client.Close()
}
