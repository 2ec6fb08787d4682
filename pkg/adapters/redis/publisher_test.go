package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/zerohour/pkg/adapters/redis"
	"github.com/aretw0/zerohour/pkg/domain"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func sampleEvent() domain.TransitionEvent {
	at := time.Date(2026, 3, 3, 10, 30, 0, 0, time.UTC)
	return domain.TransitionEvent{
		Kind:     domain.TransitionState,
		Previous: domain.Snapshot{Scenario: domain.ScenarioLegal, State: domain.StateNormal, TotalStates: 4, Timestamp: at},
		Current:  domain.Snapshot{Scenario: domain.ScenarioLegal, State: domain.StateExposureWindowOpen, StateIndex: 2, TotalStates: 4, Timestamp: at},
		At:       at,
	}
}

func TestPublisher_PublishesToChannel(t *testing.T) {
	_, client := newClient(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, redis.DefaultChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	p := redis.NewFromClient(client)
	assert.Equal(t, "zerohour:transitions", p.Channel())
	require.NoError(t, p.Ping(ctx))

	p.Hooks().OnTransition(sampleEvent())

	recvCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	msg, err := sub.ReceiveMessage(recvCtx)
	require.NoError(t, err)

	var got domain.TransitionEvent
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, sampleEvent(), got)
}

func TestPublisher_CustomChannel(t *testing.T) {
	mr, client := newClient(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, "custom")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	p := redis.NewFromClient(client, redis.WithChannel("custom"))
	require.NoError(t, p.Publish(ctx, sampleEvent()))

	assert.Equal(t, 1, mr.PubSubNumSub("custom")["custom"])

	recvCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	msg, err := sub.ReceiveMessage(recvCtx)
	require.NoError(t, err)
	assert.Equal(t, "custom", msg.Channel)
}

func TestPublisher_ServerDown(t *testing.T) {
	mr, client := newClient(t)
	p := redis.NewFromClient(client, redis.WithTimeout(200*time.Millisecond))
	mr.Close()

	err := p.Publish(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "failed to publish transition")

	// Hooks swallow the failure.
	assert.NotPanics(t, func() { p.Hooks().OnTransition(sampleEvent()) })
}
