package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisBrokerInvalidURL(t *testing.T) {
	_, err := NewRedisBroker(context.Background(), Config{URL: "://not-a-url"}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}

func TestPublishOpensBreakerAfterConsecutiveFailures(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	b := newBroker(client, zerolog.Nop())
	defer b.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		err := b.Publish(ctx, "prescriptions.events", map[string]string{"type": "test"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, gobreaker.ErrOpenState)
	}

	err := b.Publish(ctx, "prescriptions.events", map[string]string{"type": "test"})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}

func TestPublishRejectsUnmarshalablePayload(t *testing.T) {
	b := newBroker(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), zerolog.Nop())
	defer b.Close()

	err := b.Publish(context.Background(), "prescriptions.events", make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
}
