// Package redis stores durable slots in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eventbooking/internal/domain"
)

// SlotOptions configures the Redis slot.
type SlotOptions struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379/0)
	URL string

	// Prefix is prepended to all keys (e.g., "eventbooking:")
	Prefix string

	// ConnectTimeout bounds the initial ping
	ConnectTimeout time.Duration
}

// Slot is a Redis-backed DurableSlot. Keys have no expiry.
type Slot struct {
	client *redis.Client
	prefix string
}

// NewSlot connects to Redis and verifies the connection.
func NewSlot(opts SlotOptions) (*Slot, error) {
	if opts.URL == "" {
		return nil, errors.New("redis URL is required")
	}
	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	redisOpts.DialTimeout = opts.ConnectTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Slot{client: client, prefix: opts.Prefix}, nil
}

func (s *Slot) prefixKey(key string) string {
	return s.prefix + key
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefixKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSlotEmpty
		}
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return val, nil
}

func (s *Slot) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefixKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *Slot) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefixKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *Slot) Close() error {
	return s.client.Close()
}
