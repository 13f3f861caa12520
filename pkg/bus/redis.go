package bus

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// RedisBus is the production Bus backed by github.com/redis/go-redis/v9.
type RedisBus struct {
	client *redis.Client
}

// Config holds connection settings for the bus. Values come from
// pkg/config's BusConfig.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisBus dials Redis and verifies connectivity.
func NewRedisBus(ctx context.Context, cfg Config) (*RedisBus, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "dial redis bus", err)
	}
	return &RedisBus{client: client}, nil
}

// NewFromClient wraps an already-constructed client — used by tests against
// miniredis and by callers sharing a connection pool.
func NewFromClient(client *redis.Client) *RedisBus {
	return &RedisBus{client: client}
}

func classify(err error) error {
	if err == nil || errors.Is(err, redis.Nil) {
		return nil
	}
	return sibylerr.Wrap(sibylerr.Transient, "redis bus operation", err)
}

func (b *RedisBus) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, sibylerr.Wrap(sibylerr.Transient, "bus get "+key, err)
	}
	return v, true, nil
}

func (b *RedisBus) SetEx(ctx context.Context, key, value string, ttlSeconds int64) error {
	return classify(b.client.SetEx(ctx, key, value, time.Duration(ttlSeconds)*time.Second).Err())
}

func (b *RedisBus) Del(ctx context.Context, key string) error {
	return classify(b.client.Del(ctx, key).Err())
}

func (b *RedisBus) ScanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := b.client.Scan(ctx, 0, pattern, 200).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "bus scan "+pattern, err)
	}
	return keys, nil
}

func (b *RedisBus) Publish(ctx context.Context, channel, payload string) error {
	return classify(b.client.Publish(ctx, channel, payload).Err())
}

func (b *RedisBus) Subscribe(ctx context.Context, channel string) (Subscription, error) {
	ps := b.client.Subscribe(ctx, channel)
	if _, err := ps.Receive(ctx); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "bus subscribe "+channel, err)
	}
	return &redisSubscription{ps: ps, ch: ps.Channel()}, nil
}

func (b *RedisBus) Ping(ctx context.Context) error {
	return classify(b.client.Ping(ctx).Err())
}

type redisSubscription struct {
	ps *redis.PubSub
	ch <-chan *redis.Message
}

func (s *redisSubscription) Receive(ctx context.Context) (string, bool) {
	select {
	case msg, ok := <-s.ch:
		if !ok {
			return "", false
		}
		return msg.Payload, true
	case <-ctx.Done():
		return "", false
	}
}

func (s *redisSubscription) Close() error {
	return s.ps.Close()
}
