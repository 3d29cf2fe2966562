package queue

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const lockValue = "locked"

type redisQueue struct {
	client   *redis.Client
	queueKey string
}

// NewQueue connects to the store at redisURL (redis:// or rediss://). A
// non-empty token replaces the password of the URL.
func NewQueue(c context.Context, redisURL, token, queueKey string) (Store, func(), error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("Error parsing redis url: %s", err)
	}
	if token != "" {
		opts.Password = token
	}
	client := redis.NewClient(opts)
	err = client.Ping(c).Err()
	if err != nil {
		client.Close()
		return nil, nil, storeError(c, err, "connecting to redis")
	}
	return newRedisQueue(client, queueKey), func() {
		client.Close()
	}, nil
}

func newRedisQueue(client *redis.Client, queueKey string) *redisQueue {
	return &redisQueue{
		client:   client,
		queueKey: queueKey,
	}
}

func (q *redisQueue) Enqueue(c context.Context, payload []byte) error {
	err := q.client.LPush(c, q.queueKey, payload).Err()
	if err != nil {
		return storeError(c, err, "pushing onto "+q.queueKey)
	}
	log.Printf("Enqueued %d bytes on %s", len(payload), q.queueKey)
	return nil
}

func (q *redisQueue) Dequeue(c context.Context) ([]byte, bool, error) {
	payload, err := q.client.LPop(c, q.queueKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, storeError(c, err, "popping from "+q.queueKey)
	}
	return payload, true, nil
}

func (q *redisQueue) TryAcquireLock(c context.Context, name string, ttl time.Duration) (bool, error) {
	acquired, err := q.client.SetNX(c, name, lockValue, ttl).Result()
	if err != nil {
		return false, storeError(c, err, "acquiring lock "+name)
	}
	return acquired, nil
}

func (q *redisQueue) ReleaseLock(c context.Context, name string) error {
	err := q.client.Del(c, name).Err()
	if err != nil {
		return storeError(c, err, "releasing lock "+name)
	}
	return nil
}

// storeError blames the store only when the caller's context is still alive.
func storeError(c context.Context, err error, action string) error {
	if ctxErr := c.Err(); ctxErr != nil {
		return fmt.Errorf("Error %s: %w", action, ctxErr)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("Error %s: %w", action, err)
	}
	return fmt.Errorf("%w: error %s: %s", ErrStoreUnavailable, action, err)
}
