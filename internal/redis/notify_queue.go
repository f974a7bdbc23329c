package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"geoattend/internal/domain"
	"geoattend/pkg/e"

	"github.com/redis/go-redis/v9"
)

// NotifyQueue is a redis list carrying one payload per recorded
// attendance mark; the notify sender drains it.
type NotifyQueue struct {
	client *redis.Client
	key    string
}

func NewNotifyQueue(client *redis.Client, key string) *NotifyQueue {
	return &NotifyQueue{client: client, key: key}
}

func (q *NotifyQueue) Enqueue(ctx context.Context, payload domain.NotificationPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotifyQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.NotificationPayload, error) {
	var p domain.NotificationPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
