package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"geoattend/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// OfficeCache holds the per-manager office set so the attendance hot path
// does not hit postgres on every evaluation. An empty cached slice is a
// valid state (manager with no offices) and is distinct from a miss.
type OfficeCache struct {
	client *goredis.Client
}

func NewOfficeCache(r *Redis) *OfficeCache {
	return &OfficeCache{client: r.Client}
}

func managerKey(managerID uuid.UUID) string {
	return fmt.Sprintf("offices:manager:%s", managerID)
}

func (c *OfficeCache) GetByManager(ctx context.Context, managerID uuid.UUID) ([]domain.Office, bool, error) {
	data, err := c.client.Get(ctx, managerKey(managerID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var offices []domain.Office
	if err := json.Unmarshal(data, &offices); err != nil {
		return nil, false, err
	}

	return offices, true, nil
}

func (c *OfficeCache) SetByManager(ctx context.Context, managerID uuid.UUID, offices []domain.Office, ttl time.Duration) error {
	if offices == nil {
		offices = []domain.Office{}
	}
	b, err := json.Marshal(offices)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, managerKey(managerID), b, ttl).Err()
}
