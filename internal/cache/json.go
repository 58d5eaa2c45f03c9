package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"learn2drive/internal/domain"
)

// GetJSON reads key from c and decodes it into a T.
// A missing key is reported as domain.ErrCacheMiss.
func GetJSON[T any](ctx context.Context, c domain.Cache, key string) (T, error) {
	var out T
	raw, err := c.Get(ctx, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, fmt.Errorf("failed to decode cached value for %s: %w", key, err)
	}
	return out, nil
}

// TakeJSON is GetJSON through GetDel: the key is gone once it returns.
func TakeJSON[T any](ctx context.Context, c domain.Cache, key string) (T, error) {
	var out T
	raw, err := c.GetDel(ctx, key)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, fmt.Errorf("failed to decode cached value for %s: %w", key, err)
	}
	return out, nil
}

// SetJSON encodes value and stores it under key for ttl.
func SetJSON(ctx context.Context, c domain.Cache, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %s: %w", key, err)
	}
	return c.Set(ctx, key, string(raw), ttl)
}
