package verification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares codes between processes, so the SMS webhook can run apart
// from the booking worker. Consuming a code deletes its key.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, code Code) error {
	code.Consumed = false

	payload, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("failed to marshal code: %w", err)
	}

	return s.client.Set(ctx, codeKey(code.Identity), payload, s.ttl).Err()
}

func (s *RedisStore) Take(ctx context.Context, identity string, now time.Time, ttl time.Duration) (Code, bool, error) {
	pipe := s.client.TxPipeline()
	get := pipe.Get(ctx, codeKey(identity))
	pipe.Del(ctx, codeKey(identity))

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return Code{}, false, fmt.Errorf("failed to take code: %w", err)
	}

	data, err := get.Bytes()
	if errors.Is(err, redis.Nil) {
		return Code{}, false, nil
	}

	if err != nil {
		return Code{}, false, fmt.Errorf("failed to read code: %w", err)
	}

	var code Code
	if err := json.Unmarshal(data, &code); err != nil {
		return Code{}, false, fmt.Errorf("failed to unmarshal code: %w", err)
	}

	if now.Sub(code.ReceivedAt) > ttl {
		return Code{}, false, nil
	}

	code.Consumed = true

	return code, true, nil
}

func codeKey(identity string) string {
	return "verification:code:" + identity
}
