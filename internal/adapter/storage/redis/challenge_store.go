package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ChallengeStore implements ports.ChallengeStore. Each account has at most
// one pending nonce; issuing a new challenge replaces the old one.
type ChallengeStore struct {
	client goredis.Cmdable
	prefix string
}

// NewChallengeStore creates a Redis-backed challenge store.
func NewChallengeStore(client goredis.Cmdable) *ChallengeStore {
	return &ChallengeStore{
		client: client,
		prefix: keyPrefix + "challenge:",
	}
}

// Issue stores nonce for account with the given TTL.
func (s *ChallengeStore) Issue(ctx context.Context, account string, nonce string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+account, nonce, ttl).Err(); err != nil {
		return fmt.Errorf("redis challenge set: %w", err)
	}
	return nil
}

// Consume atomically reads and deletes the pending nonce. It returns "" when
// no challenge is pending or it has expired.
func (s *ChallengeStore) Consume(ctx context.Context, account string) (string, error) {
	nonce, err := s.client.GetDel(ctx, s.prefix+account).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis challenge getdel: %w", err)
	}
	return nonce, nil
}
