package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	"github.com/Rydon32/Book-Notes/internal/domain"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
)

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 7 * 24 * time.Hour

// RedisStore implements ports.SessionStore on redis. Tokens are opaque
// UUIDs; the stored payload is only the minimal claims subset.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, prefix: "session:", ttl: ttl}
}

func (s *RedisStore) key(token string) string { return s.prefix + token }

func (s *RedisStore) Create(ctx context.Context, claims domain.SessionClaims) (string, error) {
	token := uuid.NewString()
	data, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("session: marshal claims: %w", err)
	}
	if err := s.client.Set(ctx, s.key(token), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: store session: %v", domerrors.ErrStoreUnreachable, err)
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*domain.SessionClaims, error) {
	if token == "" {
		return nil, domerrors.ErrUnauthenticated
	}
	val, err := s.client.Get(ctx, s.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domerrors.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("%w: resolve session: %v", domerrors.ErrStoreUnreachable, err)
	}
	var claims domain.SessionClaims
	if err := json.Unmarshal([]byte(val), &claims); err != nil {
		return nil, fmt.Errorf("session: unmarshal claims: %w", err)
	}
	return &claims, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("%w: destroy session: %v", domerrors.ErrStoreUnreachable, err)
	}
	return nil
}

// Ensure RedisStore implements ports.SessionStore.
var _ ports.SessionStore = (*RedisStore)(nil)
