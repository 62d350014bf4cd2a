package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound is returned by a TokenStore for unknown refresh tokens
var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenStore keeps issued refresh tokens
type TokenStore interface {
	Save(ctx context.Context, token string, data *RefreshTokenData) error
	Get(ctx context.Context, token string) (*RefreshTokenData, error)
	Delete(ctx context.Context, token string) error
}

// MemoryTokenStore keeps refresh tokens in process memory
type MemoryTokenStore struct {
	tokens map[string]*RefreshTokenData
	mu     sync.RWMutex
}

// NewMemoryTokenStore creates an empty in-memory token store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]*RefreshTokenData)}
}

// Save stores a refresh token
func (s *MemoryTokenStore) Save(_ context.Context, token string, data *RefreshTokenData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = data
	return nil
}

// Get returns the data of a refresh token
func (s *MemoryTokenStore) Get(_ context.Context, token string) (*RefreshTokenData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.tokens[token]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return data, nil
}

// Delete removes a refresh token
func (s *MemoryTokenStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

const redisTokenPrefix = "token:refresh:"

// RedisTokenStore keeps refresh tokens in Redis so they survive restarts and
// are shared between replicas. Keys expire together with the token.
type RedisTokenStore struct {
	rdb *redis.Client
}

// NewRedisTokenStore creates a token store from a redis:// URL
func NewRedisTokenStore(redisURL string) (*RedisTokenStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return &RedisTokenStore{rdb: redis.NewClient(opts)}, nil
}

// Ping checks the Redis connection
func (s *RedisTokenStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Close closes the Redis client
func (s *RedisTokenStore) Close() error {
	return s.rdb.Close()
}

// Save stores a refresh token until it expires
func (s *RedisTokenStore) Save(ctx context.Context, token string, data *RefreshTokenData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode refresh token: %w", err)
	}
	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, redisTokenPrefix+token, payload, ttl).Err()
}

// Get returns the data of a refresh token
func (s *RedisTokenStore) Get(ctx context.Context, token string) (*RefreshTokenData, error) {
	payload, err := s.rdb.Get(ctx, redisTokenPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read refresh token: %w", err)
	}
	var data RefreshTokenData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to decode refresh token: %w", err)
	}
	return &data, nil
}

// Delete removes a refresh token
func (s *RedisTokenStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, redisTokenPrefix+token).Err()
}
