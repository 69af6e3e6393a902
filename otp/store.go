package otp

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store keeps the single current code per email. Last write wins; a new
// issuance replaces whatever code was there before.
type Store interface {
	Set(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	Invalidate(ctx context.Context, email string) error
}

// ErrNoCode is returned by Get when no code has been issued for the email.
var ErrNoCode = errors.New("no code issued")

// RedisStore backs the OTP slot with a redis key per email. Codes are stored
// without expiry; re-issue overwrites.
type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func (s *RedisStore) key(email string) string {
	return "otp:" + email
}

func (s *RedisStore) Set(ctx context.Context, email, code string) error {
	return s.Client.Set(ctx, s.key(email), code, 0).Err()
}

func (s *RedisStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.Client.Get(ctx, s.key(email)).Result()
	if err == redis.Nil {
		return "", ErrNoCode
	}
	return code, err
}

func (s *RedisStore) Invalidate(ctx context.Context, email string) error {
	return s.Client.Del(ctx, s.key(email)).Err()
}

// MemoryStore is an in-process Store for tests and redis-less development.
type MemoryStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{codes: make(map[string]string)}
}

func (s *MemoryStore) Set(ctx context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = code
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[email]
	if !ok {
		return "", ErrNoCode
	}
	return code, nil
}

func (s *MemoryStore) Invalidate(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
	return nil
}
