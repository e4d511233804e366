package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	tokenKeyPrefix = "sess:t:" // token -> session record
	idKeyPrefix    = "sess:i:" // session ID -> current token
)

// RedisStore persists sessions in Redis with an expiry matching the session's
// lifetime. Records are stored as JSON under the token key; a secondary key
// maps the stable session ID to the current token so rotation and deletion
// by ID work without scanning.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// record is the serialized session shape. Unexported session flags (dirty,
// isNew) are deliberately not persisted.
type record struct {
	CreatedAt    time.Time      `json:"created_at"`
	LastActiveAt time.Time      `json:"last_active_at"`
	ExpiresAt    time.Time      `json:"expires_at"`
	UserID       *string        `json:"user_id,omitempty"`
	Values       map[string]any `json:"values,omitempty"`
	ID           string         `json:"id"`
	Token        string         `json:"token"`
}

// Create persists a new session.
func (r *RedisStore) Create(ctx context.Context, s *Session) error {
	return r.write(ctx, s)
}

// Get retrieves a session by its token.
func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	raw, err := r.client.Get(ctx, tokenKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("session: redis get: %w", err)
	}

	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("session: decode record: %w", err)
	}

	s := &Session{
		ID:           rec.ID,
		Token:        rec.Token,
		UserID:       rec.UserID,
		Values:       rec.Values,
		CreatedAt:    rec.CreatedAt,
		LastActiveAt: rec.LastActiveAt,
		ExpiresAt:    rec.ExpiresAt,
	}
	if s.Values == nil {
		s.Values = make(map[string]any)
	}
	if s.IsExpired() {
		// Redis TTL usually collects these first; this covers clock edges.
		_ = r.Delete(ctx, s.ID)
		return nil, ErrExpired
	}
	return s, nil
}

// Update saves changes to an existing session, dropping the old token key when
// the token rotated.
func (r *RedisStore) Update(ctx context.Context, s *Session) error {
	oldToken, err := r.client.Get(ctx, idKeyPrefix+s.ID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("session: redis get id index: %w", err)
	}
	if oldToken != "" && oldToken != s.Token {
		if err := r.client.Del(ctx, tokenKeyPrefix+oldToken).Err(); err != nil {
			return fmt.Errorf("session: redis del rotated token: %w", err)
		}
	}

	s.LastActiveAt = time.Now()
	return r.write(ctx, s)
}

// Delete removes a session by its ID.
func (r *RedisStore) Delete(ctx context.Context, id string) error {
	token, err := r.client.Get(ctx, idKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("session: redis get id index: %w", err)
	}

	if err := r.client.Del(ctx, tokenKeyPrefix+token, idKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}

func (r *RedisStore) write(ctx context.Context, s *Session) error {
	rec := record{
		ID:           s.ID,
		Token:        s.Token,
		UserID:       s.UserID,
		Values:       s.Values,
		CreatedAt:    s.CreatedAt,
		LastActiveAt: s.LastActiveAt,
		ExpiresAt:    s.ExpiresAt,
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session: encode record: %w", err)
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return ErrExpired
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, tokenKeyPrefix+s.Token, raw, ttl)
	pipe.Set(ctx, idKeyPrefix+s.ID, s.Token, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session: redis set: %w", err)
	}
	return nil
}
