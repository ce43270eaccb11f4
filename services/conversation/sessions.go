// File: services/conversation/sessions.go
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotelbot/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "chat:session:"

// SessionStore keeps the per-session conversation transcript. Sessions are
// fully independent of each other.
type SessionStore interface {
	History(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	SaveHistory(ctx context.Context, sessionID string, messages []models.ChatMessage) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore implements SessionStore on Redis with a sliding TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// History returns the stored transcript, or an empty one for new sessions.
func (s *RedisSessionStore) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session history: %w", err)
	}
	var messages []models.ChatMessage
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, fmt.Errorf("session history: %w", err)
	}
	return messages, nil
}

func (s *RedisSessionStore) SaveHistory(ctx context.Context, sessionID string, messages []models.ChatMessage) error {
	b, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
