// File: services/consultation/sessionStore.go
package consultation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"sohoconnect/models"
	"sohoconnect/utils"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore caches consultation sessions in Redis with a TTL.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ConsultationSession, error) {
	data, err := s.client.Get(ctx, utils.SessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("consultation session not found or expired")
	}
	if err != nil {
		return nil, err
	}
	var sess models.ConsultationSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse consultation session: %w", err)
	}
	return &sess, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sess models.ConsultationSession) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, utils.SessionKeyPrefix+sess.ID, b, utils.SessionTTL).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, utils.SessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore is an in-process SessionStore used by tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.ConsultationSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.ConsultationSession)}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*models.ConsultationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("consultation session not found or expired")
	}
	return &sess, nil
}

func (s *MemorySessionStore) Set(_ context.Context, sess models.ConsultationSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
