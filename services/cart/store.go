package cart

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"sohoconnect/models"
	"sohoconnect/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Store is the persistence port for carts. The cart engine has no direct
// dependency on any storage mechanism; adapters implement load/save/clear.
// Malformed or missing data loads as an empty cart, never an error.
type Store interface {
	Load(ctx context.Context, cartID string) []models.CartItem
	Save(ctx context.Context, cartID string, items []models.CartItem) error
	Clear(ctx context.Context, cartID string) error
}

// RedisStore persists carts in Redis keyed by cart ID.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Load reads the persisted cart. Missing keys and corrupt payloads both
// yield an empty cart; corruption is logged and the key reset.
func (s *RedisStore) Load(ctx context.Context, cartID string) []models.CartItem {
	data, err := s.client.Get(ctx, utils.CartKeyPrefix+cartID).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		utils.GetLogger().Warn("cart load failed, starting empty",
			zap.String("cartID", cartID), zap.Error(err))
		return nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		utils.GetLogger().Warn("corrupt cart payload, resetting",
			zap.String("cartID", cartID), zap.Error(err))
		_ = s.client.Del(ctx, utils.CartKeyPrefix+cartID).Err()
		return nil
	}
	return items
}

// Save replaces the whole persisted collection in a single write.
func (s *RedisStore) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, utils.CartKeyPrefix+cartID, b, s.ttl).Err()
}

// Clear removes the persisted cart.
func (s *RedisStore) Clear(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, utils.CartKeyPrefix+cartID).Err()
}

// MemoryStore is an in-process Store used by tests.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]models.CartItem)}
}

func (s *MemoryStore) Load(_ context.Context, cartID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[cartID]
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}

func (s *MemoryStore) Save(_ context.Context, cartID string, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]models.CartItem, len(items))
	copy(stored, items)
	s.carts[cartID] = stored
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}
