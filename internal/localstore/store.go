package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/am-nutrition/storefront/internal/config"
	"github.com/am-nutrition/storefront/internal/models"
	"github.com/redis/go-redis/v9"
)

// The two durable slots of the session: the serialized cart and the
// monotonic order counter. Both are read at startup and overwritten on
// every relevant mutation; neither expires.
const (
	cartKey    = "cart"
	counterKey = "orderCounter"
)

// Store is the durable local key-value surface the cart engine and the
// order-number generator persist through.
type Store interface {
	SaveCart(ctx context.Context, lines []models.CartLine) error
	LoadCart(ctx context.Context) ([]models.CartLine, bool, error)
	IncrOrderCounter(ctx context.Context) (int64, error)
}

type redisStore struct {
	client *redis.Client
}

func NewClient(cfg *config.Config) (*redis.Client, error) {

	opt, err := redis.ParseURL(cfg.RedisConnect.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")

	return client, nil
}

func New(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) SaveCart(ctx context.Context, lines []models.CartLine) error {

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := s.client.Set(ctx, cartKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", cartKey, err)
	}

	return nil
}

func (s *redisStore) LoadCart(ctx context.Context) ([]models.CartLine, bool, error) {

	data, err := s.client.Get(ctx, cartKey).Bytes()
	if err != nil {

		if err == redis.Nil {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to get key %s from redis: %w", cartKey, err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cart data: %w", err)
	}

	return lines, true, nil
}

// IncrOrderCounter advances the counter and returns the new value. The
// increment sticks even when the order it numbers is never committed.
func (s *redisStore) IncrOrderCounter(ctx context.Context) (int64, error) {

	n, err := s.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment key %s in redis: %w", counterKey, err)
	}

	return n, nil
}
