package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"stock-sentiment-dashboard/internal/dashboard/dto"
	"stock-sentiment-dashboard/pkg/common"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ViewStateRepository persists the view state of dashboard sessions.
type ViewStateRepository interface {
	Save(ctx context.Context, sessionID string, record *dto.ViewStateRecord) error
	Find(ctx context.Context, sessionID string) (*dto.ViewStateRecord, error)
	Delete(ctx context.Context, sessionID string) error
}

// NewMemoryViewStateRepository keeps view states in process memory; entries expire after ttl.
func NewMemoryViewStateRepository(ttl time.Duration) ViewStateRepository {
	return &memoryViewStateRepository{
		store: cache.New(ttl, 2*ttl),
	}
}

type memoryViewStateRepository struct {
	store *cache.Cache
}

func (r *memoryViewStateRepository) Save(_ context.Context, sessionID string, record *dto.ViewStateRecord) error {
	copied := *record
	r.store.SetDefault(sessionID, copied)
	return nil
}

func (r *memoryViewStateRepository) Find(_ context.Context, sessionID string) (*dto.ViewStateRecord, error) {
	value, ok := r.store.Get(sessionID)
	if !ok {
		return nil, ErrViewStateNotFound
	}
	record := value.(dto.ViewStateRecord)
	return &record, nil
}

func (r *memoryViewStateRepository) Delete(_ context.Context, sessionID string) error {
	r.store.Delete(sessionID)
	return nil
}

// NewRedisViewStateRepository stores view states as JSON strings with a ttl.
func NewRedisViewStateRepository(client *redis.Client, ttl time.Duration) ViewStateRepository {
	return &redisViewStateRepository{client: client, ttl: ttl}
}

type redisViewStateRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func viewStateKey(sessionID string) string {
	return common.RedisKeyViewStatePrefix + sessionID
}

func (r *redisViewStateRepository) Save(ctx context.Context, sessionID string, record *dto.ViewStateRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal view state: %w", err)
	}
	if err := r.client.Set(ctx, viewStateKey(sessionID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save view state: %w", err)
	}
	return nil
}

func (r *redisViewStateRepository) Find(ctx context.Context, sessionID string) (*dto.ViewStateRecord, error) {
	payload, err := r.client.Get(ctx, viewStateKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrViewStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load view state: %w", err)
	}

	var record dto.ViewStateRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal view state: %w", err)
	}
	return &record, nil
}

func (r *redisViewStateRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, viewStateKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete view state: %w", err)
	}
	return nil
}
