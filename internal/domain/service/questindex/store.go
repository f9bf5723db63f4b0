package questindex

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"tarkov_market/internal/domain/entity"
	"tarkov_market/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// MemoryStore хранит индексы в памяти процесса.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) MemoryStore {
	return MemoryStore{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s MemoryStore) Get(_ context.Context, lang value.Language) (entity.QuestNames, bool, error) {
	v, ok := s.cache.Get(lang.String())
	if !ok {
		return nil, false, nil
	}

	names, ok := v.(entity.QuestNames)

	return names, ok, nil
}

func (s MemoryStore) Set(_ context.Context, lang value.Language, names entity.QuestNames) error {
	s.cache.SetDefault(lang.String(), names)

	return nil
}

const redisKeyPrefix = "tarkov_market:questindex:"

// RedisStore делит индекс между репликами сервиса.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) RedisStore {
	return RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s RedisStore) Get(ctx context.Context, lang value.Language) (entity.QuestNames, bool, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+lang.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("client.Get: %w", err)
	}

	var names entity.QuestNames

	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return names, true, nil
}

func (s RedisStore) Set(ctx context.Context, lang value.Language, names entity.QuestNames) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+lang.String(), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
