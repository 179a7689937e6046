package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// intervalDTO представление интервала в Redis
type intervalDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Kind  string    `json:"kind,omitempty"`
}

// RedisCache кеш снапшотов в Redis, одно JSON значение на ключ
type RedisCache struct {
	client redis.Cmdable
}

// NewRedisCache создает кеш поверх клиента Redis
func NewRedisCache(client redis.Cmdable) *RedisCache {
	return &RedisCache{client: client}
}

// Get возвращает снапшот или ErrCacheMiss
func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.BookedInterval, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("%w: get %s: %v", ErrCache, key, err)
	}

	return decode(data)
}

// Set сохраняет снапшот на ttl
func (c *RedisCache) Set(ctx context.Context, key string, intervals []domain.BookedInterval, ttl time.Duration) error {
	data, err := encode(intervals)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCache, key, err)
	}
	return nil
}

// Append добавляет интервал в существующий снапшот, сохраняя оставшийся ttl
// Запись не атомарна: конкурирующий Set может перезаписать добавленный интервал,
// это допустимо, так как снапшот не считается источником истины
func (c *RedisCache) Append(ctx context.Context, key string, interval domain.BookedInterval) (bool, error) {
	intervals, err := c.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return false, nil
		}
		return false, err
	}

	data, err := encode(append(intervals, interval))
	if err != nil {
		return false, err
	}

	if err := c.client.SetArgs(ctx, key, data, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			// Ключ истек между чтением и записью
			return false, nil
		}
		return false, fmt.Errorf("%w: append %s: %v", ErrCache, key, err)
	}
	return true, nil
}

// Delete удаляет снапшот
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %v", ErrCache, key, err)
	}
	return nil
}

func encode(intervals []domain.BookedInterval) (string, error) {
	dtos := make([]intervalDTO, 0, len(intervals))
	for _, iv := range intervals {
		dtos = append(dtos, intervalDTO{Start: iv.Start.UTC(), End: iv.End.UTC(), Kind: string(iv.Kind)})
	}

	data, err := json.Marshal(dtos)
	if err != nil {
		return "", fmt.Errorf("%w: encode: %v", ErrCorruptEntry, err)
	}
	return string(data), nil
}

func decode(data []byte) ([]domain.BookedInterval, error) {
	var dtos []intervalDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}

	intervals := make([]domain.BookedInterval, 0, len(dtos))
	for _, dto := range dtos {
		intervals = append(intervals, domain.BookedInterval{
			Start: dto.Start,
			End:   dto.End,
			Kind:  domain.IntervalKind(dto.Kind),
		})
	}
	return intervals, nil
}
