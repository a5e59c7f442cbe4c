package redislock

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix          = "vaccination:lock:"
	defaultRetryPeriod = 25 * time.Millisecond
)

var (
	// ErrLockFailed возвращается при ошибке обращения к Redis
	ErrLockFailed = errors.New("redislock: failed to acquire lock")
)

// unlockScript удаляет ключ, только если он всё ещё принадлежит владельцу
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker распределённая блокировка на Redis (SET NX PX)
// Используется, когда сервис запущен в нескольких экземплярах
type Locker struct {
	client      redis.UniversalClient
	ttl         time.Duration
	retryPeriod time.Duration
}

// New создает Locker; ttl ограничивает время жизни блокировки,
// если процесс упадёт, не освободив её
func New(client redis.UniversalClient, ttl time.Duration) *Locker {
	return &Locker{
		client:      client,
		ttl:         ttl,
		retryPeriod: defaultRetryPeriod,
	}
}

// Lock захватывает все ключи в отсортированном порядке
// Ожидание ограничено контекстом вызывающего
func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalize(keys)
	token := uuid.NewString()
	acquired := make([]string, 0, len(keys))

	for _, key := range keys {
		if err := l.acquire(ctx, keyPrefix+key, token); err != nil {
			l.release(acquired, token)
			return nil, err
		}
		acquired = append(acquired, keyPrefix+key)
	}

	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.release(acquired, token)
	}, nil
}

func (l *Locker) acquire(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(l.retryPeriod)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: key=%s: %w", ErrLockFailed, key, err)
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (l *Locker) release(keys []string, token string) {
	// Освобождаем даже при отменённом контексте запроса
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := len(keys) - 1; i >= 0; i-- {
		_ = unlockScript.Run(ctx, l.client, []string{keys[i]}, token).Err()
	}
}

func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
