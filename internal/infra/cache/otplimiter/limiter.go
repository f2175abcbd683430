// Package otplimiter ограничивает частоту отправки OTP на один email (fixed window в Redis)
package otplimiter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:send:"

// ErrLimiter возвращается при ошибке обращения к Redis
var ErrLimiter = errors.New("otplimiter: redis error")

// Limiter счетчик отправок в окне window
type Limiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

// New создает лимитер. Если rdb == nil или limit <= 0, лимит не применяется.
func New(rdb *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{rdb: rdb, limit: int64(limit), window: window}
}

// Allow увеличивает счетчик для email и сообщает, укладывается ли запрос в лимит.
// Окно отсчитывается от первого запроса.
func (l *Limiter) Allow(ctx context.Context, email string) (bool, error) {
	if l == nil || l.rdb == nil || l.limit <= 0 {
		return true, nil
	}

	key := keyPrefix + strings.ToLower(email)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Allow - incr: %v", ErrLimiter, err)
	}

	if count == 1 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("%w: Allow - expire: %v", ErrLimiter, err)
		}
	}

	return count <= l.limit, nil
}

// Reset сбрасывает счетчик для email
func (l *Limiter) Reset(ctx context.Context, email string) error {
	if l == nil || l.rdb == nil {
		return nil
	}
	if err := l.rdb.Del(ctx, keyPrefix+strings.ToLower(email)).Err(); err != nil {
		return fmt.Errorf("%w: Reset - %v", ErrLimiter, err)
	}
	return nil
}
