package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/AnshRaj112/courtmatch-backend/pkg/clientip"
)

const (
	// RateLimitKeyPrefix is the Redis key prefix for per-IP request counters.
	RateLimitKeyPrefix = "ratelimit:"
	// BlockedIPKeyPrefix is the Redis key prefix for temporarily blocked IPs.
	BlockedIPKeyPrefix = "blocked_ip:"
)

// RedisRateLimiter counts requests per IP in fixed windows shared by every
// instance that talks to the same Redis. An IP that goes over the limit is
// blocked for BlockFor. Redis failures let the request through.
type RedisRateLimiter struct {
	Client      *redis.Client
	MaxRequests int
	Window      time.Duration
	BlockFor    time.Duration
	TrustProxy  bool
}

// Middleware enforces the limit.
func (l *RedisRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientip.FromRequest(r, l.TrustProxy)
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		blocked, err := l.IsBlocked(ctx, ip)
		if err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("rate limit check failed, allowing request")
			next.ServeHTTP(w, r)
			return
		}
		if blocked {
			writeDetail(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}

		count, err := l.hit(ctx, ip)
		if err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("rate limit count failed, allowing request")
			next.ServeHTTP(w, r)
			return
		}

		if count > int64(l.MaxRequests) {
			if err := l.Client.Set(ctx, BlockedIPKeyPrefix+ip, "1", l.BlockFor).Err(); err != nil {
				zerolog.Ctx(r.Context()).Warn().Err(err).Str("ip", ip).Msg("failed to block ip")
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(l.BlockFor.Seconds())))
			writeDetail(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.MaxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(l.MaxRequests)-count, 10))
		next.ServeHTTP(w, r)
	})
}

// hit increments the counter for ip and starts its window on the first hit.
func (l *RedisRateLimiter) hit(ctx context.Context, ip string) (int64, error) {
	key := RateLimitKeyPrefix + ip
	count, err := l.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := l.Client.Expire(ctx, key, l.Window).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}

// IsBlocked checks if an IP is currently blocked.
func (l *RedisRateLimiter) IsBlocked(ctx context.Context, ip string) (bool, error) {
	n, err := l.Client.Exists(ctx, BlockedIPKeyPrefix+ip).Result()
	return n > 0, err
}

// Unblock lifts a block early.
func (l *RedisRateLimiter) Unblock(ctx context.Context, ip string) error {
	return l.Client.Del(ctx, BlockedIPKeyPrefix+ip).Err()
}
