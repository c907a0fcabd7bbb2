package app

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:bookings"

// Token bucket kept in a Redis hash. Returns {allowed, remaining, retry_after_ms}.
var tokenBucket = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill_tokens = tonumber(ARGV[3])
	local interval_ms = tonumber(ARGV[4])
	local ttl_seconds = tonumber(ARGV[5])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	if interval_ms > 0 and refill_tokens > 0 then
		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + (intervals * refill_tokens))
			last_refill = last_refill + (intervals * interval_ms)
		end
	end

	local allowed = 0
	local retry_after_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return { allowed, tokens, retry_after_ms }
`)

// rateLimitBookings throttles booking attempts per user. Other operations pass
// through. When Redis cannot answer the request is let through.
func (app *Application) rateLimitBookings(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg := app.config.RateLimit

		if !cfg.Enabled || app.redis == nil || !isBookingAttempt(r) {
			next.ServeHTTP(w, r)
			return
		}

		key := rateLimitKey(r)

		args := []any{
			app.now().UnixMilli(),
			cfg.Capacity,
			cfg.RefillTokens,
			cfg.RefillInterval.Milliseconds(),
			int64(cfg.TTL.Seconds()),
		}

		vals, err := tokenBucket.Run(r.Context(), app.redis, []string{key}, args...).Int64Slice()
		if err != nil || len(vals) != 3 {
			app.contextGetLogger(r).WarnContext(r.Context(), "rate limiter unavailable", "key", key, "error", err)
			next.ServeHTTP(w, r)
			return
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			app.rateLimitExceededResponse(w, r, int(math.Ceil(float64(retryMs)/1000)))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isBookingAttempt(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}

	rctx := chi.RouteContext(r.Context())

	return rctx != nil && rctx.RoutePattern() == "/bookings"
}

func rateLimitKey(r *http.Request) string {
	if userId, ok := r.Context().Value(SessionKeyUserId).(int); ok {
		return fmt.Sprintf("%s:user:%d", rateLimitKeyPrefix, userId)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	return fmt.Sprintf("%s:ip:%s", rateLimitKeyPrefix, ip)
}
