package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	perr "voicebooking/internal/platform/errors"
	pnet "voicebooking/internal/platform/net"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimitOptions configures the per client token bucket
type RateLimitOptions struct {
	PerMinute int           // sustained requests per minute per client, <= 0 disables limiting
	Burst     int           // bucket size, defaults to PerMinute
	IdleTTL   time.Duration // idle buckets are forgotten after this, defaults to 10m
}

type limiterStore struct {
	mu    sync.Mutex
	every rate.Limit
	burst int
	seen  *cache.Cache
}

func (s *limiterStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.seen.Get(ip); ok {
		l := v.(*rate.Limiter)
		s.seen.SetDefault(ip, l)
		return l
	}
	l := rate.NewLimiter(s.every, s.burst)
	s.seen.SetDefault(ip, l)
	return l
}

// RateLimit rejects clients above the configured rate with 429 and a JSON failure body.
// Clients are keyed by pnet.ClientIP so RealIP should run first
func RateLimit(o RateLimitOptions) func(http.Handler) http.Handler {
	if o.PerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if o.Burst <= 0 {
		o.Burst = o.PerMinute
	}
	if o.IdleTTL <= 0 {
		o.IdleTTL = 10 * time.Minute
	}
	store := &limiterStore{
		every: rate.Every(time.Minute / time.Duration(o.PerMinute)),
		burst: o.Burst,
		seen:  cache.New(o.IdleTTL, 2*o.IdleTTL),
	}
	retry := strconv.Itoa(int((time.Minute / time.Duration(o.PerMinute)).Seconds()) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.get(pnet.ClientIP(r)).Allow() {
				w.Header().Set("Retry-After", retry)
				status, body := pnet.Fail(perr.TooManyRequestsf("Rate limit exceeded. Try again later."), pnet.RequestID(r.Context()))
				writeJSON(w, status, body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
