package http

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/app"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/utils"
	"golang.org/x/time/rate"
)

// accountLimiter keeps one token bucket per account. A bucket unused for
// longer than idle is full again and is dropped on the next prune.
type accountLimiter struct {
	limit rate.Limit
	burst int
	idle  time.Duration

	mu        sync.Mutex
	limiters  map[int64]*limiterEntry
	lastPrune time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// newAccountLimiter allows perMinute requests per account with the given
// burst. A non-positive perMinute disables limiting.
func newAccountLimiter(perMinute, burst int) *accountLimiter {
	if perMinute <= 0 {
		return &accountLimiter{limit: rate.Inf}
	}
	if burst <= 0 {
		burst = 1
	}
	limit := rate.Limit(float64(perMinute) / 60)
	return &accountLimiter{
		limit:    limit,
		burst:    burst,
		idle:     time.Duration(float64(burst) / float64(limit) * float64(time.Second)),
		limiters: make(map[int64]*limiterEntry),
	}
}

// reserve takes a token for userID. It returns 0 when the request may go
// ahead, or how long the caller has to wait otherwise.
func (l *accountLimiter) reserve(userID int64, now time.Time) time.Duration {
	if l.limit == rate.Inf {
		return 0
	}

	l.mu.Lock()
	if now.Sub(l.lastPrune) >= l.idle {
		l.pruneLocked(now)
	}
	e, ok := l.limiters[userID]
	if !ok {
		e = &limiterEntry{lim: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[userID] = e
	}
	e.lastSeen = now
	lim := e.lim
	l.mu.Unlock()

	if lim.AllowN(now, 1) {
		return 0
	}

	r := lim.ReserveN(now, 1)
	defer r.CancelAt(now)
	if !r.OK() {
		return time.Second
	}
	return r.DelayFrom(now)
}

func (l *accountLimiter) pruneLocked(now time.Time) {
	for userID, e := range l.limiters {
		if now.Sub(e.lastSeen) > l.idle {
			delete(l.limiters, userID)
		}
	}
	l.lastPrune = now
}

// limitVaultSecret answers 429 with a Retry-After header once an account
// runs out of vault secret attempts in its bucket.
func (h *Handler) limitVaultSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		wait := h.limiter.reserve(userID, time.Now())
		if wait <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().Err(ErrRateLimited).
			Str("func", "*Handler.limitVaultSecret").
			Dur("retry_after", wait).
			Send()

		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
	})
}
