package middleware

import (
	"net/http"
	"sync"
	"time"

	"palmera/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterStore keeps one token bucket per client IP, all sized from the
// configured per-minute budget.
type limiterStore struct {
	mu       sync.Mutex
	perMin   int
	limiters map[string]*rate.Limiter
}

func newLimiterStore(perMin int) *limiterStore {
	if perMin <= 0 {
		perMin = 100
	}
	return &limiterStore{
		perMin:   perMin,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (s *limiterStore) limiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	lim, ok := s.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)
		s.limiters[ip] = lim
	}
	return lim
}

// RateLimitMiddleware throttles each client IP to MAX_REQUESTS_PER_MIN.
func RateLimitMiddleware() gin.HandlerFunc {
	store := newLimiterStore(config.AppConfig.MaxRequestsPerMin)
	return func(c *gin.Context) {
		ip := clientIP(c)
		if !store.limiter(ip).Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
