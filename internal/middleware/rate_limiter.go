package middleware

import (
	"net/http"
	"sync"
	"time"

	"tiendapos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// slidingWindow is a per-IP fixed-window counter. One instance per guarded
// surface; entries for IPs that stop calling are purged in the background.
type slidingWindow struct {
	mu      sync.Mutex
	seen    map[string]*windowEntry
	limit   int
	window  time.Duration
	message string
}

type windowEntry struct {
	count     int
	windowEnd time.Time
}

func newSlidingWindow(limit int, window time.Duration, message string) *slidingWindow {
	sw := &slidingWindow{
		seen:    make(map[string]*windowEntry),
		limit:   limit,
		window:  window,
		message: message,
	}
	go sw.purgeLoop()
	return sw
}

// allow counts one request from ip and reports whether it is within limit.
func (sw *slidingWindow) allow(ip string) (bool, time.Time) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	now := time.Now()
	entry, ok := sw.seen[ip]
	if !ok || now.After(entry.windowEnd) {
		entry = &windowEntry{windowEnd: now.Add(sw.window)}
		sw.seen[ip] = entry
	}
	entry.count++
	return entry.count <= sw.limit, entry.windowEnd
}

func (sw *slidingWindow) purgeLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		sw.mu.Lock()
		purged := 0
		for ip, entry := range sw.seen {
			if now.After(entry.windowEnd) {
				delete(sw.seen, ip)
				purged++
			}
		}
		size := len(sw.seen)
		sw.mu.Unlock()
		if purged > 0 {
			log.Debug().Int("purged", purged).Int("remaining", size).Msg("rate limiter entries purged")
		}
	}
}

func (sw *slidingWindow) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := sw.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(sw.message))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter throttles credential guessing: 10 attempts per minute per
// IP, far above what the single shop terminal legitimately produces.
func LoginRateLimiter() gin.HandlerFunc {
	return newSlidingWindow(10, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.").middleware()
}

// RateLimiter is the general API guard applied to the whole route tree.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newSlidingWindow(limit, window,
		"Demasiadas solicitudes. Intente nuevamente en un momento.").middleware()
}
