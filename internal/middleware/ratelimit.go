package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"pet-clinic-admin/internal/platform/httpjson"

	"golang.org/x/time/rate"
)

// maxTrackedClients: al superarlo se resetea el mapa de limiters.
const maxTrackedClients = 10000

// LoginLimiter limita intentos de login por IP.
type LoginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewLoginLimiter permite perMinute intentos por minuto con ráfaga del mismo tamaño.
// perMinute <= 0 desactiva el límite.
func NewLoginLimiter(perMinute int) *LoginLimiter {
	l := &LoginLimiter{limiters: make(map[string]*rate.Limiter)}
	if perMinute > 0 {
		l.rate = rate.Every(time.Minute / time.Duration(perMinute))
		l.burst = perMinute
	}
	return l
}

func (l *LoginLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.limiters) >= maxTrackedClients {
		l.limiters = make(map[string]*rate.Limiter)
	}
	lim, ok := l.limiters[key]
	if !ok {
		lim = rate.NewLimiter(l.rate, l.burst)
		l.limiters[key] = lim
	}
	return lim
}

func (l *LoginLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.burst == 0 {
			next.ServeHTTP(w, r)
			return
		}
		if !l.limiter(clientKey(r)).Allow() {
			w.Header().Set("Retry-After", "60")
			httpjson.WriteMessage(w, http.StatusTooManyRequests, "Too many login attempts, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey usa RemoteAddr (ya normalizado por chimw.RealIP) sin puerto.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
