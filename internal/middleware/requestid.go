package middleware

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
)

const (
	requestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
	requestIDLength     = 16 // random bytes; hex-encoded to 32 chars
	maxUpstreamIDLength = 64
)

var requestIDFallbackCounter atomic.Uint64

// RequestIDConfig controls whether upstream X-Request-ID values are reused.
type RequestIDConfig struct {
	TrustUpstream bool
}

// RequestID returns a gin middleware that tags each request with a unique ID.
// Upstream X-Request-ID headers are ignored; every request gets a fresh ID.
//
// The ID is stored in the gin.Context under "request_id", echoed in the
// X-Request-ID response header, and attached to the request's Go context via
// logger.WithContextAttrs so every log line carries it.
func RequestID() gin.HandlerFunc {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig is RequestID with explicit reuse behavior. When
// TrustUpstream is set, a well-formed incoming X-Request-ID (alphanumerics
// and hyphens, at most 64 chars) is carried through instead of generating
// a new one.
func RequestIDWithConfig(cfg RequestIDConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id string
		if cfg.TrustUpstream {
			if upstream := c.GetHeader(requestIDHeader); isValidRequestID(upstream) {
				id = upstream
			}
		}
		if id == "" {
			id = generateRequestID()
		}

		c.Set(requestIDContextKey, id)
		c.Header(requestIDHeader, id)

		ctx := logger.WithContextAttrs(c.Request.Context(), slog.String("request_id", id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func isValidRequestID(id string) bool {
	if id == "" || len(id) > maxUpstreamIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		ch := id[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '-':
		default:
			return false
		}
	}
	return true
}

// GetRequestID returns the request ID set by the middleware, or "" when
// the middleware did not run.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(requestIDContextKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// generateRequestID produces a random hex ID. If the system random source
// fails it falls back to a timestamp plus a process-local counter, which
// stays unique within this process.
func generateRequestID() string {
	b := make([]byte, requestIDLength)
	if _, err := rand.Read(b); err != nil {
		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], requestIDFallbackCounter.Add(1))
	}
	return hex.EncodeToString(b)
}
