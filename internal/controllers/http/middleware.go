package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-service/internal/domain"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	identityKey     = "identity"
)

// RequestID reuses an inbound X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", requestID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("request completed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// requireAuth accepts "Authorization: Bearer <token>" and stores the
// identity it carries on the context. A missing header is 401; anything
// present that does not verify, including another scheme, is 403.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "Access token required", Code: "unauthorized"})
			return
		}
		id, err := h.auth.Verify(bearerToken(header))
		if err != nil {
			h.log.Debug("rejected credential", zap.String("request_id", requestID(c)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "Invalid or expired token", Code: "forbidden"})
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

// bearerToken returns the credential after "Bearer ", or "" for any other
// shape of header.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func identity(c *gin.Context) domain.Identity {
	v, _ := c.Get(identityKey)
	id, _ := v.(domain.Identity)
	return id
}

// rateLimit throttles action per client IP. Limiter failures let the request
// through.
func (h *Handler) rateLimit(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.limiter == nil {
			c.Next()
			return
		}

		res, err := h.limiter.Allow(c.Request.Context(), action+":"+c.ClientIP())
		if err != nil {
			h.log.Warn("rate limiter unavailable", zap.String("action", action), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
		if !res.Allowed {
			c.Header("Retry-After", strconv.FormatInt(int64(res.RetryAfter.Round(time.Second)/time.Second), 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Message: "Too many attempts, please try again later",
				Code:    "rate_limited",
			})
			return
		}
		c.Next()
	}
}
