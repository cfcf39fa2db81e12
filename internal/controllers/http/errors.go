package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/internal/domain"
)

var errorStatuses = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnavailable, http.StatusServiceUnavailable, "unavailable"},
	{domain.ErrPersistence, http.StatusInternalServerError, "persistence_error"},
}

func statusFor(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.code
		}
	}
	return http.StatusInternalServerError, "internal_error"
}

// fail writes err as {"message", "code"}. fallback is used when err carries
// no client message, which keeps driver errors out of responses.
func (h *Handler) fail(c *gin.Context, err error, fallback string) {
	status, code := statusFor(err)
	msg := domain.ClientMessage(err)
	if msg == "" {
		msg = fallback
	}
	if status >= http.StatusInternalServerError {
		h.log.Error(fallback,
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
	}
	c.JSON(status, ErrorResponse{Message: msg, Code: code})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg, Code: "invalid_input"})
}
