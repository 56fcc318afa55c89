package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Header names carrying caller identity from the upstream gateway.
const (
	HeaderCallerID   = "X-Caller-Id"
	HeaderCallerRole = "X-Caller-Role"
)

// CallerContextMiddleware extracts the caller identity headers and stores them
// in the request context for handlers and audit logging. Requests without the
// headers pass through with an anonymous caller; enforcement belongs to the
// gateway in front of this service.
func CallerContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := Caller{
			ID:   c.GetHeader(HeaderCallerID),
			Role: c.GetHeader(HeaderCallerRole),
		}

		if caller.ID != "" {
			ctx := WithCaller(c.Request.Context(), caller)
			c.Request = c.Request.WithContext(ctx)

			if logger != nil {
				logger.Debug("request caller",
					slog.String("caller_id", caller.ID),
					slog.String("caller_role", caller.Role),
				)
			}
		}

		c.Next()
	}
}
