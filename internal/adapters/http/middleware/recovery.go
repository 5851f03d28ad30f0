package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/leonardomurakami/murakams-home/internal/adapters/http/dto"
	"github.com/leonardomurakami/murakams-home/internal/platform/logging"
)

// Recovery returns middleware that recovers from panics.
// On panic, it logs the error with full stack trace at ERROR level and
// returns a 500 response: an HTML error page for browser requests, a JSON
// error envelope otherwise.
//
// This middleware should be applied first in the chain to catch panics
// from all subsequent handlers and middleware.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := debug.Stack()

				ctxLogger := logging.FromContext(c.Request.Context())

				var traceID string
				if span := trace.SpanFromContext(c.Request.Context()); span.SpanContext().HasTraceID() {
					traceID = span.SpanContext().TraceID().String()
				}

				ctxLogger.Error("panic recovered",
					slog.Any("error", r),
					slog.String("stack", string(stack)),
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
					slog.String("trace_id", traceID),
				)

				if c.Writer.Written() {
					c.Abort()
					return
				}

				if WantsHTML(c) {
					c.Data(http.StatusInternalServerError, "text/html; charset=utf-8",
						[]byte("<!DOCTYPE html><html><body><h1>Something went wrong</h1><p>Please try again later.</p></body></html>"))
					c.Abort()
					return
				}

				errResp := dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred")
				errResp.TraceID = traceID

				c.AbortWithStatusJSON(http.StatusInternalServerError, errResp)
			}
		}()

		c.Next()
	}
}

// WantsHTML reports whether the client prefers an HTML response.
// HTMX requests and normal browser navigation both accept text/html.
func WantsHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")

	return strings.Contains(accept, "text/html") || c.GetHeader("HX-Request") == "true"
}
