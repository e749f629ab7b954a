package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	appctx "protoparts/internal/core/context"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderTraceID   = "X-Trace-ID"

	maxRequestIDLen = 64
)

var propagator = propagation.TraceContext{}

// Trace extracts the W3C trace context into the request context so spans
// started below join the caller's trace. Without one, X-Trace-ID is used and
// missing ids are generated.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		var traceID, spanID string
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			traceID, spanID = sc.TraceID().String(), sc.SpanID().String()
		} else {
			traceID = sanitizeID(c.GetHeader(HeaderTraceID))
		}
		tc := appctx.NewTraceContext(traceID, spanID, sanitizeID(c.GetHeader(HeaderRequestID)))
		c.Request = c.Request.WithContext(appctx.WithTrace(ctx, tc))

		c.Header(HeaderRequestID, tc.RequestID)
		c.Header(HeaderTraceID, tc.TraceID)

		c.Next()
	}
}

// sanitizeID drops client ids that are too long or not printable ASCII.
func sanitizeID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > maxRequestIDLen {
		return ""
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}
	return id
}
