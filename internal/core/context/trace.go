package context

import (
	"context"
	"encoding/hex"

	"github.com/google/uuid"
)

// TraceContext identifies one request or CLI invocation across logs and the journal.
type TraceContext struct {
	TraceID   string
	SpanID    string
	RequestID string
}

type traceContextKey struct{}

// NewTraceContext fills missing ids with generated ones. Span ids are 16 hex digits.
func NewTraceContext(traceID, spanID, requestID string) *TraceContext {
	if traceID == "" {
		traceID = uuid.NewString()
	}
	if spanID == "" {
		u := uuid.New()
		spanID = hex.EncodeToString(u[:8])
	}
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return &TraceContext{TraceID: traceID, SpanID: spanID, RequestID: requestID}
}

// WithTrace adds TraceContext to context.
func WithTrace(ctx context.Context, trace *TraceContext) context.Context {
	return context.WithValue(ctx, traceContextKey{}, trace)
}

// GetTrace returns TraceContext from context.
func GetTrace(ctx context.Context) *TraceContext {
	if v, ok := ctx.Value(traceContextKey{}).(*TraceContext); ok {
		return v
	}
	return nil
}

// GetRequestID returns request ID from context or empty string.
func GetRequestID(ctx context.Context) string {
	if t := GetTrace(ctx); t != nil {
		return t.RequestID
	}
	return ""
}
