package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"protoparts/internal/core/apperror"
	appctx "protoparts/internal/core/context"
	"protoparts/pkg/logger"
)

type stubValidator struct {
	user *appctx.UserContext
	err  error
}

func (v stubValidator) ValidateToken(string) (*appctx.UserContext, error) {
	return v.user, v.err
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Trace(), ErrorHandler(), Recovery())
	r.GET("/x", handlers...)
	return r
}

func do(r *gin.Engine, header http.Header) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func ok(c *gin.Context) { c.Status(http.StatusNoContent) }

func TestAuth(t *testing.T) {
	reader := &appctx.UserContext{UserID: 7, Permissions: []string{"prototype:read"}}

	tests := []struct {
		name      string
		header    string
		validator stubValidator
		want      int
	}{
		{"missing header", "", stubValidator{user: reader}, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", stubValidator{user: reader}, http.StatusUnauthorized},
		{"empty token", "Bearer  ", stubValidator{user: reader}, http.StatusUnauthorized},
		{"invalid token", "Bearer abc", stubValidator{err: errors.New("expired")}, http.StatusUnauthorized},
		{"valid token", "bearer abc", stubValidator{user: reader}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(Auth(tt.validator), ok)
			h := http.Header{}
			if tt.header != "" {
				h.Set("Authorization", tt.header)
			}

			w, body := do(r, h)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Equal(t, apperror.CodeUnauthorized, body["code"])
			}
		})
	}
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name string
		user *appctx.UserContext
		want int
	}{
		{"granted", &appctx.UserContext{UserID: 1, Permissions: []string{"prototype:write"}}, http.StatusNoContent},
		{"missing", &appctx.UserContext{UserID: 1, Permissions: []string{"prototype:read"}}, http.StatusForbidden},
		{"admin", &appctx.UserContext{UserID: 1, IsAdmin: true}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(Auth(stubValidator{user: tt.user}), RequirePermission("prototype:write"), ok)
			w, _ := do(r, http.Header{"Authorization": {"Bearer t"}})
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestErrorHandler_HidesInternalErrors(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused"))
	})

	w, body := do(r, http.Header{HeaderRequestID: {"req-1"}})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.CodeInternal, body["code"])
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Equal(t, "req-1", body["details"].(map[string]any)["request_id"])
}

func TestErrorHandler_RendersAppError(t *testing.T) {
	r := newEngine(func(c *gin.Context) {
		_ = c.Error(apperror.NewNotFound("prototype", int64(5)))
	})

	w, body := do(r, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, body["code"])
	assert.Equal(t, "prototype not found", body["message"])
}

func TestRecovery(t *testing.T) {
	r := newEngine(func(c *gin.Context) { panic("boom") })

	w, body := do(r, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apperror.CodeInternal, body["code"])
}

func TestTrace(t *testing.T) {
	t.Run("traceparent wins", func(t *testing.T) {
		r := newEngine(ok)
		w, _ := do(r, http.Header{
			"Traceparent": {"00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"},
			HeaderTraceID: {"ignored"},
		})
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", w.Header().Get(HeaderTraceID))
	})

	t.Run("remote span context reaches handlers", func(t *testing.T) {
		var sc trace.SpanContext
		r := newEngine(func(c *gin.Context) {
			sc = trace.SpanContextFromContext(c.Request.Context())
			c.Status(http.StatusNoContent)
		})

		do(r, http.Header{"Traceparent": {"00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"}})

		require.True(t, sc.IsValid())
		assert.True(t, sc.IsRemote())
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", sc.TraceID().String())
		assert.Equal(t, "00f067aa0ba902b7", sc.SpanID().String())
	})

	t.Run("malformed traceparent falls back to X-Trace-ID", func(t *testing.T) {
		r := newEngine(ok)
		w, _ := do(r, http.Header{
			"Traceparent": {"00-zz-00f067aa0ba902b7-01"},
			HeaderTraceID: {"upstream-7"},
		})
		assert.Equal(t, "upstream-7", w.Header().Get(HeaderTraceID))
	})

	t.Run("client request id is echoed", func(t *testing.T) {
		r := newEngine(ok)
		w, _ := do(r, http.Header{HeaderRequestID: {"req-42"}})
		assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))
	})

	t.Run("oversized request id is replaced", func(t *testing.T) {
		r := newEngine(ok)
		long := make([]byte, maxRequestIDLen+1)
		for i := range long {
			long[i] = 'a'
		}
		w, _ := do(r, http.Header{HeaderRequestID: {string(long)}})
		got := w.Header().Get(HeaderRequestID)
		assert.NotEqual(t, string(long), got)
		assert.Len(t, got, 36)
	})
}

func TestLogger_HandsLoggerToInnerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(Trace(), Logger(logger.NewWithCore(core)), ErrorHandler(), Recovery())
	r.GET("/x", func(*gin.Context) { panic(errors.New("nil map")) })

	w, _ := do(r, http.Header{HeaderRequestID: {"req-9"}})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	panics := logs.FilterMessage("panic recovered").All()
	require.Len(t, panics, 1)
	assert.Equal(t, "req-9", panics[0].ContextMap()["request_id"])

	access := logs.FilterMessage("http request").All()
	require.Len(t, access, 1)
	assert.Equal(t, zapcore.ErrorLevel, access[0].Level)
	assert.Equal(t, int64(http.StatusInternalServerError), access[0].ContextMap()["status"])
}
