package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
})

func serve(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestRequestIDGeneratesID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		logger := zerolog.Ctx(r.Context()).Output(&buf)
		logger.Info().Msg("inside")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		seen, _ = entry["request_id"].(string)
	}))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	id := rec.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, id, seen)
}

func TestRequestIDKeepsCallerUUID(t *testing.T) {
	want := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set(RequestIDHeader, want)

	rec := serve(RequestID(okHandler), req)
	require.Equal(t, want, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDReplacesMalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set(RequestIDHeader, "<script>")

	rec := serve(RequestID(okHandler), req)
	require.NotEqual(t, "<script>", rec.Header().Get(RequestIDHeader))
}

func TestAccessLogRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h := AccessLog(false)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/posts", nil)
	req = req.WithContext(logger.WithContext(req.Context()))
	serve(h, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "POST", entry["method"])
	require.Equal(t, "/api/posts", entry["path"])
	require.EqualValues(t, http.StatusTeapot, entry["status"])
	require.Equal(t, "192.0.2.1", entry["ip"])
}

func TestRecoverWritesGenericError(t *testing.T) {
	h := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("disk on fire")
	}))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/chats", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
}

func TestSecurityHeaders(t *testing.T) {
	rec := serve(SecurityHeaders(okHandler), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	h := CORS([]string{"*"})(okHandler)
	origin := "http://somewhere.example"

	req := httptest.NewRequest(http.MethodGet, "/api/account", nil)
	req.Header.Set("Origin", origin)
	rec := serve(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, []string{"*", origin}, rec.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/api/posts", nil)
	preflight.Header.Set("Origin", origin)
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	preflight.Header.Set("Access-Control-Request-Headers", "X-Anything")
	rec = serve(h, preflight)
	require.GreaterOrEqual(t, rec.Code, 200)
	require.Less(t, rec.Code, 300)
	require.Contains(t, []string{"*", origin}, rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORSRestrictedOrigins(t *testing.T) {
	h := CORS([]string{"https://app.example.com"})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/account", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := serve(h, req)
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://app.example.com")
	rec = serve(h, req)
	require.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIPRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(0.001, 2, false)
	defer l.Stop()
	h := l.Middleware(okHandler)

	from := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		req.RemoteAddr = ip + ":40000"
		return serve(h, req).Code
	}

	require.Equal(t, http.StatusOK, from("10.0.0.1"))
	require.Equal(t, http.StatusOK, from("10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, from("10.0.0.1"))
	require.Equal(t, http.StatusOK, from("10.0.0.2"))
}

func TestIPRateLimiterEvictsIdleEntries(t *testing.T) {
	l := NewIPRateLimiter(1, 1, false)
	l.Stop()
	l.Stop()

	l.get("10.0.0.1")
	l.get("10.0.0.2")
	require.Equal(t, 2, l.size())

	l.evictIdle(time.Now().Add(l.ttl + time.Minute))
	require.Zero(t, l.size())
}

func TestRedisRateLimiterFailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()

	l := &RedisRateLimiter{Client: client, MaxRequests: 1, Window: time.Minute, BlockFor: time.Minute}
	for i := 0; i < 3; i++ {
		rec := serve(l.Middleware(okHandler), httptest.NewRequest(http.MethodGet, "/api/posts", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
