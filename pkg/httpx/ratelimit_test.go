package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("rejects with 429 once the budget is spent", func(t *testing.T) {
		cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
		handler := Chain(okHandler, RateLimitByIP(cfg))

		var last *httptest.ResponseRecorder
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "203.0.113.9:1234"
			last = httptest.NewRecorder()
			handler.ServeHTTP(last, req)
		}

		require.Equal(t, http.StatusTooManyRequests, last.Code)
		require.NotEmpty(t, last.Header().Get("Retry-After"))
	})

	t.Run("budgets are tracked per key", func(t *testing.T) {
		cfg := RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
		handler := Chain(okHandler, RateLimitByIP(cfg))

		for _, addr := range []string{"203.0.113.1:1", "203.0.113.2:1", "203.0.113.3:1"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = addr
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("proxy headers override the remote addr", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:9999"
		req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
		require.Equal(t, "198.51.100.7", IPKeyExtractor(req))

		req.Header.Del("X-Forwarded-For")
		req.Header.Set("X-Real-IP", "198.51.100.8")
		require.Equal(t, "198.51.100.8", IPKeyExtractor(req))

		req.Header.Del("X-Real-IP")
		require.Equal(t, "10.0.0.1", IPKeyExtractor(req))
	})

	t.Run("composite keys join ip and form field", func(t *testing.T) {
		extract := CompositeKeyExtractor("|", IPKeyExtractor, FormFieldKeyExtractor("username"))

		req := httptest.NewRequest(http.MethodPost, "/?username=alice%40example.com", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		require.Equal(t, "203.0.113.9|alice@example.com", extract(req))
	})
}
