package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"

	tests := []struct {
		name           string
		configuredKey  string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{"Valid API Key", apiKey, apiKey, "/api/v1/cases", http.StatusOK},
		{"Invalid API Key", apiKey, "wrong-key", "/api/v1/cases", http.StatusUnauthorized},
		{"Missing API Key", apiKey, "", "/api/v1/cases", http.StatusUnauthorized},
		{"Unconfigured key rejects everything", "", "", "/api/v1/cases", http.StatusUnauthorized},
		{"Public Path - Healthz", apiKey, "", "/healthz", http.StatusOK},
		{"Public Path - Readyz", apiKey, "", "/readyz", http.StatusOK},
		{"Public Path - Metrics", apiKey, "", "/metrics", http.StatusOK},
		{"Public Path - Swagger", apiKey, "", "/swagger/index.html", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := AuthMiddleware(tt.configuredKey, nil, NewSuspiciousActivityDetector())
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			mw(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if rec.Code == http.StatusUnauthorized {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, false, body["success"])
				assert.Equal(t, ErrMsgUnauthorized, body["message"])
			}
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := AuthMiddleware("key", nil, detector)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.RemoteAddr = "10.0.0.7:1234"
		mw(okHandler()).ServeHTTP(httptest.NewRecorder(), req)
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, 3, detector.failedAuthByIP["10.0.0.7"])
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRateLimitMiddleware(t *testing.T) {
	mw := RateLimitMiddleware(nil, NewSuspiciousActivityDetector())(okHandler())

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cases", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < MaxRequestsPerWindow; i++ {
		require.Equal(t, http.StatusOK, send("192.0.2.1:5000"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:5000"))
	assert.Equal(t, http.StatusOK, send("192.0.2.2:5000"), "other clients keep their own budget")
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		forwarded string
		trusted   []string
		want      string
	}{
		{"direct peer", "203.0.113.9:443", "", nil, "203.0.113.9"},
		{"untrusted peer forwarding is ignored", "203.0.113.9:443", "1.2.3.4", nil, "203.0.113.9"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:80", "6.6.6.6, 1.2.3.4", []string{"10.0.0.1"}, "1.2.3.4"},
		{"trusted proxy without header", "10.0.0.1:80", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"no port", "198.51.100.3", "", nil, "198.51.100.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 32)))
	h.ServeHTTP(httptest.NewRecorder(), req)

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
