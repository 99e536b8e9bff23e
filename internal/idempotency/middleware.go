package idempotency

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/kabachok/lootcase/internal/logger"
)

// responseRecorder copies everything the handler writes
type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	body        bytes.Buffer
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if r.wroteHeader {
		return
	}
	r.wroteHeader = true
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// ScopeFunc namespaces keys, usually by caller identity, so two users can
// never replay each other's responses
type ScopeFunc func(r *http.Request) string

// Middleware replays stored responses for repeated Idempotency-Key values.
// Requests without the header pass straight through. Store failures fail
// open: the request runs as if no key had been sent. 5xx responses are not
// stored so the client can retry them.
func Middleware(store Store, ttl time.Duration, scope ScopeFunc) func(http.Handler) http.Handler {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderKey)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}
			if len(key) > MaxKeyLength {
				writeJSONError(w, http.StatusBadRequest, MsgKeyTooLong)
				return
			}
			if scope != nil {
				key = scope(r) + ":" + r.Method + ":" + r.URL.Path + ":" + key
			}

			ctx := r.Context()
			log := logger.FromContext(ctx)

			cached, err := store.Get(ctx, key)
			if err != nil {
				log.Warn(LogMsgStoreReadFail, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if cached != nil {
				replay(w, cached)
				log.Info(LogMsgCacheHit, "status", cached.StatusCode)
				return
			}

			reserved, err := store.Reserve(ctx, key, DefaultLockTTL)
			if err != nil {
				log.Warn(LogMsgStoreReadFail, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !reserved {
				writeJSONError(w, http.StatusConflict, MsgInFlight)
				return
			}

			// The work below must finish even if the client goes away
			bg := context.WithoutCancel(ctx)
			defer func() {
				if err := store.Release(bg, key); err != nil {
					log.Warn(LogMsgReleaseFail, "error", err)
				}
			}()

			// Another request may have finished between Get and Reserve
			if cached, err := store.Get(ctx, key); err == nil && cached != nil {
				replay(w, cached)
				log.Info(LogMsgCacheHit, "status", cached.StatusCode)
				return
			}

			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.statusCode >= http.StatusInternalServerError {
				return
			}
			resp := CachedResponse{
				StatusCode: rec.statusCode,
				Body:       rec.body.Bytes(),
				Headers:    map[string][]string{"Content-Type": w.Header().Values("Content-Type")},
			}
			if err := store.Save(bg, key, resp, ttl); err != nil {
				log.Error(LogMsgStoreWriteFail, "error", err)
			}
		})
	}
}

func replay(w http.ResponseWriter, cached *CachedResponse) {
	for name, values := range cached.Headers {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.Header().Set(HeaderHit, "true")
	w.WriteHeader(cached.StatusCode)
	_, _ = w.Write(cached.Body)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
