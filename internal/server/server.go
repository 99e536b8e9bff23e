// Package server wires the HTTP router, middleware stack and handlers.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/kabachok/lootcase/internal/economy"
	"github.com/kabachok/lootcase/internal/handler"
	"github.com/kabachok/lootcase/internal/idempotency"
	"github.com/kabachok/lootcase/internal/logger"
	"github.com/kabachok/lootcase/internal/metrics"
	"github.com/kabachok/lootcase/internal/middleware"
)

// Options configures NewServer
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string

	Economy economy.Service

	// Idempotency is optional; nil disables Idempotency-Key replay
	Idempotency    idempotency.Store
	IdempotencyTTL time.Duration

	// ReadinessChecks are probed by /readyz
	ReadinessChecks []handler.HealthCheck
}

// Server is the HTTP front of the economy service
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts),
			ReadHeaderTimeout: ReadHeaderTimeout,
			ReadTimeout:       ReadTimeout,
			WriteTimeout:      WriteTimeout,
		},
	}
}

// NewRouter builds the route tree. Exposed for tests that drive it with httptest.
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.ReadinessChecks...))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	idem := func(next http.Handler) http.Handler { return next }
	if opts.Idempotency != nil {
		idem = idempotency.Middleware(opts.Idempotency, opts.IdempotencyTTL, middleware.ScopeByUser)
	} else {
		logger.Info(LogMsgIdempotencyOff)
	}

	cases := handler.NewCaseHandler(opts.Economy)
	inventory := handler.NewInventoryHandler(opts.Economy)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cases", func(r chi.Router) {
			r.Get("/", cases.HandleListCases)
			r.Get("/{caseID}", cases.HandleGetCase)
			r.Get("/{caseID}/odds", cases.HandleGetCaseOdds)
			r.With(middleware.RequireUser, idem).Post("/{caseID}/open", cases.HandleOpenCase)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/me", inventory.HandleGetProfile)

			r.Group(func(r chi.Router) {
				r.Use(idem)
				r.Post("/inventory/{entryID}/sell", inventory.HandleSellEntry)
				r.Post("/balance/deposit", handler.HandleDeposit(opts.Economy))
			})
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// loggingMiddleware assigns a request id, echoing a caller-supplied one, and
// logs the start and end of every request outside QuietPaths
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > MaxInboundRequestIDSize {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		for _, p := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func sanitizeHeaders(in http.Header) http.Header {
	out := make(http.Header, len(in))
	for k, v := range in {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
		} else {
			out[k] = v
		}
	}
	return out
}

// Start serves until Stop is called; it returns http.ErrServerClosed then
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
