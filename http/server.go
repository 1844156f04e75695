// Package http serves the JSON API the web views call.
package http

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oreum-app/oreum"
	"github.com/oreum-app/oreum/focus"
	"github.com/oreum-app/oreum/gateway"
	"github.com/oreum-app/oreum/secret"
	"github.com/rs/cors"
)

// maxRequestBodySize bounds every JSON request body.
const maxRequestBodySize = 1 << 20

// Server holds the per-process view state and routes requests to it.
type Server struct {
	gateway *gateway.Gateway
	secrets *secret.Store
	journal oreum.JournalStore
	timer   *focus.Timer
	tasks   oreum.TaskList
	logger  *slog.Logger
	now     func() time.Time
	origins []string

	mu      sync.Mutex
	profile oreum.UserProfile
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the request and error logger. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithClock sets the time source for the profile streak and focus timer.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithAllowedOrigins sets the CORS origins. Default allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.origins = origins }
}

// NewServer creates a Server. The focus timer is created here so that
// completed focus periods feed the profile.
func NewServer(gw *gateway.Gateway, secrets *secret.Store, journal oreum.JournalStore, opts ...Option) *Server {
	s := &Server{
		gateway: gw,
		secrets: secrets,
		journal: journal,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
		origins: []string{"*"},
		profile: oreum.NewUserProfile(),
	}
	for _, o := range opts {
		o(s)
	}
	s.timer = focus.New(
		focus.WithClock(s.now),
		focus.OnComplete(s.focusCompleted),
	)
	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/settings/key", func(r chi.Router) {
			r.Get("/", s.handleKeyStatus)
			r.Put("/", s.handleKeySave)
			r.Delete("/", s.handleKeyClear)
		})
		r.Route("/chat", func(r chi.Router) {
			r.Get("/", s.handleChatHistory)
			r.Post("/", s.handleChatSend)
		})
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.handleTasksList)
			r.Post("/", s.handleTasksGenerate)
			r.Post("/{id}/toggle", s.handleTaskToggle)
		})
		r.Route("/journal", func(r chi.Router) {
			r.Get("/", s.handleJournalList)
			r.Post("/", s.handleJournalCreate)
		})
		r.Route("/focus", func(r chi.Router) {
			r.Get("/", s.handleFocusState)
			r.Post("/toggle", s.handleFocusToggle)
			r.Post("/reset", s.handleFocusReset)
			r.Put("/duration", s.handleFocusDuration)
		})
		r.Get("/profile", s.handleProfile)
	})
	return r
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
