// Package gateway orchestrates every call to the generative-model service.
//
// The Gateway holds one credential binding and at most one lazily created
// chat session for it. Each public operation converts any failure into a
// boolean or a fixed fallback value, so callers never branch on errors.
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/oreum-app/oreum"
)

// errRebound reports that Initialize ran while an operation was being set up.
var errRebound = errors.New("credential changed during session setup")

// Gateway is the single entry point from the views to the model service.
// It is safe for concurrent use; the lock is never held across a network call.
type Gateway struct {
	connect oreum.Connector
	logger  *slog.Logger
	now     func() time.Time

	mu         sync.Mutex
	credential string
	generation uint64 // bumped on every Initialize
	boundAt    time.Time
	model      oreum.Model
	chat       oreum.Chat
	history    []oreum.ChatMessage
}

// Option configures a [Gateway].
type Option func(*Gateway)

// WithLogger sets the logger failures are reported to. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// WithClock sets the time source used for ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

// New creates an unbound Gateway that builds models with connect.
func New(connect oreum.Connector, opts ...Option) *Gateway {
	g := &Gateway{
		connect: connect,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	g.boundAt = g.now()
	return g
}

// Initialize binds the gateway to credential, exactly as given, and
// discards any existing model, chat session and transcript. An empty
// credential unbinds.
func (g *Gateway) Initialize(credential string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.credential = credential
	g.generation++
	g.boundAt = g.now()
	g.model = nil
	g.chat = nil
	g.history = nil
}

// Configured reports whether a credential is bound.
func (g *Gateway) Configured() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.credential != ""
}

// CheckConnection reports whether candidate can complete one request
// against the service. It does not touch the bound session.
func (g *Gateway) CheckConnection(ctx context.Context, candidate string) bool {
	if r := g.checkConnection(ctx, candidate); !r.OK() {
		g.logger.Warn("connection check failed", "op", "check_connection", "error", r.Err)
		return false
	}
	return true
}

func (g *Gateway) checkConnection(ctx context.Context, candidate string) oreum.Result[struct{}] {
	if strings.TrimSpace(candidate) == "" {
		return oreum.Fail[struct{}](oreum.ErrUnconfigured)
	}
	m, err := g.connect(ctx, candidate)
	if err != nil {
		return oreum.Fail[struct{}](err)
	}
	if _, err := m.Generate(ctx, oreum.GenerateRequest{Prompt: oreum.ConnectionCheckPrompt}); err != nil {
		return oreum.Fail[struct{}](err)
	}
	return oreum.Ok(struct{}{})
}

// History returns a copy of the transcript of the bound session, starting
// with the welcome turn.
func (g *Gateway) History() []oreum.ChatMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]oreum.ChatMessage, 0, len(g.history)+1)
	out = append(out, oreum.WelcomeMessage(g.boundAt))
	return append(out, g.history...)
}

// boundModel returns the model for the bound credential, creating it on
// first use, together with the binding generation it belongs to.
func (g *Gateway) boundModel(ctx context.Context) (oreum.Model, uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.credential == "" {
		return nil, g.generation, oreum.ErrUnconfigured
	}
	if g.model == nil {
		m, err := g.connect(ctx, g.credential)
		if err != nil {
			return nil, g.generation, err
		}
		g.model = m
	}
	return g.model, g.generation, nil
}

// session returns the chat session of the bound credential, creating it
// with the mentor persona on first use.
func (g *Gateway) session(ctx context.Context) (oreum.Chat, uint64, error) {
	m, gen, err := g.boundModel(ctx)
	if err != nil {
		return nil, gen, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.generation {
		return nil, gen, errRebound
	}
	if g.chat == nil {
		c, err := m.NewChat(ctx, oreum.MentorInstruction)
		if err != nil {
			return nil, gen, err
		}
		g.chat = c
	}
	return g.chat, gen, nil
}
