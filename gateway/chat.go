package gateway

import (
	"context"
	"errors"
	"strings"

	"github.com/oreum-app/oreum"
)

// SendMessage sends text on the bound chat session and returns the reply.
// Failures return [oreum.ChatFallback]; an empty reply returns
// [oreum.ChatEmptyFallback].
func (g *Gateway) SendMessage(ctx context.Context, text string) string {
	return g.Reply(ctx, text).Text
}

// Reply is SendMessage returning the model turn as recorded in the
// transcript. The exchange is not recorded if the credential changed while
// the call was in flight.
func (g *Gateway) Reply(ctx context.Context, text string) oreum.ChatMessage {
	r, gen := g.sendMessage(ctx, text)
	reply := r.Value
	switch {
	case errors.Is(r.Err, oreum.ErrEmptyResponse):
		reply = oreum.ChatEmptyFallback
	case r.Err != nil:
		g.logger.Error("chat failed", "op", "send_message", "error", r.Err)
		reply = oreum.ChatFallback
	}
	return g.record(gen, text, reply)
}

func (g *Gateway) sendMessage(ctx context.Context, text string) (oreum.Result[string], uint64) {
	chat, gen, err := g.session(ctx)
	if err != nil {
		return oreum.Fail[string](err), gen
	}
	reply, err := chat.Send(ctx, text)
	if err != nil {
		return oreum.Fail[string](err), gen
	}
	if strings.TrimSpace(reply) == "" {
		return oreum.Fail[string](oreum.ErrEmptyResponse), gen
	}
	return oreum.Ok(reply), gen
}

func (g *Gateway) record(gen uint64, userText, modelText string) oreum.ChatMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	u, m := oreum.NewExchange(g.now(), userText, modelText)
	if gen == g.generation {
		g.history = append(g.history, u, m)
	}
	return m
}
