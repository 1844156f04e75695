package gateway

import (
	"context"
	"errors"
	"strings"

	"github.com/oreum-app/oreum"
)

// AnalyzeSentiment returns a short empathetic reply to a journal entry.
// Failures return [oreum.SentimentFallback]; an empty reply returns
// [oreum.SentimentEmptyFallback].
func (g *Gateway) AnalyzeSentiment(ctx context.Context, entry string) string {
	r := g.analyzeSentiment(ctx, entry)
	switch {
	case errors.Is(r.Err, oreum.ErrEmptyResponse):
		return oreum.SentimentEmptyFallback
	case r.Err != nil:
		g.logger.Error("sentiment analysis failed", "op", "analyze_sentiment", "error", r.Err)
		return oreum.SentimentFallback
	}
	return r.Value
}

func (g *Gateway) analyzeSentiment(ctx context.Context, entry string) oreum.Result[string] {
	m, _, err := g.boundModel(ctx)
	if err != nil {
		return oreum.Fail[string](err)
	}
	text, err := m.Generate(ctx, oreum.GenerateRequest{Prompt: oreum.SentimentPrompt(entry)})
	if err != nil {
		return oreum.Fail[string](err)
	}
	if strings.TrimSpace(text) == "" {
		return oreum.Fail[string](oreum.ErrEmptyResponse)
	}
	return oreum.Ok(text)
}
