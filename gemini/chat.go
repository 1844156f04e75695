package gemini

import (
	"context"
	"fmt"
	"sync"

	"github.com/oreum-app/oreum"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ oreum.Chat = (*chat)(nil)

// chat adapts a [genai.Chat] to [oreum.Chat]. The SDK keeps the curated
// history and drops failed or empty turns from it. genai.Chat is not safe
// for concurrent use, so turns on one session are serialized.
type chat struct {
	mu      sync.Mutex
	session *genai.Chat
}

// Send sends text as the next user turn and returns the model's reply.
func (c *chat) Send(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	resp, err := c.session.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", fmt.Errorf("gemini: chat: %w", err)
	}
	return responseText(resp), nil
}
