package gemini

import (
	"context"
	"fmt"
	"net/http"

	"github.com/oreum-app/oreum"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ oreum.Model = (*Client)(nil)

// Client implements [oreum.Model] for the Google Gemini API.
type Client struct {
	client *genai.Client
	model  string
}

type config struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*config)

// WithModel sets the model ID. Default is gemini-2.5-flash.
func WithModel(model string) Option {
	return func(c *config) { c.model = model }
}

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *config) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.httpClient = hc }
}

// New creates a new Gemini [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	cfg := config{model: defaultModel}
	for _, o := range opts {
		o(&cfg)
	}
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.httpClient,
	}
	if cfg.baseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.baseURL
	}
	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return &Client{client: gc, model: cfg.model}, nil
}

// Connector returns an [oreum.Connector] that builds clients with opts.
func Connector(opts ...Option) oreum.Connector {
	return func(ctx context.Context, credential string) (oreum.Model, error) {
		return New(ctx, credential, opts...)
	}
}

// Generate performs a single completion for req.Prompt.
func (c *Client) Generate(ctx context.Context, req oreum.GenerateRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}
	var cfg *genai.GenerateContentConfig
	if req.JSON {
		cfg = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	resp, err := c.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate: %w", err)
	}
	return responseText(resp), nil
}

// NewChat starts a chat seeded with systemPrompt. No request is made until
// the first Send.
func (c *Client) NewChat(ctx context.Context, systemPrompt string) (oreum.Chat, error) {
	cfg := &genai.GenerateContentConfig{}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}
	session, err := c.client.Chats.Create(ctx, c.model, cfg, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: create chat: %w", err)
	}
	return &chat{session: session}, nil
}

// responseText returns the non-thought text of the first candidate, or ""
// for a response without one.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}
