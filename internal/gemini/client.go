// Package gemini wraps the Google Gemini API for persona generation,
// roleplay chat, and transcript review.
package gemini

import (
	"context"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nmtri/rolecoach/internal/config"
	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/prompt"
	"github.com/nmtri/rolecoach/internal/session"
)

// Client talks to the Gemini API. It implements session.Gateway.
type Client struct {
	client *genai.Client
	cfg    *config.Config
}

// New creates a Gemini client with the given API key.
func New(ctx context.Context, apiKey string, cfg *config.Config) (*Client, error) {
	if apiKey == "" {
		return nil, errors.NewAPIKeyMissing()
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.NewGateway(err)
	}
	return &Client{client: gc, cfg: cfg}, nil
}

// ValidateKey sends a minimal probe request. A nil return means the key
// was accepted by the API.
func (c *Client) ValidateKey(ctx context.Context) error {
	_, err := c.generate(ctx, nil, []*genai.Content{userContent("Xin chào")}, nil)
	return err
}

// GenerateOnce sends a single prompt without conversation state and
// returns the model text. Used for persona generation and transcript
// review.
func (c *Client) GenerateOnce(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, nil, []*genai.Content{userContent(text)}, c.generationConfig())
}

// BeginChat opens a multi-turn roleplay chat. The persona system prompt
// is sent as the first user turn, paired with a synthetic model
// acknowledgement, so every later turn carries the full persona context.
func (c *Client) BeginChat(ctx context.Context, systemPrompt string) (session.Chat, error) {
	return &chat{
		client: c,
		history: []*genai.Content{
			userContent(systemPrompt),
			modelContent(prompt.SeedAck),
		},
	}, nil
}

func (c *Client) generationConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.cfg.Temperature),
		TopP:            genai.Ptr(c.cfg.TopP),
		TopK:            genai.Ptr(c.cfg.TopK),
		MaxOutputTokens: c.cfg.MaxOutputTokens,
	}
}

func (c *Client) generate(ctx context.Context, system *genai.Content, contents []*genai.Content, gcfg *genai.GenerateContentConfig) (string, error) {
	if gcfg == nil {
		gcfg = &genai.GenerateContentConfig{}
	}
	if system != nil {
		gcfg.SystemInstruction = system
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, contents, gcfg)
	if err != nil {
		return "", errors.NewGateway(err)
	}
	text := responseText(resp)
	if text == "" {
		return "", errors.NewGateway(nil)
	}
	return text, nil
}

// chat holds one roleplay conversation. History lives client-side; each
// turn resends the accumulated contents.
type chat struct {
	client  *Client
	mu      sync.Mutex
	history []*genai.Content
}

func (ch *chat) Send(ctx context.Context, text string) (string, error) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	contents := append(append([]*genai.Content(nil), ch.history...), userContent(text))
	reply, err := ch.client.generate(ctx, nil, contents, ch.client.generationConfig())
	if err != nil {
		return "", err
	}

	ch.history = append(contents, modelContent(reply))
	return reply, nil
}

func (ch *chat) Close() {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.history = nil
}

func userContent(text string) *genai.Content {
	return &genai.Content{Role: genai.RoleUser, Parts: []*genai.Part{{Text: text}}}
}

func modelContent(text string) *genai.Content {
	return &genai.Content{Role: genai.RoleModel, Parts: []*genai.Part{{Text: text}}}
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
