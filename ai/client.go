// Package ai assembles the blog-content context block and calls the Gemini
// generation API. Upstream failures never propagate as errors to readers;
// they degrade to an "Error: ..." text shown in place of an answer.
package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator produces an answer for a reader question grounded on a context
// block. The return value is always displayable text.
type Generator interface {
	Answer(question, contextBlock string) string
}

// Options configure the generation client. A negative Temperature selects
// the default of 0.8; zero is honored as a deterministic setting.
type Options struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
}

// Client calls the Gemini generateContent API with a per-call timeout.
type Client struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
	timeout         time.Duration
}

// NewClient builds a Gemini-backed Client. The API key is required; model
// and tuning fields fall back to the values the blog has always used.
func NewClient(opts Options) (*Client, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}
	if opts.Temperature < 0 {
		opts.Temperature = 0.8
	}
	if opts.MaxOutputTokens == 0 {
		opts.MaxOutputTokens = 4096
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	gc, err := genai.NewClient(context.Background(), option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, err
	}
	return &Client{
		client:          gc,
		model:           opts.Model,
		temperature:     opts.Temperature,
		maxOutputTokens: opts.MaxOutputTokens,
		timeout:         opts.Timeout,
	}, nil
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	return c.client.Close()
}

// Answer sends the instruction template, the question, and the context
// block as one prompt and returns the generated text. Every failure path
// (transport error, timeout, empty candidate list, malformed response)
// comes back as a string prefixed "Error: "; the call never panics.
func (c *Client) Answer(question, contextBlock string) string {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)
	model.SetMaxOutputTokens(c.maxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(question, contextBlock)))
	if err != nil {
		return "Error: " + err.Error()
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "Error: no candidates returned"
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "Error: empty response from model"
	}
	return b.String()
}
