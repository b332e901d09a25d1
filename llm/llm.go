// Package llm provides the text-completion collaborator backed by the
// Anthropic Messages API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const defaultBaseURL = "https://api.anthropic.com/v1"

const apiVersion = "2023-06-01"

// ErrRateLimited signals an upstream 429. Callers fall back to a canned
// response immediately; there is no retry loop for this case.
var ErrRateLimited = errors.New("completion provider rate limited")

// Message is a single conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage reports token consumption for one completion.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Completion is the provider's answer to a conversation.
type Completion struct {
	Text  string
	Model string
	Usage Usage
}

// Cost estimates the dollar cost of the completion from per-million-token
// rates for the known model tiers; unknown models cost zero.
func (c *Completion) Cost() float64 {
	rates, ok := modelRates[c.Model]
	if !ok {
		return 0
	}
	return float64(c.Usage.InputTokens)*rates.input/1_000_000 +
		float64(c.Usage.OutputTokens)*rates.output/1_000_000
}

var modelRates = map[string]struct{ input, output float64 }{
	"claude-3-haiku-20240307":  {input: 0.25, output: 1.25},
	"claude-3-sonnet-20240229": {input: 3, output: 15},
}

// Completer generates a completion for a conversation.
type Completer interface {
	Complete(ctx context.Context, system string, messages []Message) (*Completion, error)
}

type anthropicCompleter struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	client      *http.Client
	baseURL     string
}

// NewCompleter creates a Completer for the given model tier.
func NewCompleter(apiKey, model string, maxTokens int, temperature float64, client *http.Client) Completer {
	return newCompleterWithURL(apiKey, model, maxTokens, temperature, client, defaultBaseURL)
}

// newCompleterWithURL creates a Completer with a custom base URL for testing.
func newCompleterWithURL(apiKey, model string, maxTokens int, temperature float64, client *http.Client, baseURL string) Completer {
	if client == nil {
		client = http.DefaultClient
	}
	return &anthropicCompleter{
		apiKey:      apiKey,
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		client:      client,
		baseURL:     baseURL,
	}
}

type anthropicRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []Message `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
	Usage Usage `json:"usage"`
}

func (a *anthropicCompleter) Complete(ctx context.Context, system string, messages []Message) (*Completion, error) {
	reqBody := anthropicRequest{
		Model:       a.model,
		MaxTokens:   a.maxTokens,
		Temperature: a.temperature,
		System:      system,
		Messages:    messages,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling completion provider: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading completion response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion provider returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("parsing completion response: %w", err)
	}
	if len(parsed.Content) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	return &Completion{
		Text:  parsed.Content[0].Text,
		Model: a.model,
		Usage: parsed.Usage,
	}, nil
}
