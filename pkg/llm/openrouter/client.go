package openrouter

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/artem13815/expense-assistant/pkg/llm"
)

const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Client is a minimal OpenRouter (OpenAI-compatible) chat completions client.
type Client struct {
	APIKey   string
	BaseURL  string
	Model    string
	AppTitle string
	Referer  string
	api      *openai.Client
}

func New(apiKey, baseURL, model, appTitle, referer string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	cfg.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &attributionTransport{
			appTitle: appTitle,
			referer:  referer,
			next:     http.DefaultTransport,
		},
	}
	return &Client{
		APIKey:   apiKey,
		BaseURL:  baseURL,
		Model:    model,
		AppTitle: appTitle,
		Referer:  referer,
		api:      openai.NewClientWithConfig(cfg),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.APIKey != "" }

// Ask sends a system + user prompt pair and returns the first choice's content.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string, params llm.Params) (string, error) {
	if c.APIKey == "" {
		return "", llm.ErrNotConfigured
	}
	req := openai.ChatCompletionRequest{
		Model: c.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	}
	if params.JSONOutput {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", upstreamError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &llm.UpstreamError{Detail: "no choices returned by model"}
	}
	return resp.Choices[0].Message.Content, nil
}

func upstreamError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &llm.UpstreamError{StatusCode: apiErr.HTTPStatusCode, Detail: apiErr.Message, Err: err}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := ""
		if reqErr.Err != nil {
			detail = reqErr.Err.Error()
		}
		return &llm.UpstreamError{StatusCode: reqErr.HTTPStatusCode, Detail: detail, Err: err}
	}
	return &llm.UpstreamError{Err: err}
}

// attributionTransport adds the OpenRouter app attribution headers.
type attributionTransport struct {
	appTitle string
	referer  string
	next     http.RoundTripper
}

func (t *attributionTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	if t.referer != "" {
		r.Header.Set("HTTP-Referer", t.referer)
	}
	if t.appTitle != "" {
		r.Header.Set("X-Title", t.appTitle)
	}
	return t.next.RoundTrip(r)
}
