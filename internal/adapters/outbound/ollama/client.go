// Package ollama adapts a local Ollama runtime to the review.Client port.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/koucxz/a-brick-code-analyzer/internal/domain/review"
)

// Config holds the connection and sampling settings for one client.
type Config struct {
	BaseURL     string
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
	Timeout     time.Duration
}

// DefaultConfig targets a local runtime with conservative sampling.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "http://localhost:11434",
		Model:       review.DefaultModel,
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   2048,
		Timeout:     120 * time.Second,
	}
}

// Client implements review.Client over the Ollama HTTP API.
type Client struct {
	cfg  Config
	http *http.Client
}

var _ review.Client = (*Client)(nil)

// New builds a client; zero-valued Config fields fall back to defaults.
func New(cfg Config) *Client {
	defaults := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaults.Model
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaults.Temperature
	}
	if cfg.TopP == 0 {
		cfg.TopP = defaults.TopP
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaults.MaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaults.Timeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// samplingOptions is the options block Ollama expects on inference calls.
type samplingOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

func (c *Client) options() samplingOptions {
	return samplingOptions{
		Temperature: c.cfg.Temperature,
		TopP:        c.cfg.TopP,
		NumPredict:  c.cfg.MaxTokens,
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options samplingOptions `json:"options"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

func (c *Client) Generate(ctx context.Context, prompt string) (*review.Analysis, error) {
	start := time.Now()

	var resp generateResponse
	req := generateRequest{Model: c.cfg.Model, Prompt: prompt, Options: c.options()}
	if err := c.do(ctx, http.MethodPost, "/api/generate", req, &resp); err != nil {
		return nil, err
	}
	return c.analysis(resp.Model, resp.Response, resp.PromptEvalCount, resp.EvalCount, resp.Done, start), nil
}

type chatRequest struct {
	Model    string           `json:"model"`
	Messages []review.Message `json:"messages"`
	Stream   bool             `json:"stream"`
	Options  samplingOptions  `json:"options"`
}

type chatResponse struct {
	Model           string         `json:"model"`
	Message         review.Message `json:"message"`
	Done            bool           `json:"done"`
	PromptEvalCount int            `json:"prompt_eval_count"`
	EvalCount       int            `json:"eval_count"`
}

func (c *Client) Chat(ctx context.Context, messages []review.Message) (*review.Analysis, error) {
	start := time.Now()

	var resp chatResponse
	req := chatRequest{Model: c.cfg.Model, Messages: messages, Options: c.options()}
	if err := c.do(ctx, http.MethodPost, "/api/chat", req, &resp); err != nil {
		return nil, err
	}
	return c.analysis(resp.Model, resp.Message.Content, resp.PromptEvalCount, resp.EvalCount, resp.Done, start), nil
}

func (c *Client) analysis(model, content string, promptTokens, completionTokens int, done bool, start time.Time) *review.Analysis {
	if model == "" {
		model = c.cfg.Model
	}
	return &review.Analysis{
		Content:          content,
		Model:            model,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
		Duration:         time.Since(start),
		Metadata:         map[string]any{"done": done},
	}
}

type tagsResponse struct {
	Models []struct {
		Name    string `json:"name"`
		Details struct {
			ParameterSize string `json:"parameter_size"`
			Family        string `json:"family"`
		} `json:"details"`
	} `json:"models"`
}

// Models lists installed models, enriched with the recommended-model
// metadata when the name matches.
func (c *Client) Models(ctx context.Context) ([]review.ModelInfo, error) {
	var resp tagsResponse
	if err := c.do(ctx, http.MethodGet, "/api/tags", nil, &resp); err != nil {
		return nil, err
	}

	known := map[string]review.ModelInfo{}
	for _, m := range review.RecommendedModels() {
		known[m.Name] = m
	}

	models := make([]review.ModelInfo, 0, len(resp.Models))
	for _, m := range resp.Models {
		if info, ok := known[m.Name]; ok {
			models = append(models, info)
			continue
		}
		models = append(models, review.ModelInfo{
			Name:        m.Name,
			Provider:    review.ProviderOllama,
			Size:        m.Details.ParameterSize,
			Description: m.Details.Family,
		})
	}
	return models, nil
}

type pullRequest struct {
	Name   string `json:"name"`
	Stream bool   `json:"stream"`
}

// Pull downloads a model. Streaming is disabled so the call returns a single
// status document when the download completes.
func (c *Client) Pull(ctx context.Context, model string) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/pull", pullRequest{Name: model}, &resp); err != nil {
		return err
	}
	if resp.Status != "success" {
		return fmt.Errorf("pulling %s: status %q", model, resp.Status)
	}
	return nil
}

func (c *Client) Available(ctx context.Context) bool {
	var resp tagsResponse
	return c.do(ctx, http.MethodGet, "/api/tags", nil, &resp) == nil
}

func (c *Client) Model() string {
	return c.cfg.Model
}

func (c *Client) SetModel(model string) {
	c.cfg.Model = model
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("contacting ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("ollama returned %s: %s", resp.Status, strings.TrimSpace(string(snippet)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
