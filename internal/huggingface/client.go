// Package huggingface implements a minimal client for Hugging Face style
// text-generation inference endpoints.
package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Config holds the inference endpoint settings. Token is a bearer credential
// and must never be logged.
type Config struct {
	Endpoint    string
	Token       string
	MaxTokens   int
	Temperature float32
	Timeout     time.Duration
}

// Client calls a hosted text-generation model over HTTPS. Each Infer call is
// a single attempt bounded by the configured timeout; there are no retries.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. Endpoint and Token are required.
func NewClient(cfg Config, log *slog.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("inference endpoint is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("inference token is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With("component", "huggingface"),
	}, nil
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens int     `json:"max_new_tokens,omitempty"`
	Temperature  float32 `json:"temperature,omitempty"`
}

type inferenceResult struct {
	GeneratedText string `json:"generated_text"`
}

// Infer sends the prompt to the inference endpoint and returns the generated
// text of the first result. Any transport fault, non-2xx status, or payload
// without a generated_text entry is an error.
func (c *Client) Infer(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens: c.cfg.MaxTokens,
			Temperature:  c.cfg.Temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("inference endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []inferenceResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(results) == 0 || results[0].GeneratedText == "" {
		return "", fmt.Errorf("inference response contained no generated text")
	}

	c.log.DebugContext(ctx, "inference completed", "endpoint", c.cfg.Endpoint, "chars", len(results[0].GeneratedText))
	return results[0].GeneratedText, nil
}
