package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OpenAIClient calls the OpenAI chat completions API.
type OpenAIClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	stats      *Stats
	log        *slog.Logger
}

func NewOpenAIClient(apiKey, model, baseURL string, timeout time.Duration, stats *Stats, log *slog.Logger) *OpenAIClient {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &OpenAIClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		stats:      stats,
		log:        log,
	}
}

func (c *OpenAIClient) Model() string { return c.model }

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Temperature float64         `json:"temperature"`
	Messages    []openAIMessage `json:"messages"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *OpenAIClient) Generate(ctx context.Context, system, user string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("llm.generate.start",
		"req_id", rid,
		"provider", "openai",
		"model", c.model,
		"user_len", len(user),
	)

	body, err := json.Marshal(openAIRequest{
		Model:       c.model,
		Temperature: 0.3,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &BackendError{Provider: "openai", Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if c.stats != nil {
		c.stats.Record(time.Since(start))
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Error("llm.generate.http_error",
			"req_id", rid, "status", resp.StatusCode,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", &BackendError{Provider: "openai", StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var apiResp openAIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	if apiResp.Error != nil {
		return "", &BackendError{Provider: "openai", Message: apiResp.Error.Message}
	}
	if len(apiResp.Choices) == 0 {
		return "", &BackendError{Provider: "openai", Message: "no choices in response"}
	}

	c.log.Info("llm.generate.ok",
		"req_id", rid,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return apiResp.Choices[0].Message.Content, nil
}
