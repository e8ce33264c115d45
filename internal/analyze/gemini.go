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

// GeminiClient calls the Google Generative Language API.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	stats      *Stats
	log        *slog.Logger
}

func NewGeminiClient(apiKey, model string, timeout time.Duration, stats *Stats, log *slog.Logger) *GeminiClient {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{Timeout: timeout},
		stats:      stats,
		log:        log,
	}
}

func (c *GeminiClient) Model() string { return c.model }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *GeminiClient) Generate(ctx context.Context, system, user string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("llm.generate.start",
		"req_id", rid,
		"provider", "gemini",
		"model", c.model,
		"user_len", len(user),
	)

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: system}}},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: user}}},
		},
	}
	reqBody.GenerationConfig.Temperature = 0.3

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &BackendError{Provider: "gemini", Message: err.Error()}
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
		return "", &BackendError{Provider: "gemini", StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var apiResp geminiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if apiResp.Error != nil {
		return "", &BackendError{Provider: "gemini", Message: apiResp.Error.Message}
	}
	if len(apiResp.Candidates) == 0 {
		return "", &BackendError{Provider: "gemini", Message: "no candidates in response"}
	}

	var texts []string
	for _, p := range apiResp.Candidates[0].Content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}

	c.log.Info("llm.generate.ok",
		"req_id", rid,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return strings.Join(texts, ""), nil
}
