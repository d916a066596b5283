package llm

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

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.5-flash"

	maxResponseBytes = 8 << 20
)

// RESTConfig configures the plain HTTP Gemini transport.
type RESTConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// GeminiREST calls models/{model}:generateContent with one POST per call.
type GeminiREST struct {
	cfg    RESTConfig
	http   *http.Client
	logger *slog.Logger
}

var _ core.StructuredLLM = (*GeminiREST)(nil)

func NewGeminiREST(cfg RESTConfig, logger *slog.Logger) *GeminiREST {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiREST{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiSchema struct {
	Type             string                  `json:"type"`
	Properties       map[string]geminiSchema `json:"properties,omitempty"`
	Required         []string                `json:"required,omitempty"`
	PropertyOrdering []string                `json:"propertyOrdering,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMimeType string        `json:"responseMimeType,omitempty"`
	ResponseSchema   *geminiSchema `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content      *geminiContent `json:"content"`
	FinishReason string         `json:"finishReason,omitempty"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// toGeminiSchema renders the schema in the OpenAPI subset Gemini accepts.
func toGeminiSchema(s core.ResponseSchema) *geminiSchema {
	props := make(map[string]geminiSchema, len(s.Properties))
	for _, p := range s.Properties {
		props[p.Name] = geminiSchema{Type: p.Type}
	}
	names := s.PropertyNames()
	return &geminiSchema{
		Type:             "OBJECT",
		Properties:       props,
		Required:         names,
		PropertyOrdering: names,
	}
}

func (g *GeminiREST) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", strings.TrimRight(g.cfg.BaseURL, "/"), g.cfg.Model)
}

// GenerateStructured posts the prompt with the response schema and returns the JSON
// text of the first candidate.
func (g *GeminiREST) GenerateStructured(ctx context.Context, prompt string, schema core.ResponseSchema) (string, error) {
	reqID := uuid.NewString()
	start := time.Now()

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   toGeminiSchema(schema),
		},
	}
	bs, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(bs))
	if err != nil {
		return "", fmt.Errorf("build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.cfg.APIKey)

	g.logger.Info("llm.http.request",
		"req_id", reqID,
		"model", g.cfg.Model,
		"content_length", len(bs),
	)

	resp, err := g.http.Do(req)
	if err != nil {
		g.logger.Error("llm.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", fmt.Errorf("gemini http: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			g.logger.Warn("llm.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	g.logger.Info("llm.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return "", &core.StatusError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       truncate(string(raw), 512),
		}
	}

	var gr geminiResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("%w: decode: %v", core.ErrMalformedResponse, err)
	}
	text, ok := firstCandidateText(gr)
	if !ok {
		g.logger.Error("llm.http.unexpected_structure", "req_id", reqID, "raw", truncate(string(raw), 2048))
		return "", core.ErrMalformedResponse
	}
	return text, nil
}

func firstCandidateText(gr geminiResponse) (string, bool) {
	if len(gr.Candidates) == 0 || gr.Candidates[0].Content == nil {
		return "", false
	}
	parts := gr.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", false
	}

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Text)
	}
	return b.String(), true
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
