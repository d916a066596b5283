package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
)

// GeminiLLM is the SDK-backed transport. The SDK has no property ordering, so the
// model is only held to the required property set.
type GeminiLLM struct {
	client    *genai.Client
	modelName string
	logger    *slog.Logger
}

var _ core.StructuredLLM = (*GeminiLLM)(nil)

// ErrMissingAPIKey is returned when the SDK transport is built without a key.
var ErrMissingAPIKey = errors.New("gemini api key not set")

func NewGeminiLLM(ctx context.Context, apiKey, modelName string, logger *slog.Logger) (*GeminiLLM, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GeminiLLM{client: cl, modelName: modelName, logger: logger}, nil
}

func (g *GeminiLLM) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

func (g *GeminiLLM) GenerateStructured(ctx context.Context, prompt string, schema core.ResponseSchema) (string, error) {
	m := g.client.GenerativeModel(g.modelName)
	m.ResponseMIMEType = "application/json"
	m.ResponseSchema = toGenaiSchema(schema)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Warn("llm.sdk.generate_error", "model", g.modelName, "error", err)
		return "", classifySDKError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", core.ErrMalformedResponse
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	if b.Len() == 0 {
		return "", core.ErrMalformedResponse
	}
	return b.String(), nil
}

func toGenaiSchema(s core.ResponseSchema) *genai.Schema {
	props := make(map[string]*genai.Schema, len(s.Properties))
	for _, p := range s.Properties {
		props[p.Name] = &genai.Schema{Type: genaiType(p.Type)}
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   s.PropertyNames(),
	}
}

func genaiType(t string) genai.Type {
	switch strings.ToUpper(t) {
	case "NUMBER":
		return genai.TypeNumber
	case "INTEGER":
		return genai.TypeInteger
	case "BOOLEAN":
		return genai.TypeBoolean
	case "ARRAY":
		return genai.TypeArray
	case "OBJECT":
		return genai.TypeObject
	default:
		return genai.TypeString
	}
}

// classifySDKError maps SDK failures onto core.StatusError so the retry policy sees
// the same statuses as with the REST transport.
func classifySDKError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &core.StatusError{StatusCode: gerr.Code, Status: http.StatusText(gerr.Code), Body: gerr.Message}
	}
	if s, ok := status.FromError(err); ok && s.Code() != codes.OK && s.Code() != codes.Unknown {
		code := httpStatusFromGRPC(s.Code())
		return &core.StatusError{StatusCode: code, Status: http.StatusText(code), Body: s.Message()}
	}
	return fmt.Errorf("gemini generate: %w", err)
}

func httpStatusFromGRPC(c codes.Code) int {
	switch c {
	case codes.ResourceExhausted:
		return http.StatusTooManyRequests
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return http.StatusBadRequest
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
