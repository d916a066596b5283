package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
)

func TestClassifySDKError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		rateLimited bool
	}{
		{"googleapi 429", &googleapi.Error{Code: 429, Message: "quota"}, http.StatusTooManyRequests, true},
		{"googleapi 500", &googleapi.Error{Code: 500}, http.StatusInternalServerError, false},
		{"grpc resource exhausted", status.Error(codes.ResourceExhausted, "quota"), http.StatusTooManyRequests, true},
		{"wrapped grpc", fmt.Errorf("call: %w", status.Error(codes.ResourceExhausted, "quota")), http.StatusTooManyRequests, true},
		{"grpc permission denied", status.Error(codes.PermissionDenied, "key"), http.StatusForbidden, false},
		{"grpc unavailable", status.Error(codes.Unavailable, "down"), http.StatusServiceUnavailable, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifySDKError(tt.err)

			var se *core.StatusError
			require.ErrorAs(t, err, &se)
			require.Equal(t, tt.wantStatus, se.StatusCode)
			require.Equal(t, tt.rateLimited, core.IsRateLimited(err))
		})
	}
}

func TestClassifySDKError_PlainErrorIsNotStatus(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := classifySDKError(cause)

	var se *core.StatusError
	require.False(t, errors.As(err, &se))
	require.ErrorIs(t, err, cause)
}

func TestToGenaiSchema(t *testing.T) {
	s := toGenaiSchema(core.ResponseSchema{Properties: []core.SchemaProperty{
		{Name: "Company Name", Type: "STRING"},
		{Name: "Employees", Type: "INTEGER"},
	}})

	require.Equal(t, genai.TypeObject, s.Type)
	require.Equal(t, []string{"Company Name", "Employees"}, s.Required)
	require.Equal(t, genai.TypeString, s.Properties["Company Name"].Type)
	require.Equal(t, genai.TypeInteger, s.Properties["Employees"].Type)
}

func TestNewGeminiLLM_KeyOnlyFromArguments(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-environment")

	client, err := NewGeminiLLM(context.Background(), "", "", nil)
	require.Nil(t, client)
	require.ErrorIs(t, err, ErrMissingAPIKey)
}
