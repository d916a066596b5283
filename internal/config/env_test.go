package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	req.NoError(err)
	req.Equal("5000", cfg.Port)
	req.Equal("gemini-2.5-flash", cfg.GenModel)
	req.Equal(TransportREST, cfg.LLMTransport)
	req.Equal(PDFBackendNative, cfg.PDFBackend)
	req.Equal("eng", cfg.OCRLanguage)
	req.Equal("./uploads", cfg.UploadDir)
	req.Equal(int64(50<<20), cfg.MaxUploadBytes())
	req.Equal([]string{"*"}, cfg.AllowedOrigins)
	req.Equal(60*time.Second, cfg.LLMTimeout)
	req.Equal(2*time.Minute, cfg.RequestTimeout)
	req.Equal(15*time.Second, cfg.ShutdownTimeout)
	req.Equal("INFO", cfg.LogLevel)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "8081")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("LLM_TRANSPORT", "SDK")
	t.Setenv("PDF_BACKEND", "docconv")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, http://example.com")
	t.Setenv("LLM_TIMEOUT", "5s")

	cfg, err := LoadConfig()
	req.NoError(err)
	req.Equal("8081", cfg.Port)
	req.Equal("secret", cfg.AIAPIKey)
	req.Equal(TransportSDK, cfg.LLMTransport)
	req.Equal(PDFBackendDocconv, cfg.PDFBackend)
	req.Equal([]string{"http://localhost:3000", "http://example.com"}, cfg.AllowedOrigins)
	req.Equal(5*time.Second, cfg.LLMTimeout)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"LLM_TRANSPORT", "grpc"},
		{"PDF_BACKEND", "poppler"},
		{"MAX_UPLOAD_MB", "0"},
		{"LLM_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			require.Error(t, err)
		})
	}
}
