package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
)

const (
	TransportREST = "rest"
	TransportSDK  = "sdk"

	PDFBackendNative  = "native"
	PDFBackendDocconv = "docconv"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"5000"`
	AIAPIKey        string        `envconfig:"GEMINI_API_KEY"`
	GenModel        string        `envconfig:"GEN_MODEL" default:"gemini-2.5-flash"`
	GeminiBaseURL   string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	LLMTransport    string        `envconfig:"LLM_TRANSPORT" default:"rest"`
	LLMTimeout      time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
	PDFBackend      string        `envconfig:"PDF_BACKEND" default:"native"`
	OCRLanguage     string        `envconfig:"OCR_LANGUAGE" default:"eng"`
	TessdataPrefix  string        `envconfig:"TESSDATA_PREFIX"`
	UploadDir       string        `envconfig:"UPLOAD_DIR" default:"./uploads"`
	MaxUploadMB     int64         `envconfig:"MAX_UPLOAD_MB" default:"50"`
	AllowedOrigins  []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"2m"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"INFO"`
}

// LoadConfig reads an optional .env file, then the process environment.
// GEMINI_API_KEY is not checked here; a missing key surfaces as an LLM error.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.LLMTransport = strings.ToLower(strings.TrimSpace(c.LLMTransport))
	c.PDFBackend = strings.ToLower(strings.TrimSpace(c.PDFBackend))

	if !lo.Contains([]string{TransportREST, TransportSDK}, c.LLMTransport) {
		return fmt.Errorf("LLM_TRANSPORT must be %q or %q, got %q", TransportREST, TransportSDK, c.LLMTransport)
	}
	if !lo.Contains([]string{PDFBackendNative, PDFBackendDocconv}, c.PDFBackend) {
		return fmt.Errorf("PDF_BACKEND must be %q or %q, got %q", PDFBackendNative, PDFBackendDocconv, c.PDFBackend)
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", c.MaxUploadMB)
	}
	c.AllowedOrigins = lo.Compact(lo.Map(c.AllowedOrigins, func(o string, _ int) string {
		return strings.TrimSpace(o)
	}))
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	return nil
}

// MaxUploadBytes is the request body limit for uploads.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
