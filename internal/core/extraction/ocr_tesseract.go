package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/otiai10/gosseract/v2"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
)

var _ core.ImageRecognizer = (*TesseractOCR)(nil)

// TesseractOCR runs libtesseract through gosseract. A fresh client is created per call
// because gosseract clients are not safe for concurrent use.
type TesseractOCR struct {
	language    string
	tessdataDir string
	logger      *slog.Logger
}

func NewTesseractOCR(language, tessdataDir string, logger *slog.Logger) *TesseractOCR {
	if language == "" {
		language = "eng"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TesseractOCR{language: language, tessdataDir: tessdataDir, logger: logger}
}

func (t *TesseractOCR) Recognize(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	start := time.Now()

	client := gosseract.NewClient()
	defer client.Close()

	if t.tessdataDir != "" {
		if err := client.SetTessdataPrefix(t.tessdataDir); err != nil {
			return "", fmt.Errorf("tesseract: set tessdata prefix: %w", err)
		}
	}
	if err := client.SetLanguage(t.language); err != nil {
		return "", fmt.Errorf("tesseract: set language: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("tesseract: set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}

	t.logger.Debug("extract.image.ocr",
		"path", path,
		"lang", t.language,
		"chars", len(text),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}
