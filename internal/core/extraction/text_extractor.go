package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/models"
)

// Diagnostics returned in place of text when extraction does not succeed.
const (
	MsgScannedPDF      = "Could not extract text from PDF. It might be an image-based PDF requiring advanced OCR."
	MsgCorruptPDF      = "Failed to process PDF. It might be corrupted or an unsupported format."
	MsgOCRFailed       = "Failed to process image for OCR."
	MsgPlainTextFailed = "Failed to read plain text file."
	MsgUnsupported     = "Unsupported file type."
)

// scannedPDFThreshold is the trimmed text length below which a paged PDF is treated
// as image-based.
const scannedPDFThreshold = 50

var _ core.TextExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor dispatches on the declared media type.
type DocumentExtractor struct {
	pdf    core.PDFTextReader
	ocr    core.ImageRecognizer
	logger *slog.Logger
}

func NewDocumentExtractor(pdf core.PDFTextReader, ocr core.ImageRecognizer, logger *slog.Logger) *DocumentExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentExtractor{pdf: pdf, ocr: ocr, logger: logger}
}

// extractionError pairs the underlying cause with the diagnostic shown to the user.
type extractionError struct {
	diagnostic string
	err        error
}

func (e *extractionError) Error() string {
	if e.err == nil {
		return e.diagnostic
	}
	return fmt.Sprintf("%s: %v", e.diagnostic, e.err)
}

func (e *extractionError) Unwrap() error { return e.err }

// Extract returns the document text, or a diagnostic string when it cannot be read.
func (e *DocumentExtractor) Extract(ctx context.Context, path, mediaType string) string {
	kind := models.ClassifyMediaType(mediaType)
	text, xerr := e.extract(ctx, path, kind)
	if xerr != nil {
		e.logger.Warn("extract.failed",
			"path", path,
			"media_type", mediaType,
			"kind", kind.String(),
			"error", xerr,
		)
		return xerr.diagnostic
	}

	e.logger.Info("extract.ok",
		"path", path,
		"kind", kind.String(),
		"chars", utf8.RuneCountInString(text),
	)
	return text
}

func (e *DocumentExtractor) extract(ctx context.Context, path string, kind models.MediaKind) (string, *extractionError) {
	switch kind {
	case models.MediaPDF:
		return e.extractPDF(ctx, path)
	case models.MediaImage:
		return e.extractImage(ctx, path)
	case models.MediaPlainText:
		return e.extractPlainText(path)
	default:
		return "", &extractionError{diagnostic: MsgUnsupported}
	}
}

func (e *DocumentExtractor) extractPDF(ctx context.Context, path string) (string, *extractionError) {
	res, err := e.pdf.ReadPDF(ctx, path)
	if err != nil {
		return "", &extractionError{diagnostic: MsgCorruptPDF, err: err}
	}

	trimmed := strings.TrimSpace(res.Text)
	if utf8.RuneCountInString(trimmed) >= scannedPDFThreshold || res.Pages <= 0 {
		return trimmed, nil
	}

	// Little or no text layer on a paged PDF: most likely a scan.
	e.logger.Warn("extract.pdf.scanned",
		"path", path,
		"pages", res.Pages,
		"trimmed_chars", utf8.RuneCountInString(trimmed),
	)
	if trimmed == "" {
		return MsgScannedPDF, nil
	}
	return trimmed, nil
}

func (e *DocumentExtractor) extractImage(ctx context.Context, path string) (string, *extractionError) {
	text, err := e.ocr.Recognize(ctx, path)
	if err != nil {
		return "", &extractionError{diagnostic: MsgOCRFailed, err: err}
	}
	return text, nil
}

func (e *DocumentExtractor) extractPlainText(path string) (string, *extractionError) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", &extractionError{diagnostic: MsgPlainTextFailed, err: err}
	}
	return string(b), nil
}
