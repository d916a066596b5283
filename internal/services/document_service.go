package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/models"
)

const msgProcessed = "File uploaded and processed successfully!"

// DocumentService stages an upload, extracts its text and removes the staged copy.
type DocumentService struct {
	store     core.FileStore
	extractor core.TextExtractor
	logger    *slog.Logger
}

func NewDocumentService(store core.FileStore, extractor core.TextExtractor, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{store: store, extractor: extractor, logger: logger}
}

// Process returns an error only when the upload cannot be staged. Extraction problems
// are reported through the diagnostic text of the outcome.
func (s *DocumentService) Process(ctx context.Context, fileName, mediaType string, r io.Reader) (*models.ExtractionOutcome, error) {
	start := time.Now()

	stored, err := s.store.Save(ctx, fileName, r)
	if err != nil {
		return nil, fmt.Errorf("stage %q: %w", fileName, err)
	}
	defer func() {
		// the request context may already be done; deletion must still happen
		if err := s.store.Remove(context.WithoutCancel(ctx), stored.Path); err != nil {
			s.logger.Warn("document.remove_failed", "path", stored.Path, "error", err)
		}
	}()

	doc := models.Document{Path: stored.Path, FileName: fileName, MediaType: mediaType}
	text := s.extractor.Extract(ctx, doc.Path, doc.MediaType)

	s.logger.Info("document.processed",
		"filename", doc.FileName,
		"media_type", doc.MediaType,
		"kind", doc.Kind().String(),
		"size", stored.Size,
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return &models.ExtractionOutcome{
		Message:       msgProcessed,
		FileName:      fileName,
		ExtractedText: text,
	}, nil
}
