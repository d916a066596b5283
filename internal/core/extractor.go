//go:generate go run go.uber.org/mock/mockgen -source=extractor.go -destination=../mocks/mock_extractor.go -package=mocks
package core

import (
	"context"
)

// PDFText is the embedded text layer of a PDF plus the page count it reports.
type PDFText struct {
	Text  string
	Pages int
}

// PDFTextReader reads the embedded text layer of a PDF file. It does not OCR.
type PDFTextReader interface {
	ReadPDF(ctx context.Context, path string) (PDFText, error)
}

// ImageRecognizer runs optical character recognition on an image file.
type ImageRecognizer interface {
	Recognize(ctx context.Context, path string) (string, error)
}

// TextExtractor turns a document into plain text. It never fails: problems are
// reported as a diagnostic string in place of the text.
type TextExtractor interface {
	Extract(ctx context.Context, path, mediaType string) string
}
