package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
)

var _ core.PDFTextReader = (*NativePDFReader)(nil)

// NativePDFReader reads the text layer with ledongthuc/pdf, a pure Go parser.
type NativePDFReader struct {
	logger *slog.Logger
}

func NewNativePDFReader(logger *slog.Logger) *NativePDFReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &NativePDFReader{logger: logger}
}

// ReadPDF returns the plain text of every page, in page order, and the page count.
// Pages without a content stream contribute nothing. A page whose content cannot be
// decoded is skipped unless no page yields text at all.
func (n *NativePDFReader) ReadPDF(ctx context.Context, path string) (res core.PDFText, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf: parser panic: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return core.PDFText{}, err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return core.PDFText{}, fmt.Errorf("open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			n.logger.Warn("extract.pdf.close_error", "path", path, "error", cerr)
		}
	}()

	pages := r.NumPage()
	var (
		b        strings.Builder
		read     int
		firstErr error
	)
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return core.PDFText{}, err
		}
		p := r.Page(i)
		if p.V.IsNull() || p.V.Key("Contents").IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			n.logger.Warn("extract.pdf.page_error", "path", path, "page", i, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("read page %d: %w", i, err)
			}
			continue
		}
		read++
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}
	if read == 0 && firstErr != nil {
		return core.PDFText{Pages: pages}, fmt.Errorf("read pdf text: %w", firstErr)
	}

	n.logger.Debug("extract.pdf.native", "path", path, "pages", pages, "bytes", b.Len())
	return core.PDFText{Text: b.String(), Pages: pages}, nil
}
