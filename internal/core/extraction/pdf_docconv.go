package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"code.sajari.com/docconv"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
)

var _ core.PDFTextReader = (*DocconvPDFReader)(nil)

// DocconvPDFReader implements core.PDFTextReader using sajari/docconv, which shells out
// to poppler's pdftotext and pdfinfo.
type DocconvPDFReader struct {
	logger *slog.Logger
}

func NewDocconvPDFReader(logger *slog.Logger) *DocconvPDFReader {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocconvPDFReader{logger: logger}
}

// ReadPDF converts the file with docconv and takes the page count from pdfinfo's metadata.
func (d *DocconvPDFReader) ReadPDF(ctx context.Context, path string) (core.PDFText, error) {
	if err := ctx.Err(); err != nil {
		return core.PDFText{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return core.PDFText{}, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	body, meta, err := docconv.ConvertPDF(f)
	if err != nil {
		d.logger.Error("extract.pdf.docconv_failed", "path", path, "error", err)
		return core.PDFText{}, fmt.Errorf("docconv: %w", err)
	}

	pages := pageCount(meta)
	d.logger.Debug("extract.pdf.docconv", "path", path, "pages", pages, "bytes", len(body))
	return core.PDFText{Text: body, Pages: pages}, nil
}

// pageCount reads the "Pages" entry pdfinfo reports. Missing or garbled values count as zero.
func pageCount(meta map[string]string) int {
	v, ok := meta["Pages"]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
