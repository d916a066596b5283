package extraction

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const fixtureSentence = "Acme Corp reported annual revenue of 5 Billion USD and a net profit of 800 Million USD."

// pdfFixtures live in testdata/. Blank pages have no /Contents stream; the scan page
// only paints an image.
var pdfFixtures = []struct {
	file      string
	pages     int
	hasText   bool
	extracted string
}{
	{file: "text.pdf", pages: 1, hasText: true, extracted: fixtureSentence},
	{file: "text_blank.pdf", pages: 2, hasText: true, extracted: fixtureSentence},
	{file: "mixed.pdf", pages: 3, hasText: true, extracted: fixtureSentence},
	{file: "blank.pdf", pages: 1, extracted: MsgScannedPDF},
	{file: "scan.pdf", pages: 1, extracted: MsgScannedPDF},
}

func TestNativePDFReader_Fixtures(t *testing.T) {
	reader := NewNativePDFReader(logs.GetLoggerFromLevel(slog.LevelDebug))

	for _, tt := range pdfFixtures {
		t.Run(tt.file, func(t *testing.T) {
			res, err := reader.ReadPDF(context.Background(), filepath.Join("testdata", tt.file))
			require.NoError(t, err)
			require.Equal(t, tt.pages, res.Pages)
			if tt.hasText {
				require.Contains(t, res.Text, fixtureSentence)
			} else {
				require.Empty(t, strings.TrimSpace(res.Text))
			}
		})
	}
}

func TestDocumentExtractor_NativePDFFixtures(t *testing.T) {
	logger := logs.GetLoggerFromLevel(slog.LevelDebug)
	extractor := NewDocumentExtractor(NewNativePDFReader(logger), nil, logger)

	for _, tt := range pdfFixtures {
		t.Run(tt.file, func(t *testing.T) {
			got := extractor.Extract(context.Background(), filepath.Join("testdata", tt.file), "application/pdf")
			require.Equal(t, tt.extracted, got)
		})
	}
}

func TestDocconvPDFReader_Fixtures(t *testing.T) {
	for _, tool := range []string{"pdftotext", "pdfinfo"} {
		if _, err := exec.LookPath(tool); err != nil {
			t.Skipf("%s not installed", tool)
		}
	}
	logger := logs.GetLoggerFromLevel(slog.LevelDebug)
	reader := NewDocconvPDFReader(logger)
	extractor := NewDocumentExtractor(reader, nil, logger)

	for _, tt := range pdfFixtures {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join("testdata", tt.file)
			res, err := reader.ReadPDF(context.Background(), path)
			require.NoError(t, err)
			require.Equal(t, tt.pages, res.Pages)
			if tt.hasText {
				require.Contains(t, strings.Join(strings.Fields(res.Text), " "), fixtureSentence)
			}
			if !tt.hasText {
				require.Equal(t, MsgScannedPDF, extractor.Extract(context.Background(), path, "application/pdf"))
			}
		})
	}
}

func TestDocconvPDFReader_MissingFile(t *testing.T) {
	_, err := NewDocconvPDFReader(nil).ReadPDF(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
}

func TestNativePDFReader_RejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf at all"), 0o600))

	reader := NewNativePDFReader(logs.GetLoggerFromLevel(slog.LevelDebug))
	_, err := reader.ReadPDF(context.Background(), path)

	require.Error(t, err)
}

func TestNativePDFReader_MissingFile(t *testing.T) {
	reader := NewNativePDFReader(nil)
	_, err := reader.ReadPDF(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))

	require.Error(t, err)
}

func TestNativePDFReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewNativePDFReader(nil).ReadPDF(ctx, "irrelevant.pdf")
	require.ErrorIs(t, err, context.Canceled)
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]string
		want int
	}{
		{"present", map[string]string{"Pages": "12"}, 12},
		{"padded", map[string]string{"Pages": " 3 "}, 3},
		{"missing", map[string]string{"Title": "Annual report"}, 0},
		{"garbled", map[string]string{"Pages": "many"}, 0},
		{"negative", map[string]string{"Pages": "-1"}, 0},
		{"nil meta", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, pageCount(tt.meta))
		})
	}
}
