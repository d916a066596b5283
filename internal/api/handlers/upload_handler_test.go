package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core/storage"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/mocks"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/models"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/services"
)

func newUploadHandler(t *testing.T, extractor *mocks.MockTextExtractor) (*UploadHandler, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, nil)
	require.NoError(t, err)
	return NewUploadHandler(services.NewDocumentService(store, extractor, nil), 1<<20, nil), dir
}

// multipartBody builds a form with one file part. An empty contentType leaves the
// part without a Content-Type header.
func multipartBody(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func requireEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "staged upload was not removed")
}

func TestUploadDocument_PlainText(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockTextExtractor(ctrl)
	h, dir := newUploadHandler(t, extractor)

	extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), "text/plain").
		DoAndReturn(func(_ context.Context, path, _ string) string {
			b, err := os.ReadFile(path)
			assert.NoError(t, err)
			return string(b)
		})

	body, ct := multipartBody(t, "file", "notes.txt", "text/plain", []byte("Revenue grew 10%"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	h.UploadDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out models.ExtractionOutcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "File uploaded and processed successfully!", out.Message)
	require.Equal(t, "notes.txt", out.FileName)
	require.Equal(t, "Revenue grew 10%", out.ExtractedText)
	requireEmptyDir(t, dir)
}

func TestUploadDocument_DiagnosticStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockTextExtractor(ctrl)
	h, dir := newUploadHandler(t, extractor)

	extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), "application/zip").Return("Unsupported file type.")

	body, ct := multipartBody(t, "file", "a.zip", "application/zip", []byte("PK\x03\x04"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	h.UploadDocument(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"extractedText":"Unsupported file type."`)
	requireEmptyDir(t, dir)
}

func TestUploadDocument_SniffsMissingContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockTextExtractor(ctrl)
	h, _ := newUploadHandler(t, extractor)

	extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, path, mediaType string) string {
			assert.Equal(t, models.MediaPDF, models.ClassifyMediaType(mediaType))
			b, err := os.ReadFile(path)
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(b), "%PDF-"), "file not rewound after sniffing")
			return "ok"
		})

	body, ct := multipartBody(t, "file", "report", "", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	h.UploadDocument(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadDocument_NoFile(t *testing.T) {
	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{"wrong field", func(t *testing.T) *http.Request {
			body, ct := multipartBody(t, "document", "a.txt", "text/plain", []byte("x"))
			r := httptest.NewRequest(http.MethodPost, "/api/upload", body)
			r.Header.Set("Content-Type", ct)
			return r
		}},
		{"not multipart", func(*testing.T) *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader(`{}`))
			r.Header.Set("Content-Type", "application/json")
			return r
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h, _ := newUploadHandler(t, mocks.NewMockTextExtractor(ctrl))
			rec := httptest.NewRecorder()

			h.UploadDocument(rec, tt.req(t))

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.JSONEq(t, `{"message":"No file uploaded."}`, rec.Body.String())
		})
	}
}
