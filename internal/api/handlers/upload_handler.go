package handlers

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/services"
)

const (
	uploadField    = "file"
	multipartInMem = 32 << 20

	msgNoFile         = "No file uploaded."
	msgTooLarge       = "Uploaded file is too large."
	msgProcessFailure = "Error processing document."
)

type UploadHandler struct {
	documents *services.DocumentService
	maxBytes  int64
	logger    *slog.Logger
}

func NewUploadHandler(documents *services.DocumentService, maxBytes int64, logger *slog.Logger) *UploadHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UploadHandler{documents: documents, maxBytes: maxBytes, logger: logger}
}

// UploadDocument accepts a multipart "file" field and returns its extracted text.
func (h *UploadHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(multipartInMem); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgTooLarge, nil)
			return
		}
		writeError(w, http.StatusBadRequest, msgNoFile, nil)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, http.StatusBadRequest, msgNoFile, nil)
		return
	}
	defer file.Close()

	mediaType := header.Header.Get("Content-Type")
	if mediaType == "" {
		mediaType = h.sniff(file)
	}

	out, err := h.documents.Process(r.Context(), header.Filename, mediaType, file)
	if err != nil {
		h.logger.Error("upload.failed", "filename", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, msgProcessFailure, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// sniff detects the media type of a part sent without one and rewinds the file.
func (h *UploadHandler) sniff(file multipart.File) string {
	mt, err := mimetype.DetectReader(file)
	if _, serr := file.Seek(0, io.SeekStart); serr != nil {
		h.logger.Warn("upload.rewind_failed", "error", serr)
	}
	if err != nil {
		return ""
	}
	return mt.String()
}
