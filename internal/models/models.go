package models

import (
	"mime"
	"strings"
)

// MediaKind is the extraction strategy selected from a declared media type.
type MediaKind int

const (
	MediaUnsupported MediaKind = iota
	MediaPDF
	MediaImage
	MediaPlainText
)

func (k MediaKind) String() string {
	switch k {
	case MediaPDF:
		return "pdf"
	case MediaImage:
		return "image"
	case MediaPlainText:
		return "plainText"
	default:
		return "unsupported"
	}
}

// Document is an uploaded file staged on disk for the duration of one extraction.
// The caller owns Path and removes it once extraction finishes.
type Document struct {
	Path      string `json:"-"`
	FileName  string `json:"filename"`
	MediaType string `json:"media_type"`
}

// Kind classifies the declared media type. Parameters such as charset are ignored;
// the file contents are never inspected.
func (d Document) Kind() MediaKind {
	return ClassifyMediaType(d.MediaType)
}

// ClassifyMediaType maps a declared media type to the extraction strategy.
func ClassifyMediaType(mediaType string) MediaKind {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if parsed, _, err := mime.ParseMediaType(mt); err == nil {
		mt = parsed
	}

	switch {
	case mt == "application/pdf":
		return MediaPDF
	case strings.HasPrefix(mt, "image/"):
		return MediaImage
	case mt == "text/plain":
		return MediaPlainText
	default:
		return MediaUnsupported
	}
}

// ExtractionOutcome is what the upload endpoint returns. Text is always set; on failure
// it holds a human-readable diagnostic instead of document content.
type ExtractionOutcome struct {
	Message       string `json:"message"`
	FileName      string `json:"filename"`
	ExtractedText string `json:"extractedText"`
}
