package handlers

import (
	"io"
	"net/http"
)

const healthMessage = "Financial Data Extraction Backend is running!"

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, healthMessage)
}
