package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core/analysis"
)

const (
	msgNoArticle      = "No article text provided for analysis."
	msgInvalidBody    = "Invalid request body."
	msgAnalyzeFailed  = "Failed to analyze data with LLM."
	msgMalformed      = "LLM did not return expected structured content."
	msgRetryExhausted = "LLM analysis failed after multiple retries due to rate limiting."

	retryAfterSeconds = 60
)

type AnalyzeRequest struct {
	ArticleText string `json:"articleText" validate:"required"`
}

type AnalysisHandler struct {
	analyzer core.ReportAnalyzer
	validate *validator.Validate
	logger   *slog.Logger
}

func NewAnalysisHandler(analyzer core.ReportAnalyzer, logger *slog.Logger) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		analyzer: analyzer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody, nil)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, msgNoArticle, nil)
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), req.ArticleText)
	if err != nil {
		h.writeAnalyzeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *AnalysisHandler) writeAnalyzeError(w http.ResponseWriter, err error) {
	var failure *analysis.Failure
	switch {
	case errors.Is(err, analysis.ErrEmptyText):
		writeError(w, http.StatusBadRequest, msgNoArticle, nil)
	case errors.As(err, &failure) && failure.Kind == analysis.FailureExhausted:
		h.logger.Warn("analyze.exhausted", "attempts", failure.Attempts)
		w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
		writeError(w, http.StatusServiceUnavailable, msgRetryExhausted, nil)
	case errors.Is(err, core.ErrMalformedResponse):
		h.logger.Error("analyze.malformed", "error", err)
		writeError(w, http.StatusInternalServerError, msgMalformed, nil)
	default:
		h.logger.Error("analyze.failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgAnalyzeFailed, err)
	}
}
