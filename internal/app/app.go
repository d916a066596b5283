package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/api/handlers"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/config"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core/analysis"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core/extraction"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core/llm"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core/storage"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/services"
)

type App struct {
	Extractor core.TextExtractor
	Analyzer  core.ReportAnalyzer
	Server    *Server

	closers []io.Closer
}

func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{}

	store, err := storage.NewLocalStore(cfg.UploadDir, logger)
	if err != nil {
		return nil, err
	}

	var pdfReader core.PDFTextReader
	switch cfg.PDFBackend {
	case config.PDFBackendDocconv:
		pdfReader = extraction.NewDocconvPDFReader(logger)
	default:
		pdfReader = extraction.NewNativePDFReader(logger)
	}
	ocr := extraction.NewTesseractOCR(cfg.OCRLanguage, cfg.TessdataPrefix, logger)
	a.Extractor = extraction.NewDocumentExtractor(pdfReader, ocr, logger)

	structured, err := a.newStructuredLLM(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	analyzer, err := analysis.NewAnalyzer(structured, logger)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Analyzer = analyzer

	documents := services.NewDocumentService(store, a.Extractor, logger)
	a.Server = NewServer(cfg,
		handlers.NewUploadHandler(documents, cfg.MaxUploadBytes(), logger),
		handlers.NewAnalysisHandler(a.Analyzer, logger),
		logger,
	)

	logger.Info("app.ready",
		"pdf_backend", cfg.PDFBackend,
		"llm_transport", cfg.LLMTransport,
		"model", cfg.GenModel,
		"upload_dir", cfg.UploadDir,
	)
	return a, nil
}

func (a *App) newStructuredLLM(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.StructuredLLM, error) {
	if cfg.LLMTransport == config.TransportSDK {
		sdk, err := llm.NewGeminiLLM(ctx, cfg.AIAPIKey, cfg.GenModel, logger)
		if err != nil {
			return nil, fmt.Errorf("couldn't initialize the gemini client: %w", err)
		}
		a.closers = append(a.closers, sdk)
		return sdk, nil
	}
	return llm.NewGeminiREST(llm.RESTConfig{
		APIKey:  cfg.AIAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GenModel,
		Timeout: cfg.LLMTimeout,
	}, logger), nil
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	a.closers = nil
	return errors.Join(errs...)
}
