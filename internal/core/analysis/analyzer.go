package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/models"
)

const (
	MaxAttempts = 5
	BaseDelay   = 1000 * time.Millisecond
)

var _ core.ReportAnalyzer = (*Analyzer)(nil)

// retryState is owned by a single Analyze call.
type retryState struct {
	attempt int
}

// delay is BaseDelay * 2^attempt: 1s, 2s, 4s, 8s, 16s.
func (s retryState) delay() time.Duration {
	return BaseDelay << s.attempt
}

func (s retryState) canRetry() bool {
	return s.attempt < MaxAttempts
}

// RetryBudget is the longest an Analyze call can take when every attempt uses its
// full perAttempt timeout and is then rate limited.
func RetryBudget(perAttempt time.Duration) time.Duration {
	total := time.Duration(MaxAttempts) * perAttempt
	for s := (retryState{}); s.canRetry(); s.attempt++ {
		total += s.delay()
	}
	return total
}

// Analyzer extracts a FinancialReport from text through a schema-constrained LLM call.
type Analyzer struct {
	llm    core.StructuredLLM
	schema core.ResponseSchema
	check  *jsonschema.Schema
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

func NewAnalyzer(llm core.StructuredLLM, logger *slog.Logger) (*Analyzer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	check, err := compileReportSchema()
	if err != nil {
		return nil, fmt.Errorf("report schema: %w", err)
	}
	return &Analyzer{
		llm:    llm,
		schema: ReportSchema(),
		check:  check,
		logger: logger,
		sleep:  sleepContext,
	}, nil
}

// Analyze asks the LLM for the report. HTTP 429 replies are retried with exponential
// backoff; any other failure ends the call immediately.
func (a *Analyzer) Analyze(ctx context.Context, articleText string) (*models.FinancialReport, error) {
	if articleText == "" {
		return nil, ErrEmptyText
	}

	reqID := uuid.NewString()
	prompt := BuildPrompt(articleText)
	start := time.Now()
	a.logger.Info("llm.analyze.start", "req_id", reqID, "text_len", len(articleText))

	state := retryState{}
	for state.canRetry() {
		payload, err := a.llm.GenerateStructured(ctx, prompt, a.schema)
		if err == nil {
			report, perr := parseReport(a.check, payload)
			if perr != nil {
				a.logger.Error("llm.analyze.invalid_report", "req_id", reqID, "attempt", state.attempt+1, "error", perr)
				return nil, &Failure{Kind: FailureFatal, Attempts: state.attempt + 1, Err: perr}
			}
			a.logger.Info("llm.analyze.ok",
				"req_id", reqID,
				"attempts", state.attempt+1,
				"company", report.CompanyName,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return report, nil
		}

		if !core.IsRateLimited(err) {
			a.logger.Error("llm.analyze.fatal", "req_id", reqID, "attempt", state.attempt+1, "error", err)
			return nil, &Failure{Kind: FailureFatal, Attempts: state.attempt + 1, Err: err}
		}

		d := state.delay()
		a.logger.Warn("llm.analyze.rate_limited",
			"req_id", reqID,
			"attempt", state.attempt+1,
			"retry_in", d.String(),
		)
		if serr := a.sleep(ctx, d); serr != nil {
			return nil, &Failure{Kind: FailureFatal, Attempts: state.attempt + 1, Err: serr}
		}
		state.attempt++
	}

	a.logger.Error("llm.analyze.exhausted",
		"req_id", reqID,
		"attempts", state.attempt,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil, &Failure{Kind: FailureExhausted, Attempts: state.attempt, Err: ErrExhausted}
}

// sleepContext suspends only the calling goroutine and wakes early on cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
