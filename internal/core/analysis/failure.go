package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText rejects an analysis request before any network call.
	ErrEmptyText = errors.New("no article text provided for analysis")

	// ErrExhausted means every attempt was rate limited.
	ErrExhausted = errors.New("LLM analysis failed after multiple retries due to rate limiting")
)

// FailureKind separates a retryable-later outcome from one that will never succeed
// unmodified.
type FailureKind int

const (
	FailureFatal FailureKind = iota + 1
	FailureExhausted
)

func (k FailureKind) String() string {
	switch k {
	case FailureFatal:
		return "fatal"
	case FailureExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Failure is the terminal error of an analysis. No partial report accompanies it.
type Failure struct {
	Kind     FailureKind
	Attempts int
	Err      error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("analysis %s after %d attempt(s): %v", f.Kind, f.Attempts, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }
