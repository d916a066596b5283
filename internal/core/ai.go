//go:generate go run go.uber.org/mock/mockgen -source=ai.go -destination=../mocks/mock_ai.go -package=mocks
package core

import (
	"context"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/models"
)

// SchemaProperty is one named property of a ResponseSchema.
type SchemaProperty struct {
	Name string
	Type string // STRING, NUMBER, ...
}

// ResponseSchema constrains the shape of a generated JSON object.
// Properties are kept in the order the model is asked to emit them.
type ResponseSchema struct {
	Properties []SchemaProperty
}

// PropertyNames returns the property names in declaration order.
func (s ResponseSchema) PropertyNames() []string {
	names := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		names[i] = p.Name
	}
	return names
}

// StructuredLLM sends one schema-constrained generation request and returns the raw
// JSON text of the first candidate. A non-2xx reply is reported as *StatusError.
type StructuredLLM interface {
	GenerateStructured(ctx context.Context, prompt string, schema ResponseSchema) (string, error)
}

// ReportAnalyzer turns free-form text into a FinancialReport.
type ReportAnalyzer interface {
	Analyze(ctx context.Context, articleText string) (*models.FinancialReport, error)
}
