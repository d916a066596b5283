package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/core"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/models"
)

const reportSchemaURL = "financial_report.schema.json"

// ReportSchema is the response constraint sent with every request.
func ReportSchema() core.ResponseSchema {
	return core.ResponseSchema{
		Properties: lo.Map(models.FinancialFields, func(name string, _ int) core.SchemaProperty {
			return core.SchemaProperty{Name: name, Type: "STRING"}
		}),
	}
}

// reportJSONSchema is the local JSON Schema (draft 2020-12 subset) used to check a
// reply before it is decoded: all fields present, all strings, nothing else.
func reportJSONSchema() map[string]any {
	props := lo.SliceToMap(models.FinancialFields, func(name string) (string, any) {
		return name, map[string]any{"type": "string"}
	})
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             models.FinancialFields,
	}
}

func compileReportSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(reportJSONSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(reportSchemaURL, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(reportSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// parseReport validates the model's JSON text and decodes it.
func parseReport(schema *jsonschema.Schema, payload string) (*models.FinancialReport, error) {
	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", core.ErrMalformedResponse, err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedResponse, err)
	}

	var report models.FinancialReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		return nil, fmt.Errorf("%w: decode report: %v", core.ErrMalformedResponse, err)
	}
	return &report, nil
}
