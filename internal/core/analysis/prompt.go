package analysis

import (
	"strings"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/models"
)

// BuildPrompt embeds the article text in the extraction instructions. Every field of
// models.FinancialFields is listed verbatim so the prompt and the schema agree.
func BuildPrompt(articleText string) string {
	var b strings.Builder
	b.WriteString("Extract the following financial information from the given article text and return it as a JSON object.\n")
	b.WriteString("If a piece of information is not explicitly mentioned or cannot be confidently inferred, use \"")
	b.WriteString(models.NotAvailable)
	b.WriteString("\" for its value.\n")
	b.WriteString("Ensure numerical values for Revenue, Profit, and Market Cap include their units (e.g., \"100 Billion USD\", \"500 Million EUR\").\n\n")
	b.WriteString("Expected fields (case-sensitive):\n")
	for _, f := range models.FinancialFields {
		b.WriteString("\"")
		b.WriteString(f)
		b.WriteString("\"\n")
	}
	b.WriteString("\nArticle Text:\n\"")
	b.WriteString(articleText)
	b.WriteString("\"")
	return b.String()
}
