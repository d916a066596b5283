package models

// NotAvailable is the placeholder the model uses for any value it cannot determine.
const NotAvailable = "N/A"

// FinancialFields is the ordered field contract shared by the prompt, the response
// schema sent to the LLM and the response validator. FinancialReport's json tags
// must stay in the same order.
var FinancialFields = []string{
	"Company Name",
	"Revenue",
	"Profit (Net Income)",
	"Market Cap",
	"Sector/Industry",
	"CEO",
	"Headquarters",
	"Total Assets",
	"Total Liabilities",
	"Net Income Margin",
	"Earnings Per Share (EPS)",
	"P/E Ratio",
	"Dividend Yield",
	"Founding Date",
	"Number of Employees",
}

// FinancialReport is the structured result of an analysis. Field order follows
// FinancialFields so the encoded JSON keeps presentation order.
type FinancialReport struct {
	CompanyName       string `json:"Company Name"`
	Revenue           string `json:"Revenue"`
	Profit            string `json:"Profit (Net Income)"`
	MarketCap         string `json:"Market Cap"`
	Sector            string `json:"Sector/Industry"`
	CEO               string `json:"CEO"`
	Headquarters      string `json:"Headquarters"`
	TotalAssets       string `json:"Total Assets"`
	TotalLiabilities  string `json:"Total Liabilities"`
	NetIncomeMargin   string `json:"Net Income Margin"`
	EPS               string `json:"Earnings Per Share (EPS)"`
	PERatio           string `json:"P/E Ratio"`
	DividendYield     string `json:"Dividend Yield"`
	FoundingDate      string `json:"Founding Date"`
	NumberOfEmployees string `json:"Number of Employees"`
}

// Values returns the report as field/value pairs in FinancialFields order.
func (r FinancialReport) Values() [][2]string {
	vals := []string{
		r.CompanyName, r.Revenue, r.Profit, r.MarketCap, r.Sector,
		r.CEO, r.Headquarters, r.TotalAssets, r.TotalLiabilities, r.NetIncomeMargin,
		r.EPS, r.PERatio, r.DividendYield, r.FoundingDate, r.NumberOfEmployees,
	}
	out := make([][2]string, len(FinancialFields))
	for i, name := range FinancialFields {
		out[i] = [2]string{name, vals[i]}
	}
	return out
}
