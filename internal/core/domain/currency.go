package domain

// ReportingCurrency is the currency every commission and profit figure is
// normalized to before percentages are applied.
const ReportingCurrency = "THB"

// Currency represents a supported transactional currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Precision    int    `json:"precision"`    // display decimal places
	AuditFields
}
