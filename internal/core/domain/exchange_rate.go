package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the THB conversion rate for a currency on a given date.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	CurrencyCode   string          `json:"currencyCode"` // FK -> Currency.currencyCode
	Rate           decimal.Decimal `json:"rate"`         // THB per 1 unit of CurrencyCode
	Source         RateSource      `json:"source"`
	DateEffective  time.Time       `json:"dateEffective"`
	AuditFields
}
