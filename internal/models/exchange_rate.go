package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the exchange_rates table row.
type ExchangeRate struct {
	ExchangeRateID string
	CurrencyCode   string
	Rate           decimal.Decimal
	Source         string
	DateEffective  time.Time
	AuditFields
}

// Currency is the currencies table row.
type Currency struct {
	CurrencyCode string
	Symbol       string
	Name         string
	Precision    int
	AuditFields
}
