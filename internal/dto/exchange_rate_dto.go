package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

// CreateExchangeRateRequest defines the structure for entering a manual rate.
type CreateExchangeRateRequest struct {
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3,uppercase"`
	Rate          decimal.Decimal `json:"rate" binding:"required"`
	DateEffective time.Time       `json:"dateEffective" binding:"required"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string            `json:"exchangeRateID"`
	CurrencyCode   string            `json:"currencyCode"`
	Rate           decimal.Decimal   `json:"rate"`
	Source         domain.RateSource `json:"source"`
	DateEffective  time.Time         `json:"dateEffective"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		CurrencyCode:   rate.CurrencyCode,
		Rate:           rate.Rate,
		Source:         rate.Source,
		DateEffective:  rate.DateEffective,
		CreatedAt:      rate.CreatedAt,
	}
}

// CurrencyResponse defines the structure for API responses containing currency details.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Precision:    c.Precision,
	}
}

// ToListCurrencyResponse converts a slice of currencies.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		responses[i] = ToCurrencyResponse(c)
	}
	return responses
}
