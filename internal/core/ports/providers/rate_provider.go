package providers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// FetchedRate is the numeric result of an external rate lookup. Only Rate
// feeds the engines; Source is provenance.
type FetchedRate struct {
	Rate   decimal.Decimal
	Source string
}

// RateProvider fetches THB exchange rates from an external service. The
// calculation core never fetches rates itself; a failed fetch surfaces as a
// retryable error and leaves all pure computations unaffected.
type RateProvider interface {
	FetchRate(ctx context.Context, currencyCode string, date time.Time) (*FetchedRate, error)
}
