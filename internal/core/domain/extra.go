package domain

import "github.com/shopspring/decimal"

// ExtraType tells whether an extra is delivered in-house or bought in from a
// third party. Cost is only meaningful for external items.
type ExtraType string

const (
	ExtraInternal ExtraType = "internal"
	ExtraExternal ExtraType = "external"
)

// ExtraItem is an ancillary paid service (massage, diving, transfer) attached
// to a booking or cabin. Items are independently priced and can be excluded
// from the owner's commission base.
type ExtraItem struct {
	ExtraItemID  string          `json:"extraItemID"`
	Name         string          `json:"name"`
	Type         ExtraType       `json:"type"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	// Cost is the buy-in price for external items; ignored for internal ones.
	Cost decimal.Decimal `json:"cost"`
	// Currency and FxRate override the parent record's when the extra was
	// sold in a different currency.
	Currency      string           `json:"currency,omitempty"`
	FxRate        *decimal.Decimal `json:"fxRate,omitempty"`
	Commissionable bool            `json:"commissionable"`
	ProjectID     string           `json:"projectID,omitempty"`
}

// Profit is the item's contribution before FX normalization: selling price
// minus cost for external items, selling price alone for internal ones.
func (e ExtraItem) Profit() decimal.Decimal {
	if e.Type == ExtraExternal {
		return e.SellingPrice.Sub(e.Cost)
	}
	return e.SellingPrice
}
