package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

// CreateCabinRequest defines the structure for adding a cabin allocation to a
// cabin-charter booking.
type CreateCabinRequest struct {
	CabinName  string            `json:"cabinName" binding:"required,notblank"`
	GuestName  string            `json:"guestName"`
	SourceType domain.SourceType `json:"bookingSourceType" binding:"required,oneof=direct agency"`

	Currency   string           `json:"currency" binding:"required,len=3,uppercase"`
	CharterFee decimal.Decimal  `json:"charterFee"`
	AdminFee   decimal.Decimal  `json:"adminFee"`
	FxRate     *decimal.Decimal `json:"fxRate,omitempty"`

	ExtraItems []ExtraItemRequest `json:"extraItems"`
}

// CabinResponse defines the structure for API responses containing cabin details.
type CabinResponse struct {
	CabinID     string          `json:"cabinID"`
	BookingID   string          `json:"bookingID"`
	CabinName   string          `json:"cabinName"`
	GuestName   string          `json:"guestName"`
	Finance     FinanceResponse `json:"finance"`
	CreatedAt   time.Time       `json:"createdAt"`
	LastUpdated time.Time       `json:"lastUpdatedAt"`
}

// ToCabinResponse converts a domain.CabinAllocation to CabinResponse DTO
func ToCabinResponse(c *domain.CabinAllocation) CabinResponse {
	return CabinResponse{
		CabinID:     c.CabinID,
		BookingID:   c.BookingID,
		CabinName:   c.CabinName,
		GuestName:   c.GuestName,
		Finance:     ToFinanceResponse(c.Finance),
		CreatedAt:   c.CreatedAt,
		LastUpdated: c.LastUpdatedAt,
	}
}

// ToListCabinsResponse converts a slice of cabin allocations.
func ToListCabinsResponse(cabins []domain.CabinAllocation) []CabinResponse {
	responses := make([]CabinResponse, len(cabins))
	for i := range cabins {
		responses[i] = ToCabinResponse(&cabins[i])
	}
	return responses
}
