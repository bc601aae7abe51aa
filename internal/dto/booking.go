package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/core/finance"
)

// CreateBookingRequest defines the structure for creating a new booking.
type CreateBookingRequest struct {
	Reference   string             `json:"reference" binding:"required,notblank"`
	CharterType domain.CharterType `json:"charterType" binding:"required,oneof=bareboat crewed cabin"`
	SourceType  domain.SourceType  `json:"bookingSourceType" binding:"required,oneof=direct agency"`
	YachtName   string             `json:"yachtName"`
	GuestName   string             `json:"guestName"`
	StartDate   time.Time          `json:"startDate" binding:"required"`
	EndDate     time.Time          `json:"endDate" binding:"required"`

	Currency     string           `json:"currency" binding:"required,len=3,uppercase"`
	CharterFee   decimal.Decimal  `json:"charterFee"`
	ExtraCharges decimal.Decimal  `json:"extraCharges"`
	FxRate       *decimal.Decimal `json:"fxRate,omitempty"`

	ExtraItems []ExtraItemRequest `json:"extraItems"`
}

// UpdateBookingRequest updates the non-finance booking fields. Nil leaves a
// field unchanged.
type UpdateBookingRequest struct {
	Reference *string    `json:"reference,omitempty"`
	YachtName *string    `json:"yachtName,omitempty"`
	GuestName *string    `json:"guestName,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ExtraItemRequest is one extra line item as entered in the form.
type ExtraItemRequest struct {
	Name         string           `json:"name" binding:"required"`
	Type         domain.ExtraType `json:"type" binding:"required,oneof=internal external"`
	SellingPrice decimal.Decimal  `json:"sellingPrice"`
	Cost         decimal.Decimal  `json:"cost"`
	Currency     string           `json:"currency,omitempty"`
	FxRate       *decimal.Decimal `json:"fxRate,omitempty"`
	// Commissionable defaults to true when omitted.
	Commissionable *bool  `json:"commissionable,omitempty"`
	ProjectID      string `json:"projectID,omitempty"`
}

// FinanceEditRequest carries one finance edit event from the form. Absent
// fields are untouched; the service folds every present field into a single
// synchronous recompute.
type FinanceEditRequest struct {
	Currency     *string          `json:"currency,omitempty" binding:"omitempty,len=3,uppercase"`
	CharterFee   *decimal.Decimal `json:"charterFee,omitempty"`
	AdminFee     *decimal.Decimal `json:"adminFee,omitempty"`
	ExtraCharges *decimal.Decimal `json:"extraCharges,omitempty"`

	FxRate       *decimal.Decimal   `json:"fxRate,omitempty"`
	FxRateSource *domain.RateSource `json:"fxRateSource,omitempty" binding:"omitempty,oneof=api manual"`
	ClearFxRate  bool               `json:"clearFxRate,omitempty"`

	SourceType *domain.SourceType  `json:"bookingSourceType,omitempty" binding:"omitempty,oneof=direct agency"`
	ExtraItems *[]ExtraItemRequest `json:"extraItems,omitempty"`

	CommissionRate               *decimal.Decimal `json:"commissionRate,omitempty"`
	TotalCommissionOverride      *decimal.Decimal `json:"totalCommissionOverride,omitempty"`
	ClearTotalCommissionOverride bool             `json:"clearTotalCommissionOverride,omitempty"`
	CommissionDeduction          *decimal.Decimal `json:"commissionDeduction,omitempty"`
	CommissionReceivedOverride   *decimal.Decimal `json:"commissionReceivedOverride,omitempty"`

	AgencyCommissionRate   *decimal.Decimal `json:"agencyCommissionRate,omitempty"`
	AgencyCommissionAmount *decimal.Decimal `json:"agencyCommissionAmount,omitempty"`
}

// ToFinanceEdit converts the request into the engine-level edit.
func (r FinanceEditRequest) ToFinanceEdit() finance.Edit {
	edit := finance.Edit{
		Currency:                     r.Currency,
		CharterFee:                   r.CharterFee,
		AdminFee:                     r.AdminFee,
		ExtraCharges:                 r.ExtraCharges,
		FxRate:                       r.FxRate,
		FxRateSource:                 r.FxRateSource,
		ClearFxRate:                  r.ClearFxRate,
		SourceType:                   r.SourceType,
		CommissionRate:               r.CommissionRate,
		TotalCommissionOverride:      r.TotalCommissionOverride,
		ClearTotalCommissionOverride: r.ClearTotalCommissionOverride,
		CommissionDeduction:          r.CommissionDeduction,
		CommissionReceivedOverride:   r.CommissionReceivedOverride,
		AgencyCommissionRate:         r.AgencyCommissionRate,
		AgencyCommissionAmount:       r.AgencyCommissionAmount,
	}
	if r.ExtraItems != nil {
		items := ToDomainExtraItems(*r.ExtraItems)
		edit.ExtraItems = &items
	}
	return edit
}

// ToDomainExtraItems converts extra item requests, defaulting Commissionable
// to true when omitted.
func ToDomainExtraItems(reqs []ExtraItemRequest) []domain.ExtraItem {
	items := make([]domain.ExtraItem, len(reqs))
	for i, r := range reqs {
		commissionable := true
		if r.Commissionable != nil {
			commissionable = *r.Commissionable
		}
		items[i] = domain.ExtraItem{
			Name:           r.Name,
			Type:           r.Type,
			SellingPrice:   r.SellingPrice,
			Cost:           r.Cost,
			Currency:       r.Currency,
			FxRate:         r.FxRate,
			Commissionable: commissionable,
			ProjectID:      r.ProjectID,
		}
	}
	return items
}

// FinanceResponse is the derived finance block as returned to the form.
type FinanceResponse struct {
	Currency     string          `json:"currency"`
	CharterFee   decimal.Decimal `json:"charterFee"`
	AdminFee     decimal.Decimal `json:"adminFee"`
	ExtraCharges decimal.Decimal `json:"extraCharges"`

	FxRate       *decimal.Decimal  `json:"fxRate,omitempty"`
	FxRateSource domain.RateSource `json:"fxRateSource,omitempty"`

	TotalPrice    decimal.Decimal  `json:"totalPrice"`
	ThbTotalPrice *decimal.Decimal `json:"thbTotalPrice,omitempty"`

	CommissionRate               *decimal.Decimal `json:"commissionRate,omitempty"`
	TotalCommission              decimal.Decimal  `json:"totalCommission"`
	TotalCommissionOverridden    bool             `json:"totalCommissionOverridden"`
	CommissionDeduction          decimal.Decimal  `json:"commissionDeduction"`
	CommissionReceived           decimal.Decimal  `json:"commissionReceived"`
	CommissionReceivedOverridden bool             `json:"commissionReceivedOverridden"`

	SourceType             domain.SourceType `json:"bookingSourceType"`
	AgencyCommissionRate   *decimal.Decimal  `json:"agencyCommissionRate,omitempty"`
	AgencyCommissionAmount decimal.Decimal   `json:"agencyCommissionAmount"`
	AgencyCommissionTHB    *decimal.Decimal  `json:"agencyCommissionThb,omitempty"`

	ExtraItems []domain.ExtraItem `json:"extraItems"`

	PaymentStatus domain.PaymentStatus `json:"paymentStatus"`
}

// ToFinanceResponse flattens the domain finance block for API responses.
func ToFinanceResponse(f domain.Finance) FinanceResponse {
	return FinanceResponse{
		Currency:                     f.Currency,
		CharterFee:                   f.CharterFee,
		AdminFee:                     f.AdminFee,
		ExtraCharges:                 f.ExtraCharges,
		FxRate:                       f.FxRate,
		FxRateSource:                 f.FxRateSource,
		TotalPrice:                   f.TotalPrice,
		ThbTotalPrice:                f.ThbTotalPrice,
		CommissionRate:               f.CommissionRate,
		TotalCommission:              f.TotalCommission.Value,
		TotalCommissionOverridden:    f.TotalCommission.Overridden,
		CommissionDeduction:          f.CommissionDeduction,
		CommissionReceived:           f.CommissionReceived.Value,
		CommissionReceivedOverridden: f.CommissionReceived.Overridden,
		SourceType:                   f.SourceType,
		AgencyCommissionRate:         f.AgencyCommissionRate,
		AgencyCommissionAmount:       f.AgencyCommissionAmount.Value,
		AgencyCommissionTHB:          f.AgencyCommissionTHB,
		ExtraItems:                   f.ExtraItems,
		PaymentStatus:                f.PaymentStatus,
	}
}

// BookingResponse defines the structure for API responses containing booking details.
type BookingResponse struct {
	BookingID   string             `json:"bookingID"`
	Reference   string             `json:"reference"`
	CharterType domain.CharterType `json:"charterType"`
	YachtName   string             `json:"yachtName"`
	GuestName   string             `json:"guestName"`
	StartDate   time.Time          `json:"startDate"`
	EndDate     time.Time          `json:"endDate"`
	Finance     FinanceResponse    `json:"finance"`
	CreatedAt   time.Time          `json:"createdAt"`
	LastUpdated time.Time          `json:"lastUpdatedAt"`
}

// ToBookingResponse converts a domain.Booking to BookingResponse DTO
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:   b.BookingID,
		Reference:   b.Reference,
		CharterType: b.CharterType,
		YachtName:   b.YachtName,
		GuestName:   b.GuestName,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Finance:     ToFinanceResponse(b.Finance),
		CreatedAt:   b.CreatedAt,
		LastUpdated: b.LastUpdatedAt,
	}
}

// ListBookingsResponse is a cursor-paged list of bookings.
type ListBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToListBookingsResponse converts a page of bookings.
func ToListBookingsResponse(bookings []domain.Booking, nextToken *string) ListBookingsResponse {
	resp := ListBookingsResponse{
		Bookings:  make([]BookingResponse, len(bookings)),
		NextToken: nextToken,
	}
	for i := range bookings {
		resp.Bookings[i] = ToBookingResponse(&bookings[i])
	}
	return resp
}

// FinanceSummaryResponse is the commission breakdown used by the finance
// section of the form.
type FinanceSummaryResponse struct {
	BookingID          string           `json:"bookingID"`
	CharterBaseTHB     decimal.Decimal  `json:"charterBaseThb"`
	ExtrasBaseTHB      decimal.Decimal  `json:"extrasBaseThb"`
	CommissionBaseTHB  decimal.Decimal  `json:"commissionBaseThb"`
	TotalCommission    decimal.Decimal  `json:"totalCommission"`
	CommissionReceived decimal.Decimal  `json:"commissionReceived"`
	ThbTotalPrice      *decimal.Decimal `json:"thbTotalPrice,omitempty"`
}
