package services

import (
	"context"

	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/core/finance"
	"github.com/siamsail/charterdesk/internal/dto"
)

// BookingReaderSvc defines read operations for bookings
type BookingReaderSvc interface {
	// GetBookingByID retrieves a booking with up-to-date derived fields.
	GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookings retrieves a page of bookings with an opaque cursor.
	ListBookings(ctx context.Context, limit int, nextToken *string) ([]domain.Booking, *string, error)

	// GetFinanceSummary derives the commission breakdown for a booking.
	GetFinanceSummary(ctx context.Context, bookingID string) (*dto.FinanceSummaryResponse, error)
}

// BookingWriterSvc defines write operations for bookings
type BookingWriterSvc interface {
	// CreateBooking persists a new booking with defaults and derived fields
	// computed.
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error)

	// ApplyFinanceEdit applies one user edit event to the booking's finance
	// block, recomputing every dependent field in the same transform.
	ApplyFinanceEdit(ctx context.Context, bookingID string, edit finance.Edit, editorUserID string) (*domain.Booking, error)

	// UpdateBookingDetails updates the non-finance fields.
	UpdateBookingDetails(ctx context.Context, bookingID string, req dto.UpdateBookingRequest, editorUserID string) (*domain.Booking, error)

	// DeleteBooking removes a booking and its cabins and payments.
	DeleteBooking(ctx context.Context, bookingID string, deleterUserID string) error
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
