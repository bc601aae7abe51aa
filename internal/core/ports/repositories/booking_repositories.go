package repositories

import (
	"context"
	"time"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

// BookingReader defines read operations for booking data
type BookingReader interface {
	// FindBookingByID retrieves a booking with its extra items.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookings retrieves bookings ordered by start date descending,
	// using an opaque cursor token for pagination.
	ListBookings(ctx context.Context, limit int, nextToken *string) ([]domain.Booking, *string, error)
}

// BookingWriter defines write operations for booking data
type BookingWriter interface {
	// SaveBooking persists a new booking and its extra items.
	SaveBooking(ctx context.Context, booking domain.Booking) error

	// UpdateBooking replaces the booking's mutable fields and extra items.
	UpdateBooking(ctx context.Context, booking domain.Booking) error

	// DeleteBooking removes a booking and its dependent rows.
	DeleteBooking(ctx context.Context, bookingID string, deleterUserID string, now time.Time) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
