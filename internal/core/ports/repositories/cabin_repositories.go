package repositories

import (
	"context"
	"time"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

// CabinReader defines read operations for cabin allocations
type CabinReader interface {
	// FindCabinByID retrieves a cabin allocation with its extra items.
	FindCabinByID(ctx context.Context, cabinID string) (*domain.CabinAllocation, error)

	// ListCabinsByBooking retrieves all cabin allocations of a booking in
	// creation order.
	ListCabinsByBooking(ctx context.Context, bookingID string) ([]domain.CabinAllocation, error)
}

// CabinWriter defines write operations for cabin allocations
type CabinWriter interface {
	// SaveCabin persists a new cabin allocation.
	SaveCabin(ctx context.Context, cabin domain.CabinAllocation) error

	// UpdateCabin replaces the cabin's mutable fields and extra items.
	UpdateCabin(ctx context.Context, cabin domain.CabinAllocation) error

	// DeleteCabin removes a cabin allocation and its dependent rows.
	DeleteCabin(ctx context.Context, cabinID string, deleterUserID string, now time.Time) error
}

// CabinRepositoryFacade combines all cabin-related repository interfaces
type CabinRepositoryFacade interface {
	CabinReader
	CabinWriter
}
