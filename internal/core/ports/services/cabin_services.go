package services

import (
	"context"

	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/core/finance"
	"github.com/siamsail/charterdesk/internal/dto"
)

// CabinReaderSvc defines read operations for cabin allocations
type CabinReaderSvc interface {
	// GetCabinByID retrieves a single cabin allocation.
	GetCabinByID(ctx context.Context, cabinID string) (*domain.CabinAllocation, error)

	// ListCabins retrieves all cabin allocations of a booking.
	ListCabins(ctx context.Context, bookingID string) ([]domain.CabinAllocation, error)
}

// CabinWriterSvc defines write operations for cabin allocations
type CabinWriterSvc interface {
	// AddCabin creates a cabin allocation inside a cabin-charter booking.
	AddCabin(ctx context.Context, bookingID string, req dto.CreateCabinRequest, creatorUserID string) (*domain.CabinAllocation, error)

	// ApplyFinanceEdit applies one user edit event to the cabin's finance
	// block, including agency commission edits, in a single transform.
	ApplyFinanceEdit(ctx context.Context, cabinID string, edit finance.Edit, editorUserID string) (*domain.CabinAllocation, error)

	// RemoveCabin deletes a cabin allocation.
	RemoveCabin(ctx context.Context, cabinID string, deleterUserID string) error
}

// CabinSvcFacade combines all cabin-related service interfaces
type CabinSvcFacade interface {
	CabinReaderSvc
	CabinWriterSvc
}
