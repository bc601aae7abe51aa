package services

import (
	"context"
	"fmt"

	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
)

// LookupService serves autocomplete suggestions for extras names. Values are
// display hints only and carry no financial meaning.
type LookupService struct {
	lookupRepo portsrepo.LookupRepository
}

// NewLookupService creates a new LookupService.
func NewLookupService(lookupRepo portsrepo.LookupRepository) *LookupService {
	return &LookupService{lookupRepo: lookupRepo}
}

// ExtrasLookups returns the known extra-item names for a category.
func (s *LookupService) ExtrasLookups(ctx context.Context, category string) ([]string, error) {
	names, err := s.lookupRepo.ExtrasLookups(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to load extras lookups in service: %w", err)
	}
	return names, nil
}
