package domain

import "time"

// Booking is a charter booking. For cabin charters the booking acts as the
// parent of one or more cabin allocations, each carrying its own finance
// block.
type Booking struct {
	BookingID   string      `json:"bookingID"`
	Reference   string      `json:"reference"`
	CharterType CharterType `json:"charterType"`
	YachtName   string      `json:"yachtName"`
	GuestName   string      `json:"guestName"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`

	Finance

	AuditFields
}

// CabinAllocation is a per-cabin sub-record of a cabin-charter booking,
// carrying its own guest and finance fields independent of sibling cabins.
type CabinAllocation struct {
	CabinID   string `json:"cabinID"`
	BookingID string `json:"bookingID"`
	CabinName string `json:"cabinName"`
	GuestName string `json:"guestName"`

	Finance

	AuditFields
}
