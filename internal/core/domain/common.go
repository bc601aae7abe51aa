package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// RecordLevel distinguishes the two places a Finance block lives: a booking
// or a single cabin allocation inside a cabin-charter booking. The total
// price formula differs between the two levels.
type RecordLevel string

const (
	LevelBooking RecordLevel = "booking"
	LevelCabin   RecordLevel = "cabin"
)
