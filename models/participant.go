package models

import "time"

// Participant represents a pseudonymous contest entrant.
// Identified by a server-generated secret plus a readable display name;
// records are immutable once created.
type Participant struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UniqueString string    `gorm:"type:varchar(64);unique;not null" json:"uniqueString"`
	RandomName   string    `gorm:"type:varchar(100);not null" json:"randomName"`
	CreatedAt    time.Time `json:"createdAt"`
}
