package models

import "time"

// ClaimPending is the placeholder stored in claimant fields until the
// participant submits their real details.
const ClaimPending = "TBA"

// Winner holds the prize-claim state attached to a winning photo.
// At most one record may exist per photo; a record exists exactly when
// the photo's IsWinner flag is set.
type Winner struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PhotoID    uint      `gorm:"uniqueIndex;not null" json:"photoId"`
	Photo      *Photo    `gorm:"foreignKey:PhotoID" json:"photo,omitempty"`
	Name       string    `gorm:"type:varchar(100);not null;default:TBA" json:"name"`
	Sic        string    `gorm:"type:varchar(50);not null;default:TBA" json:"sic"`
	Year       string    `gorm:"type:varchar(20);not null;default:TBA" json:"year"`
	HasClaimed bool      `gorm:"not null;default:false" json:"hasClaimed"`
	DeclaredAt time.Time `gorm:"index;autoCreateTime" json:"declaredAt"`
	DeclaredBy string    `gorm:"type:varchar(50);not null" json:"declaredBy"` // superadmin username
}
