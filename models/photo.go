package models

import (
	"time"

	"gorm.io/datatypes"
)

// Photo represents an uploaded contest entry.
// The owner is matched by the participant's unique string, not a foreign
// key. Likes must always equal len(LikedBy); both are only mutated under
// a row lock in PhotoService.
type Photo struct {
	ID                       uint                        `gorm:"primaryKey" json:"id"`
	ParticipantUniqueString  string                      `gorm:"type:varchar(64);index;not null" json:"participantUniqueString"`
	Path                     string                      `gorm:"type:varchar(512);not null" json:"path"`
	StorageKey               string                      `gorm:"type:varchar(512);not null" json:"-"` // provider-side key used for deletion
	Caption                  string                      `gorm:"type:varchar(255)" json:"caption"`
	UploadDate               time.Time                   `gorm:"index;autoCreateTime" json:"uploadDate"`
	Likes                    int                         `gorm:"not null;default:0;index" json:"likes"`
	LikedBy                  datatypes.JSONSlice[string] `json:"likedBy"`
	IsWinner                 bool                        `gorm:"not null;default:false;index" json:"isWinner"`
	HasClaimed               bool                        `gorm:"not null;default:false" json:"hasClaimed"`
}
