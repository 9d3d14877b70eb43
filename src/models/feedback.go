package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

type Feedback struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Rating  int    `json:"rating,omitempty"`
	Comment string `json:"comment,omitempty"`
	EventID uint   `json:"event_id,omitempty"`
	UserID  uint   `json:"user_id,omitempty"`

	Event Event `gorm:"foreignKey:EventID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at,omitempty"`
}

// BeforeCreate enforces the rating bounds at the model level. The request
// binding checks the same range; both must agree.
func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.Rating < 1 || f.Rating > 5 {
		return ErrRatingOutOfRange
	}
	return nil
}
