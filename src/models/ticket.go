package models

import (
	"ems/src/types"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Ticket struct {
	ID           uint             `gorm:"primarykey" json:"id"`
	Reference    string           `gorm:"<-:create" json:"reference,omitempty"`
	MealOption   types.MealOption `gorm:"default:'none'" json:"meal_option,omitempty"`
	PurchaseDate time.Time        `gorm:"<-:create" json:"purchase_date,omitempty"`
	EventID      uint             `json:"event_id,omitempty"`
	UserID       uint             `json:"user_id,omitempty"`

	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`

	types.Timestamps
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.Reference == "" {
		t.Reference = uuid.NewString()
	}
	if t.PurchaseDate.IsZero() {
		t.PurchaseDate = time.Now()
	}
	if t.MealOption == "" {
		t.MealOption = types.MEAL_NONE
	}
	if !t.MealOption.Valid() {
		return errors.New("invalid meal option")
	}
	return nil
}
