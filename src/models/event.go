package models

import (
	"ems/src/types"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Event struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `json:"name,omitempty"`
	Slug        string    `json:"slug,omitempty"`
	Date        time.Time `json:"date,omitempty"`
	Venue       string    `json:"venue,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       *string   `json:"image,omitempty"`
	OrganizerID uint      `json:"organizer,omitempty"`

	Organizer User       `gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE" json:"-"`
	Tickets   []Ticket   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
	Feedbacks []Feedback `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"feedbacks,omitempty"`

	types.Timestamps
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.Slug == "" {
		e.Slug = slug.Make(e.Name)
	}
	return nil
}

// EventReport is one row of the organizer report. AvgRating is nil when the
// event has no feedback.
type EventReport struct {
	Event       Event    `json:"event"`
	TicketsSold int64    `json:"tickets_sold"`
	AvgRating   *float64 `json:"avg_rating"`
}
