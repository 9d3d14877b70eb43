package models

import (
	"ems/src/types"
)

type User struct {
	ID       uint           `gorm:"primarykey" json:"id"`
	Username string         `json:"username,omitempty"`
	Email    string         `json:"email,omitempty"`
	Password string         `json:"-"`
	Role     types.UserRole `gorm:"default:'attendee'" json:"role,omitempty"`

	Events    []Event    `gorm:"foreignKey:OrganizerID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
	Tickets   []Ticket   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"tickets,omitempty"`
	Feedbacks []Feedback `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"feedbacks,omitempty"`

	types.Timestamps
}

func (u *User) IsOrganizer() bool {
	return u.Role == types.ROLE_ORGANIZER
}
