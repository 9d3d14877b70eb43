package types

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

// UserRole is a closed set. A user is either an organizer or an attendee,
// never both and never neither.
type UserRole string

const (
	ROLE_ORGANIZER UserRole = "organizer"
	ROLE_ATTENDEE  UserRole = "attendee"
)

type MealOption string

const (
	MEAL_NONE           MealOption = "none"
	MEAL_VEGETARIAN     MealOption = "vegetarian"
	MEAL_NON_VEGETARIAN MealOption = "non_vegetarian"
	MEAL_VEGAN          MealOption = "vegan"
)

func (m MealOption) Valid() bool {
	switch m {
	case MEAL_NONE, MEAL_VEGETARIAN, MEAL_NON_VEGETARIAN, MEAL_VEGAN:
		return true
	}
	return false
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type RegisterUserRequestBody struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	IsOrganizer bool   `json:"is_organizer"`
}

type LoginUserRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequestBody struct {
	Name        string `form:"name" binding:"required"`
	Date        string `form:"date" binding:"required,futuredate"`
	Venue       string `form:"venue" binding:"required"`
	Description string `form:"description"`
}

type BuyTicketRequestBody struct {
	MealOption string `json:"meal_option" binding:"omitempty,oneof=none vegetarian non_vegetarian vegan"`
}

type SubmitFeedbackRequestBody struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
