package models

import (
	"ems/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackRatingBounds(t *testing.T) {
	for _, rating := range []int{0, -1, 6, 100} {
		f := Feedback{Rating: rating}
		assert.ErrorIs(t, f.BeforeCreate(nil), ErrRatingOutOfRange)
	}
	for rating := 1; rating <= 5; rating++ {
		f := Feedback{Rating: rating}
		assert.Nil(t, f.BeforeCreate(nil))
	}
}

func TestTicketDefaults(t *testing.T) {
	ticket := Ticket{EventID: 1, UserID: 2}
	assert.Nil(t, ticket.BeforeCreate(nil))
	assert.NotEmpty(t, ticket.Reference)
	assert.False(t, ticket.PurchaseDate.IsZero())
	assert.Equal(t, types.MEAL_NONE, ticket.MealOption)

	ticket = Ticket{MealOption: types.MEAL_VEGAN}
	assert.Nil(t, ticket.BeforeCreate(nil))
	assert.Equal(t, types.MEAL_VEGAN, ticket.MealOption)

	ticket = Ticket{MealOption: types.MealOption("carnivore")}
	assert.NotNil(t, ticket.BeforeCreate(nil))
}

func TestEventSlug(t *testing.T) {
	event := Event{Name: "Conf 2030, Berlin!"}
	assert.Nil(t, event.BeforeCreate(nil))
	assert.Equal(t, "conf-2030-berlin", event.Slug)

	event = Event{Name: "Other", Slug: "custom"}
	assert.Nil(t, event.BeforeCreate(nil))
	assert.Equal(t, "custom", event.Slug)
}
