package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealOptionValid(t *testing.T) {
	for _, m := range []MealOption{MEAL_NONE, MEAL_VEGETARIAN, MEAL_NON_VEGETARIAN, MEAL_VEGAN} {
		assert.True(t, m.Valid())
	}
	for _, m := range []MealOption{"", "carnivore", "NONE"} {
		assert.False(t, m.Valid())
	}
}
