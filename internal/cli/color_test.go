package cli

import (
	"testing"

	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/stretchr/testify/assert"
)

func TestColorHelpers(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(string) string
		input string
	}{
		{"Primary", Primary, "hello"},
		{"Success", Success, "goal reached"},
		{"Error", Error, "something failed"},
		{"Warning", Warning, "be careful"},
		{"Info", Info, "note this"},
		{"Silent", Silent, "quiet text"},
		{"Text", Text, "bold text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(tt.input)
			assert.NotEmpty(t, result)
			assert.Contains(t, result, tt.input)
		})
	}
}

func TestDrinkColorsCoverEveryDrink(t *testing.T) {
	for _, d := range entry.AllDrinkTypes() {
		_, ok := drinkColors[d]
		assert.True(t, ok, d)
		assert.Contains(t, Drink(d), d.String())
	}
	assert.Equal(t, "Soda", Drink("Soda"))
}
