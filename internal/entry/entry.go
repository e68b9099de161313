package entry

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single logged drink. Amount is always stored in milliliters.
type Entry struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	DrinkType DrinkType `json:"drinkType"`
}

// New creates an entry with a fresh ID.
func New(amount float64, drink DrinkType, ts time.Time) Entry {
	return Entry{
		ID:        NewID(),
		Amount:    amount,
		Timestamp: ts,
		DrinkType: drink,
	}
}

// NewID returns a random, never-reused entry identifier.
func NewID() string {
	return uuid.NewString()
}

// Hydration returns the hydration-adjusted volume of the entry in mL.
func (e Entry) Hydration() float64 {
	return e.Amount * e.DrinkType.HydrationFactor()
}
