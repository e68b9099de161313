package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DrinkType is the kind of drink an entry records. The string value is the
// persisted label.
type DrinkType string

const (
	Water     DrinkType = "Water"
	Tea       DrinkType = "Tea"
	Coffee    DrinkType = "Coffee"
	Juice     DrinkType = "Juice"
	Sparkling DrinkType = "Sparkling"
	Milk      DrinkType = "Milk"
)

var ErrUnknownDrinkType = errors.New("unknown drink type")

var drinkTypes = []DrinkType{Water, Tea, Coffee, Juice, Sparkling, Milk}

// hydrationFactors holds the effective hydration of each drink relative to water.
var hydrationFactors = map[DrinkType]float64{
	Water:     1.0,
	Tea:       0.9,
	Coffee:    0.8,
	Juice:     0.85,
	Sparkling: 1.0,
	Milk:      0.9,
}

// AllDrinkTypes returns every drink type in declaration order.
func AllDrinkTypes() []DrinkType {
	out := make([]DrinkType, len(drinkTypes))
	copy(out, drinkTypes)
	return out
}

// HydrationFactor returns the drink's hydration contribution relative to pure
// water, or 0 for an unknown drink type.
func (d DrinkType) HydrationFactor() float64 {
	return hydrationFactors[d]
}

// Valid reports whether d is one of the known drink types.
func (d DrinkType) Valid() bool {
	_, ok := hydrationFactors[d]
	return ok
}

func (d DrinkType) String() string { return string(d) }

// ParseDrinkType resolves a drink label case-insensitively.
func ParseDrinkType(s string) (DrinkType, error) {
	s = strings.TrimSpace(s)
	for _, d := range drinkTypes {
		if strings.EqualFold(string(d), s) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected one of %s)", ErrUnknownDrinkType, s, drinkList())
}

// UnmarshalJSON rejects labels outside the known set so that a corrupted
// snapshot is detected at decode time.
func (d *DrinkType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := DrinkType(s)
	if !parsed.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownDrinkType, s)
	}
	*d = parsed
	return nil
}

func drinkList() string {
	names := make([]string, len(drinkTypes))
	for i, d := range drinkTypes {
		names[i] = strings.ToLower(string(d))
	}
	return strings.Join(names, ", ")
}
