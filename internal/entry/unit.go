package entry

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit is the volume unit used for display and for amounts typed by the user.
type Unit string

const (
	Milliliters Unit = "mL"
	Ounces      Unit = "oz"
	Cups        Unit = "cups"
)

const (
	MillilitersPerOunce = 29.5735
	MillilitersPerCup   = 236.588
)

var ErrUnknownUnit = errors.New("unknown unit")

var units = []Unit{Milliliters, Ounces, Cups}

// AllUnits returns every supported unit.
func AllUnits() []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	switch u {
	case Milliliters, Ounces, Cups:
		return true
	}
	return false
}

func (u Unit) String() string { return string(u) }

// ParseUnit resolves a unit name. Accepts "ml", "oz", "cup" and "cups" in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ml":
		return Milliliters, nil
	case "oz":
		return Ounces, nil
	case "cup", "cups":
		return Cups, nil
	}
	return "", fmt.Errorf("%w %q (expected mL, oz or cups)", ErrUnknownUnit, s)
}

// FromMilliliters converts a volume in mL into u.
func (u Unit) FromMilliliters(ml float64) float64 {
	switch u {
	case Ounces:
		return ml / MillilitersPerOunce
	case Cups:
		return ml / MillilitersPerCup
	}
	return ml
}

// ToMilliliters converts a volume expressed in u into mL.
func (u Unit) ToMilliliters(v float64) float64 {
	switch u {
	case Ounces:
		return v * MillilitersPerOunce
	case Cups:
		return v * MillilitersPerCup
	}
	return v
}

// FormatAmount renders a volume in mL using the given display unit.
// Examples: 250 mL → "250 mL", "8.5 oz", "1.1 cups".
func FormatAmount(ml float64, u Unit) string {
	switch u {
	case Ounces:
		return fmt.Sprintf("%.1f oz", ml/MillilitersPerOunce)
	case Cups:
		return fmt.Sprintf("%.1f cups", ml/MillilitersPerCup)
	}
	return fmt.Sprintf("%d mL", int(ml))
}

var amountRe = regexp.MustCompile(`^(\d+(?:\.\d+)?|\.\d+)(ml|oz|cups?)?$`)

// ParseAmount parses a user-typed volume into mL. A bare number is read in
// the fallback unit. Supported forms: "250", "250ml", "8oz", "1.5cups".
// Returns an error for empty, zero, or non-numeric input.
func ParseAmount(s string, fallback Unit) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(strings.ToLower(s)), " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	m := amountRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid amount %q (expected e.g. 250, 250ml, 8oz, 1.5cups)", s)
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if v <= 0 || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount must be positive")
	}

	unit := fallback
	if m[2] != "" {
		unit, err = ParseUnit(m[2])
		if err != nil {
			return 0, err
		}
	}
	return unit.ToMilliliters(v), nil
}
