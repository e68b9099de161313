package cli

import (
	"github.com/Flyrell/hydromind/internal/entry"
	"github.com/charmbracelet/huh"
)

// ConfirmFunc asks a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&result).
			Run()
		return result, err
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// PromptFunc reads free text. A non-nil validate keeps the prompt open until
// it returns nil.
type PromptFunc func(prompt string, validate func(string) error) (string, error)

// NewPromptFunc creates a PromptFunc using huh's interactive input component.
func NewPromptFunc() PromptFunc {
	return func(prompt string, validate func(string) error) (string, error) {
		var result string
		input := huh.NewInput().
			Title(prompt).
			Value(&result)
		if validate != nil {
			input = input.Validate(validate)
		}
		err := input.Run()
		return result, err
	}
}

// DrinkSelectFunc asks which drink was logged.
type DrinkSelectFunc func(title string, drinks []entry.DrinkType) (entry.DrinkType, error)

// NewDrinkSelectFunc creates a DrinkSelectFunc using huh's select component.
// Options are labeled with the drink's display name and hydration factor.
func NewDrinkSelectFunc() DrinkSelectFunc {
	return func(title string, drinks []entry.DrinkType) (entry.DrinkType, error) {
		result := entry.Water
		opts := make([]huh.Option[entry.DrinkType], len(drinks))
		for i, d := range drinks {
			opts[i] = huh.NewOption(drinkOptionLabel(d), d)
		}
		err := huh.NewSelect[entry.DrinkType]().
			Title(title).
			Options(opts...).
			Value(&result).
			Run()
		return result, err
	}
}

func drinkOptionLabel(d entry.DrinkType) string {
	return d.String() + Silent(" ("+percent(d.HydrationFactor())+")")
}

// PromptKit bundles the prompts used by interactive commands.
type PromptKit struct {
	Prompt  PromptFunc
	Confirm ConfirmFunc
	Select  DrinkSelectFunc
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
func NewPromptKit() PromptKit {
	return PromptKit{
		Prompt:  NewPromptFunc(),
		Confirm: NewConfirmFunc(),
		Select:  NewDrinkSelectFunc(),
	}
}
