// Where: internal/app/prompter.go
// What: Interactive confirmation via the huh library.
// Why: Gate mainnet deployments behind an explicit yes.
package app

import "github.com/charmbracelet/huh"

// Prompter asks the user to confirm an action.
type Prompter interface {
	Confirm(title string) (bool, error)
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct{}

func (HuhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Deploy").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
