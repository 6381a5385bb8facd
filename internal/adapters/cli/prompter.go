package cli

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// ErrCanceled is returned by a Prompter when the user interrupts a prompt.
var ErrCanceled = errors.New("canceled")

// Prompter asks the user for input. Implementations block until the user
// answers or cancels.
type Prompter interface {
	// Input asks for a line of text prefilled with initial. validate runs on
	// every keystroke.
	Input(label, initial string, validate func(string) error) (string, error)
	// Select asks the user to pick one of items, starting at cursor.
	Select(label string, items []string, cursor int) (int, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
}

// TerminalPrompter renders prompts on the controlling terminal.
type TerminalPrompter struct{}

var _ Prompter = TerminalPrompter{}

// Input implements Prompter.
func (TerminalPrompter) Input(label, initial string, validate func(string) error) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		Default:   initial,
		AllowEdit: true,
		Validate:  validate,
	}
	v, err := p.Run()
	if err != nil {
		return "", promptError(err)
	}
	return v, nil
}

// Select implements Prompter.
func (TerminalPrompter) Select(label string, items []string, cursor int) (int, error) {
	p := promptui.Select{
		Label:     label,
		Items:     items,
		CursorPos: cursor,
		Size:      10,
	}
	i, _, err := p.Run()
	if err != nil {
		return 0, promptError(err)
	}
	return i, nil
}

// Confirm implements Prompter.
func (TerminalPrompter) Confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, promptError(err)
	}
}

func promptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrCanceled
	}
	return fmt.Errorf("prompt: %w", err)
}
