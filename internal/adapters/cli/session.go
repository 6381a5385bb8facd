package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/sellerdesk/internal/app/form"
	"github.com/jsamuelsen11/sellerdesk/internal/domain"
)

// editor is the part of a form a terminal session drives.
type editor interface {
	Slots() []form.Slot
	Field(name string) string
	SetField(name, value string)
	ErrorText(name string) string
	Submit(ctx context.Context) error
	Cancel()
}

// choice is one option of a KindChoice slot.
type choice struct {
	value string
	label string
}

// session prompts for every slot of a form until it saves, the user cancels,
// or the user declines a retry after a storage alert.
type session struct {
	prompter Prompter
	out      io.Writer
	dialog   *terminalDialog
	choices  map[string][]choice
}

// run returns nil when the form saved or was canceled.
func (s *session) run(ctx context.Context, f editor) error {
	for {
		if err := s.fill(f); err != nil {
			if errors.Is(err, ErrCanceled) {
				f.Cancel()
				_, _ = fmt.Fprintln(s.out, "canceled")
				return nil
			}
			return err
		}

		err := f.Submit(ctx)
		switch {
		case err == nil:
			_, _ = fmt.Fprintln(s.out, successStyle.Render("saved"))
			return nil
		case s.dialog.alerted:
			retry, perr := s.prompter.Confirm("Retry")
			if perr != nil && !errors.Is(perr, ErrCanceled) {
				return perr
			}
			if !retry {
				f.Cancel()
				return err
			}
			s.dialog.reset()
		case errors.Is(err, domain.ErrValidation):
			s.printErrors(f)
		default:
			return err
		}
	}
}

func (s *session) fill(f editor) error {
	for _, slot := range f.Slots() {
		if slot.ReadOnly {
			if v := f.Field(slot.Name); v != "" {
				_, _ = fmt.Fprintf(s.out, "%s: %s\n", slot.Label, v)
			}
			continue
		}

		if slot.Kind == form.KindChoice {
			if err := s.choose(f, slot); err != nil {
				return err
			}
			continue
		}

		v, err := s.prompter.Input(s.label(f, slot), f.Field(slot.Name), inputValidator(slot))
		if err != nil {
			return err
		}
		f.SetField(slot.Name, v)
	}
	return nil
}

func (s *session) choose(f editor, slot form.Slot) error {
	options := s.choices[slot.Name]
	if len(options) == 0 {
		return nil
	}
	current := f.Field(slot.Name)
	cursor := max(lo.IndexOf(lo.Map(options, func(c choice, _ int) string { return c.value }), current), 0)

	i, err := s.prompter.Select(s.label(f, slot), lo.Map(options, func(c choice, _ int) string { return c.label }), cursor)
	if err != nil {
		return err
	}
	f.SetField(slot.Name, options[i].value)
	return nil
}

// label appends the slot's current error message, if any.
func (s *session) label(f editor, slot form.Slot) string {
	if msg := f.ErrorText(slot.Name); msg != "" {
		return slot.Label + " (" + msg + ")"
	}
	return slot.Label
}

func (s *session) printErrors(f editor) {
	for _, slot := range f.Slots() {
		if msg := f.ErrorText(slot.Name); msg != "" {
			_, _ = fmt.Fprintf(s.out, "  %s: %s\n", slot.Label, fieldErrorStyle.Render(msg))
		}
	}
}

// inputValidator rejects keystrokes the slot widget would not accept.
func inputValidator(slot form.Slot) func(string) error {
	return func(v string) error {
		if slot.Accepts(v) {
			return nil
		}
		if slot.MaxLength > 0 && utf8.RuneCountInString(v) > slot.MaxLength {
			return fmt.Errorf("at most %d characters", slot.MaxLength)
		}
		switch slot.Kind {
		case form.KindInteger:
			return errors.New("digits only")
		case form.KindDecimal:
			return errors.New("enter a decimal number")
		default:
			return errors.New("invalid input")
		}
	}
}
