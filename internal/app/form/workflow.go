// Package form implements the form-validation-and-save workflow shared by
// the department and seller forms.
//
// A form owns one in-progress entity and a set of named slots. A surface
// (HTTP handler, terminal prompt) writes raw user input into the slots and
// calls Submit. The form parses and validates the slots, persists the result
// through a store port, notifies subscribers, and closes its dialog:
//
//	f := form.NewDepartmentForm(store, dialog, form.WithLogger(logger))
//	f.SetEntity(&department.Department{})
//	f.PopulateFields()
//	f.SetField(form.SlotName, "Electronics")
//	err := f.Submit(ctx)
//
// Misuse (no entity, no store, no dialog) panics with domain.ErrPrecondition.
// Validation failures land in the error slots; storage failures are shown
// through Dialog.Alert. Both are also returned so a surface can pick a
// status code, but neither needs further handling.
package form

import (
	"context"
	"errors"
	"log/slog"
	"maps"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

// AlertTitle is the dialog title used for storage failures.
const AlertTitle = "Error saving object"

// Submission outcomes reported to a Recorder.
const (
	OutcomeSaved   = "saved"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Recorder receives one event per Submit call.
type Recorder interface {
	RecordFormSubmission(ctx context.Context, form, outcome string)
}

// Option configures a form.
type Option func(*settings)

type settings struct {
	logger   *slog.Logger
	recorder Recorder
}

// WithLogger sets the logger used for submission events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithRecorder sets the submission metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *settings) {
		s.recorder = r
	}
}

// workflow is the entity-independent half of a form.
type workflow[T any] struct {
	name      string
	entity    *T
	dialog    ports.Dialog
	slots     []Slot
	fields    Fields
	errors    Fields
	listeners Notifier
	logger    *slog.Logger
	recorder  Recorder
}

func newWorkflow[T any](name string, dialog ports.Dialog, slots []Slot, opts []Option) workflow[T] {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	w := workflow[T]{
		name:     name,
		dialog:   dialog,
		slots:    slots,
		fields:   make(Fields, len(slots)),
		errors:   make(Fields, len(slots)),
		logger:   s.logger.With(slog.String("form", name)),
		recorder: s.recorder,
	}
	for _, slot := range slots {
		w.fields[slot.Name] = ""
		w.errors[slot.Name] = ""
	}
	return w
}

// SetEntity attaches the entity to edit. Call PopulateFields to display it.
func (w *workflow[T]) SetEntity(e *T) {
	w.entity = e
}

// Entity returns the attached entity. After a successful Submit it is the
// persisted entity, including its assigned ID.
func (w *workflow[T]) Entity() *T {
	return w.entity
}

// Slots describes the form's input fields in display order.
func (w *workflow[T]) Slots() []Slot {
	out := make([]Slot, len(w.slots))
	copy(out, w.slots)
	return out
}

// Slot returns the description of the named slot.
func (w *workflow[T]) Slot(name string) (Slot, bool) {
	for _, s := range w.slots {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}

// MaxLength returns the input limit of a slot, or 0 when it has none.
func (w *workflow[T]) MaxLength(name string) int {
	s, _ := w.Slot(name)
	return s.MaxLength
}

// Field returns the raw value of a slot.
func (w *workflow[T]) Field(name string) string {
	return w.fields[name]
}

// SetField writes a raw value into a slot. Unknown slots are ignored.
func (w *workflow[T]) SetField(name, value string) {
	if _, ok := w.fields[name]; !ok {
		return
	}
	w.fields[name] = value
}

// SetFields writes every known slot present in values.
func (w *workflow[T]) SetFields(values map[string]string) {
	for name, value := range values {
		w.SetField(name, value)
	}
}

// Fields returns a copy of every slot value.
func (w *workflow[T]) Fields() Fields {
	return maps.Clone(w.fields)
}

// ErrorText returns the message currently shown next to a slot.
func (w *workflow[T]) ErrorText(name string) string {
	return w.errors[name]
}

// Errors returns the error slots that currently hold a message.
func (w *workflow[T]) Errors() Fields {
	out := make(Fields)
	for name, msg := range w.errors {
		if msg != "" {
			out[name] = msg
		}
	}
	return out
}

// Subscribe registers a callback invoked after every successful save.
func (w *workflow[T]) Subscribe(l Listener) {
	w.listeners.Subscribe(l)
}

// Cancel dismisses the form without saving or notifying.
func (w *workflow[T]) Cancel() {
	w.requireDialog()
	w.logger.Debug("form canceled")
	w.dialog.Close()
}

func (w *workflow[T]) requireEntity() *T {
	if w.entity == nil {
		panic(domain.Precondition("entity was nil"))
	}
	return w.entity
}

func (w *workflow[T]) requireDialog() {
	if w.dialog == nil {
		panic(domain.Precondition("dialog was nil"))
	}
}

// showErrors writes violations into their slots and clears every other slot.
func (w *workflow[T]) showErrors(violations map[string]string) {
	for name := range w.errors {
		w.errors[name] = violations[name]
	}
}

// submit runs the shared tail of Submit once the draft has been read.
func (w *workflow[T]) submit(ctx context.Context, draft *T, invalid error, save func(context.Context, *T) error) error {
	if invalid != nil {
		return w.reject(ctx, invalid)
	}
	w.showErrors(nil)

	err := save(ctx, draft)
	if verr := (*domain.ValidationError)(nil); errors.As(err, &verr) {
		// A store may enforce rules of its own, such as a name the remote
		// registry already holds. Those land in the slots they name.
		if w.hasSlotFor(verr.Fields) {
			return w.reject(ctx, err)
		}
		err = &domain.StorageError{Op: "save " + w.name, Err: err}
	}
	if err != nil {
		w.logger.ErrorContext(ctx, "failed to save form",
			slog.String("operation", "Submit"),
			slog.Any("error", err),
		)
		w.record(ctx, OutcomeFailed)
		w.dialog.Alert(AlertTitle, err.Error())
		return err
	}

	w.entity = draft
	w.record(ctx, OutcomeSaved)
	w.logger.InfoContext(ctx, "form saved",
		slog.Int("subscribers", w.listeners.Len()),
	)

	w.listeners.Notify()
	w.dialog.Close()
	return nil
}

// reject shows the violations carried by err and leaves the entity as is.
func (w *workflow[T]) reject(ctx context.Context, err error) error {
	violations := map[string]string{}
	if verr := (*domain.ValidationError)(nil); errors.As(err, &verr) {
		violations = verr.Fields
	}
	w.showErrors(violations)
	w.logger.InfoContext(ctx, "form rejected",
		slog.Int("violations", len(violations)),
	)
	w.record(ctx, OutcomeInvalid)
	return err
}

func (w *workflow[T]) hasSlotFor(fields map[string]string) bool {
	for name := range fields {
		if _, ok := w.errors[name]; ok {
			return true
		}
	}
	return false
}

func (w *workflow[T]) record(ctx context.Context, outcome string) {
	if w.recorder == nil {
		return
	}
	w.recorder.RecordFormSubmission(ctx, w.name, outcome)
}
