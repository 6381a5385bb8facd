package form

import (
	"context"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

var departmentSlots = []Slot{
	{Name: SlotID, Label: "Id", Kind: KindInteger, ReadOnly: true},
	{Name: SlotName, Label: "Name", Kind: KindText, MaxLength: department.NameMaxLength},
}

// DepartmentForm edits a single department.
type DepartmentForm struct {
	workflow[department.Department]
	store ports.DepartmentStore
}

// NewDepartmentForm creates a department form. store and dialog may be nil
// at construction time, but Submit panics if either is still missing.
func NewDepartmentForm(store ports.DepartmentStore, dialog ports.Dialog, opts ...Option) *DepartmentForm {
	return &DepartmentForm{
		workflow: newWorkflow[department.Department]("department", dialog, departmentSlots, opts),
		store:    store,
	}
}

// PopulateFields copies the attached entity into the slots.
func (f *DepartmentForm) PopulateFields() {
	d := f.requireEntity()
	f.fields[SlotID] = formatID(d.ID)
	f.fields[SlotName] = d.Name
}

// Submit reads the slots into a new department, validates it, and saves it.
// On success the saved department replaces the attached entity, subscribers
// are notified and the dialog is closed. A *domain.ValidationError means the
// error slots were filled; any other error was already shown as an alert.
func (f *DepartmentForm) Submit(ctx context.Context) error {
	f.requireEntity()
	if f.store == nil {
		panic(domain.Precondition("department store was nil"))
	}
	f.requireDialog()

	draft := f.read()
	return f.submit(ctx, draft, draft.Validate(), f.store.SaveOrUpdate)
}

func (f *DepartmentForm) read() *department.Department {
	return &department.Department{
		ID:   parseID(f.fields[SlotID]),
		Name: f.fields[SlotName],
	}
}
