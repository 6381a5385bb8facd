package form

import (
	"context"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

var sellerSlots = []Slot{
	{Name: SlotID, Label: "Id", Kind: KindInteger, ReadOnly: true},
	{Name: SlotName, Label: "Name", Kind: KindText, MaxLength: seller.NameMaxLength},
	{Name: SlotEmail, Label: "Email", Kind: KindText, MaxLength: seller.EmailMaxLength},
	{Name: SlotBirthDate, Label: "Birth Date", Kind: KindDate},
	{Name: SlotBaseSalary, Label: "Base Salary", Kind: KindDecimal},
	{Name: SlotDepartment, Label: "Department", Kind: KindChoice},
}

// SellerForm edits a single seller. The department slot holds the ID of one
// of the options returned by DepartmentOptions.
type SellerForm struct {
	workflow[seller.Seller]
	store       ports.SellerStore
	departments ports.DepartmentStore
	options     []department.Department
}

// NewSellerForm creates a seller form. departments is only needed by
// LoadAssociatedObjects.
func NewSellerForm(store ports.SellerStore, departments ports.DepartmentStore, dialog ports.Dialog, opts ...Option) *SellerForm {
	return &SellerForm{
		workflow:    newWorkflow[seller.Seller]("seller", dialog, sellerSlots, opts),
		store:       store,
		departments: departments,
	}
}

// LoadAssociatedObjects fetches the department choices. Call it before
// PopulateFields so a new seller gets a default department.
func (f *SellerForm) LoadAssociatedObjects(ctx context.Context) error {
	if f.departments == nil {
		panic(domain.Precondition("department store was nil"))
	}
	list, err := f.departments.FindAll(ctx)
	if err != nil {
		return err
	}
	f.options = list
	return nil
}

// DepartmentOptions returns the loaded department choices in store order.
func (f *SellerForm) DepartmentOptions() []department.Department {
	out := make([]department.Department, len(f.options))
	copy(out, f.options)
	return out
}

// PopulateFields copies the attached entity into the slots. A seller without
// a department shows the first loaded option.
func (f *SellerForm) PopulateFields() {
	s := f.requireEntity()
	f.fields[SlotID] = formatID(s.ID)
	f.fields[SlotName] = s.Name
	f.fields[SlotEmail] = s.Email
	f.fields[SlotBirthDate] = formatDate(s.BirthDate)
	f.fields[SlotBaseSalary] = formatDecimal(s.BaseSalary)

	switch {
	case s.Department != nil:
		f.fields[SlotDepartment] = formatID(s.Department.ID)
	case len(f.options) > 0:
		f.fields[SlotDepartment] = formatID(f.options[0].ID)
	default:
		f.fields[SlotDepartment] = ""
	}
}

// Submit reads the slots into a new seller, validates every field, and saves
// it. Outcomes match DepartmentForm.Submit.
func (f *SellerForm) Submit(ctx context.Context) error {
	f.requireEntity()
	if f.store == nil {
		panic(domain.Precondition("seller store was nil"))
	}
	f.requireDialog()

	draft := f.read()
	return f.submit(ctx, draft, draft.Validate(), f.store.SaveOrUpdate)
}

func (f *SellerForm) read() *seller.Seller {
	return &seller.Seller{
		ID:         parseID(f.fields[SlotID]),
		Name:       f.fields[SlotName],
		Email:      f.fields[SlotEmail],
		BirthDate:  parseDate(f.fields[SlotBirthDate]),
		BaseSalary: parseDecimal(f.fields[SlotBaseSalary]),
		Department: f.selectedDepartment(),
	}
}

// selectedDepartment resolves the department slot against the loaded options.
// An ID that is not among them still yields a reference carrying that ID.
func (f *SellerForm) selectedDepartment() *department.Department {
	id := parseID(f.fields[SlotDepartment])
	if id == nil {
		return nil
	}
	for i := range f.options {
		if o := f.options[i]; o.ID != nil && *o.ID == *id {
			return &o
		}
	}
	return &department.Department{ID: id}
}
