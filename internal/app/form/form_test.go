package form

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
	"github.com/jsamuelsen11/sellerdesk/mocks"
)

func int64Ptr(v int64) *int64 { return &v }

// requirePrecondition runs fn and fails unless it panics with ErrPrecondition.
func requirePrecondition(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, domain.ErrPrecondition) {
			t.Fatalf("panic = %v, want ErrPrecondition", r)
		}
	}()
	fn()
}

type recordedSubmission struct {
	form, outcome string
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []recordedSubmission
}

func (r *fakeRecorder) RecordFormSubmission(_ context.Context, form, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedSubmission{form: form, outcome: outcome})
}

// --- DepartmentForm ---

func TestDepartmentForm_Submit_EmptyName(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockDepartmentStore(t)
	dialog := mocks.NewMockDialog(t)
	rec := &fakeRecorder{}
	f := NewDepartmentForm(store, dialog, WithRecorder(rec))
	f.SetEntity(&department.Department{})
	f.PopulateFields()

	notified := 0
	f.Subscribe(func() { notified++ })

	err := f.Submit(context.Background())
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Submit() error = %v, want ErrValidation", err)
	}
	if got := f.ErrorText(SlotName); got != "Field Name can't be empty" {
		t.Errorf("ErrorText(name) = %q, want %q", got, "Field Name can't be empty")
	}
	if notified != 0 {
		t.Errorf("subscribers notified %d times, want 0", notified)
	}
	store.AssertNotCalled(t, "SaveOrUpdate", mock.Anything, mock.Anything)
	dialog.AssertNotCalled(t, "Close")

	want := []recordedSubmission{{form: "department", outcome: OutcomeInvalid}}
	if diff := cmp.Diff(want, rec.events, cmp.AllowUnexported(recordedSubmission{})); diff != "" {
		t.Errorf("recorded events mismatch (-want +got):\n%s", diff)
	}
}

func TestDepartmentForm_Submit_Saves(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockDepartmentStore(t)
	dialog := mocks.NewMockDialog(t)
	f := NewDepartmentForm(store, dialog)
	f.SetEntity(&department.Department{})
	f.PopulateFields()
	f.SetField(SlotName, "Electronics")

	var order []string
	f.Subscribe(func() { order = append(order, "first") })
	f.Subscribe(func() { order = append(order, "second") })

	store.EXPECT().
		SaveOrUpdate(mock.Anything, &department.Department{Name: "Electronics"}).
		RunAndReturn(func(_ context.Context, d *department.Department) error {
			d.ID = int64Ptr(7)
			return nil
		})
	dialog.EXPECT().Close().Run(func() {
		order = append(order, "close")
	}).Once()

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v, want nil", err)
	}

	if diff := cmp.Diff([]string{"first", "second", "close"}, order); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
	if got := f.Entity(); got.ID == nil || *got.ID != 7 || got.Name != "Electronics" {
		t.Errorf("Entity() = %+v, want saved department with ID 7", got)
	}
	if errs := f.Errors(); len(errs) != 0 {
		t.Errorf("Errors() = %v, want empty", errs)
	}
}

func TestDepartmentForm_Submit_UpdatesExisting(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockDepartmentStore(t)
	dialog := mocks.NewMockDialog(t)
	f := NewDepartmentForm(store, dialog)
	f.SetEntity(&department.Department{ID: int64Ptr(3), Name: "Books"})
	f.PopulateFields()

	if got := f.Field(SlotID); got != "3" {
		t.Fatalf("Field(id) = %q, want %q", got, "3")
	}
	f.SetField(SlotName, "Rare Books")

	store.EXPECT().
		SaveOrUpdate(mock.Anything, &department.Department{ID: int64Ptr(3), Name: "Rare Books"}).
		Return(nil)
	dialog.EXPECT().Close().Return()

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v, want nil", err)
	}
}

func TestDepartmentForm_Submit_StorageError(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockDepartmentStore(t)
	dialog := mocks.NewMockDialog(t)
	rec := &fakeRecorder{}
	f := NewDepartmentForm(store, dialog, WithRecorder(rec))
	original := &department.Department{}
	f.SetEntity(original)
	f.PopulateFields()
	f.SetField(SlotName, "Electronics")

	notified := false
	f.Subscribe(func() { notified = true })

	storeErr := &domain.StorageError{Err: errors.New("Duplicate entry 'Electronics'")}
	store.EXPECT().SaveOrUpdate(mock.Anything, mock.Anything).Return(storeErr)
	dialog.EXPECT().Alert(AlertTitle, "Duplicate entry 'Electronics'").Once()

	err := f.Submit(context.Background())
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("Submit() error = %v, want ErrStorage", err)
	}
	if notified {
		t.Error("subscribers notified after failed save")
	}
	if f.Entity() != original {
		t.Error("Entity() changed after failed save")
	}
	if got := f.Field(SlotName); got != "Electronics" {
		t.Errorf("Field(name) = %q, want entered value kept", got)
	}
	dialog.AssertNotCalled(t, "Close")

	if len(rec.events) != 1 || rec.events[0].outcome != OutcomeFailed {
		t.Errorf("recorded events = %+v, want one %q", rec.events, OutcomeFailed)
	}
}

func TestDepartmentForm_Submit_ClearsStaleErrors(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockDepartmentStore(t)
	dialog := mocks.NewMockDialog(t)
	f := NewDepartmentForm(store, dialog)
	f.SetEntity(&department.Department{})
	f.PopulateFields()

	f.SetField(SlotName, strings.Repeat("x", department.NameMaxLength+1))
	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("Submit() error = nil, want validation error")
	}
	if got := f.ErrorText(SlotName); got != "Field Name can't exceed 30 characters" {
		t.Fatalf("ErrorText(name) = %q", got)
	}

	store.EXPECT().SaveOrUpdate(mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	dialog.EXPECT().Alert(AlertTitle, "connection refused").Return()

	f.SetField(SlotName, "Toys")
	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("Submit() error = nil, want storage error")
	}
	if got := f.ErrorText(SlotName); got != "" {
		t.Errorf("ErrorText(name) = %q, want cleared", got)
	}
}

func TestDepartmentForm_Submit_NonNumericIDIsNew(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockDepartmentStore(t)
	dialog := mocks.NewMockDialog(t)
	f := NewDepartmentForm(store, dialog)
	f.SetEntity(&department.Department{})
	f.SetFields(map[string]string{SlotID: "abc", SlotName: "Garden", "unknown": "ignored"})

	store.EXPECT().
		SaveOrUpdate(mock.Anything, mock.MatchedBy(func(d *department.Department) bool {
			return d.IsNew() && d.Name == "Garden"
		})).
		Return(nil)
	dialog.EXPECT().Close().Return()

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v, want nil", err)
	}
	if _, ok := f.Fields()["unknown"]; ok {
		t.Error("SetFields() stored an unknown slot")
	}
}

func TestDepartmentForm_Preconditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func(t *testing.T)
	}{
		{
			name: "submit without entity",
			fn: func(t *testing.T) {
				f := NewDepartmentForm(mocks.NewMockDepartmentStore(t), mocks.NewMockDialog(t))
				_ = f.Submit(context.Background())
			},
		},
		{
			name: "submit without store",
			fn: func(t *testing.T) {
				f := NewDepartmentForm(nil, mocks.NewMockDialog(t))
				f.SetEntity(&department.Department{})
				_ = f.Submit(context.Background())
			},
		},
		{
			name: "submit without dialog",
			fn: func(t *testing.T) {
				f := NewDepartmentForm(mocks.NewMockDepartmentStore(t), nil)
				f.SetEntity(&department.Department{})
				_ = f.Submit(context.Background())
			},
		},
		{
			name: "populate without entity",
			fn: func(t *testing.T) {
				f := NewDepartmentForm(mocks.NewMockDepartmentStore(t), mocks.NewMockDialog(t))
				f.PopulateFields()
			},
		},
		{
			name: "cancel without dialog",
			fn: func(t *testing.T) {
				f := NewDepartmentForm(mocks.NewMockDepartmentStore(t), nil)
				f.Cancel()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			requirePrecondition(t, func() { tt.fn(t) })
		})
	}
}

func TestDepartmentForm_PopulateFieldsIsIdempotent(t *testing.T) {
	t.Parallel()

	f := NewDepartmentForm(nil, nil)
	f.SetEntity(&department.Department{ID: int64Ptr(4), Name: "Music"})

	f.PopulateFields()
	first := f.Fields()
	f.PopulateFields()

	if diff := cmp.Diff(first, f.Fields()); diff != "" {
		t.Errorf("second PopulateFields() changed slots (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(Fields{SlotID: "4", SlotName: "Music"}, first); diff != "" {
		t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
	}
}

func TestDepartmentForm_Cancel(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockDepartmentStore(t)
	dialog := mocks.NewMockDialog(t)
	dialog.EXPECT().Close().Once()

	f := NewDepartmentForm(store, dialog)
	f.SetEntity(&department.Department{})
	notified := false
	f.Subscribe(func() { notified = true })

	f.Cancel()

	if notified {
		t.Error("Cancel() notified subscribers")
	}
	store.AssertNotCalled(t, "SaveOrUpdate", mock.Anything, mock.Anything)
}

func TestDepartmentForm_Slots(t *testing.T) {
	t.Parallel()

	f := NewDepartmentForm(nil, nil)

	slot, ok := f.Slot(SlotName)
	if !ok {
		t.Fatal("Slot(name) not found")
	}
	if slot.MaxLength != department.NameMaxLength {
		t.Errorf("Slot(name).MaxLength = %d, want %d", slot.MaxLength, department.NameMaxLength)
	}
	if id, _ := f.Slot(SlotID); !id.ReadOnly || id.Kind != KindInteger {
		t.Errorf("Slot(id) = %+v, want read-only integer", id)
	}
	if _, ok := f.Slot(SlotEmail); ok {
		t.Error("department form exposes an email slot")
	}
}

// --- SellerForm ---

func departmentOptions() []department.Department {
	return []department.Department{
		{ID: int64Ptr(2), Name: "Books"},
		{ID: int64Ptr(1), Name: "Computers"},
	}
}

func TestSellerForm_Submit_Saves(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSellerStore(t)
	departments := mocks.NewMockDepartmentStore(t)
	dialog := mocks.NewMockDialog(t)
	departments.EXPECT().FindAll(mock.Anything).Return(departmentOptions(), nil)

	f := NewSellerForm(store, departments, dialog)
	if err := f.LoadAssociatedObjects(context.Background()); err != nil {
		t.Fatalf("LoadAssociatedObjects() error = %v", err)
	}
	f.SetEntity(&seller.Seller{})
	f.PopulateFields()
	f.SetFields(map[string]string{
		SlotName:       "Alex Blue",
		SlotEmail:      "alex@example.com",
		SlotBirthDate:  "21/04/1990",
		SlotBaseSalary: "3000.5",
		SlotDepartment: "1",
	})

	birth := time.Date(1990, 4, 21, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("3000.5")
	want := &seller.Seller{
		Name:       "Alex Blue",
		Email:      "alex@example.com",
		BirthDate:  &birth,
		BaseSalary: &salary,
		Department: &department.Department{ID: int64Ptr(1), Name: "Computers"},
	}

	var saved *seller.Seller
	store.EXPECT().SaveOrUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, s *seller.Seller) error {
			saved = s
			s.ID = int64Ptr(11)
			return nil
		})
	dialog.EXPECT().Close().Return()

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v, want nil", err)
	}

	opts := cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })
	wantSaved := *want
	wantSaved.ID = int64Ptr(11)
	if diff := cmp.Diff(&wantSaved, saved, opts); diff != "" {
		t.Errorf("saved seller mismatch (-want +got):\n%s", diff)
	}
	if f.Entity() != saved {
		t.Error("Entity() is not the saved seller")
	}
}

func TestSellerForm_Submit_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields map[string]string
		want   Fields
	}{
		{
			name: "missing salary only",
			fields: map[string]string{
				SlotName: "Alex", SlotEmail: "a@x.io", SlotBirthDate: "01/02/1999", SlotBaseSalary: "",
			},
			want: Fields{SlotBaseSalary: "Field Base Salary can't be empty"},
		},
		{
			name: "unparsable salary and date",
			fields: map[string]string{
				SlotName: "Alex", SlotEmail: "a@x.io", SlotBirthDate: "1999-02-01", SlotBaseSalary: "12,50",
			},
			want: Fields{
				SlotBirthDate:  "Field Birth Date can't be empty",
				SlotBaseSalary: "Field Base Salary can't be empty",
			},
		},
		{
			name:   "everything empty",
			fields: map[string]string{},
			want: Fields{
				SlotName:       "Field Name can't be empty",
				SlotEmail:      "Field Email can't be empty",
				SlotBirthDate:  "Field Birth Date can't be empty",
				SlotBaseSalary: "Field Base Salary can't be empty",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewMockSellerStore(t)
			dialog := mocks.NewMockDialog(t)
			f := NewSellerForm(store, nil, dialog)
			f.SetEntity(&seller.Seller{})
			f.PopulateFields()
			f.SetFields(tt.fields)

			err := f.Submit(context.Background())
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Submit() error = %v, want ErrValidation", err)
			}
			if diff := cmp.Diff(tt.want, f.Errors()); diff != "" {
				t.Errorf("Errors() mismatch (-want +got):\n%s", diff)
			}
			store.AssertNotCalled(t, "SaveOrUpdate", mock.Anything, mock.Anything)
			dialog.AssertNotCalled(t, "Close")
			dialog.AssertNotCalled(t, "Alert", mock.Anything, mock.Anything)
		})
	}
}

func TestSellerForm_PopulateFields(t *testing.T) {
	t.Parallel()

	t.Run("new seller defaults to first department", func(t *testing.T) {
		t.Parallel()

		departments := mocks.NewMockDepartmentStore(t)
		departments.EXPECT().FindAll(mock.Anything).Return(departmentOptions(), nil)

		f := NewSellerForm(nil, departments, nil)
		if err := f.LoadAssociatedObjects(context.Background()); err != nil {
			t.Fatalf("LoadAssociatedObjects() error = %v", err)
		}
		entity := &seller.Seller{}
		f.SetEntity(entity)
		f.PopulateFields()

		if got := f.Field(SlotDepartment); got != "2" {
			t.Errorf("Field(departmentId) = %q, want first option %q", got, "2")
		}
		if entity.Department != nil {
			t.Error("PopulateFields() assigned a department to the entity")
		}
	})

	t.Run("existing seller shows its values", func(t *testing.T) {
		t.Parallel()

		birth := time.Date(1985, 12, 3, 0, 0, 0, 0, time.UTC)
		salary := decimal.RequireFromString("2500")
		f := NewSellerForm(nil, nil, nil)
		f.SetEntity(&seller.Seller{
			ID:         int64Ptr(9),
			Name:       "Bob Brown",
			Email:      "bob@example.com",
			BirthDate:  &birth,
			BaseSalary: &salary,
			Department: &department.Department{ID: int64Ptr(1), Name: "Computers"},
		})
		f.PopulateFields()

		want := Fields{
			SlotID:         "9",
			SlotName:       "Bob Brown",
			SlotEmail:      "bob@example.com",
			SlotBirthDate:  "03/12/1985",
			SlotBaseSalary: "2500.00",
			SlotDepartment: "1",
		}
		if diff := cmp.Diff(want, f.Fields()); diff != "" {
			t.Errorf("Fields() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no options leaves department empty", func(t *testing.T) {
		t.Parallel()

		f := NewSellerForm(nil, nil, nil)
		f.SetEntity(&seller.Seller{})
		f.PopulateFields()

		if got := f.Field(SlotDepartment); got != "" {
			t.Errorf("Field(departmentId) = %q, want empty", got)
		}
	})
}

func TestSellerForm_LoadAssociatedObjects(t *testing.T) {
	t.Parallel()

	t.Run("returns store error and keeps options", func(t *testing.T) {
		t.Parallel()

		departments := mocks.NewMockDepartmentStore(t)
		departments.EXPECT().FindAll(mock.Anything).Return(departmentOptions(), nil).Once()
		departments.EXPECT().FindAll(mock.Anything).Return(nil, domain.ErrUnavailable).Once()

		f := NewSellerForm(nil, departments, nil)
		if err := f.LoadAssociatedObjects(context.Background()); err != nil {
			t.Fatalf("first LoadAssociatedObjects() error = %v", err)
		}
		err := f.LoadAssociatedObjects(context.Background())
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("LoadAssociatedObjects() error = %v, want ErrUnavailable", err)
		}
		if got := len(f.DepartmentOptions()); got != 2 {
			t.Errorf("DepartmentOptions() len = %d, want 2", got)
		}
	})

	t.Run("panics without department store", func(t *testing.T) {
		t.Parallel()

		f := NewSellerForm(mocks.NewMockSellerStore(t), nil, mocks.NewMockDialog(t))
		requirePrecondition(t, func() { _ = f.LoadAssociatedObjects(context.Background()) })
	})
}

func TestSellerForm_UnknownDepartmentKeepsID(t *testing.T) {
	t.Parallel()

	f := NewSellerForm(nil, nil, nil)
	f.SetField(SlotDepartment, "42")

	got := f.selectedDepartment()
	if got == nil || got.ID == nil || *got.ID != 42 {
		t.Fatalf("selectedDepartment() = %+v, want ID 42", got)
	}

	f.SetField(SlotDepartment, "")
	if got := f.selectedDepartment(); got != nil {
		t.Errorf("selectedDepartment() = %+v, want nil", got)
	}
}

func TestSellerForm_SubmitWithoutStorePanics(t *testing.T) {
	t.Parallel()

	f := NewSellerForm(nil, nil, mocks.NewMockDialog(t))
	f.SetEntity(&seller.Seller{})
	requirePrecondition(t, func() { _ = f.Submit(context.Background()) })
}

func TestSlot_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		slot  Slot
		value string
		want  bool
	}{
		{name: "integer digits", slot: Slot{Kind: KindInteger}, value: "123", want: true},
		{name: "integer rejects letters", slot: Slot{Kind: KindInteger}, value: "12a", want: false},
		{name: "decimal with point", slot: Slot{Kind: KindDecimal}, value: "12.5", want: true},
		{name: "decimal trailing point", slot: Slot{Kind: KindDecimal}, value: "12.", want: true},
		{name: "decimal rejects comma", slot: Slot{Kind: KindDecimal}, value: "12,5", want: false},
		{name: "text within max", slot: Slot{Kind: KindText, MaxLength: 3}, value: "abc", want: true},
		{name: "text over max", slot: Slot{Kind: KindText, MaxLength: 3}, value: "abcd", want: false},
		{name: "empty always allowed", slot: Slot{Kind: KindInteger}, value: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.slot.Accepts(tt.value); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestSellerForm_BirthDateKeepsCalendarDay(t *testing.T) {
	t.Parallel()

	day := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		zone *time.Location
	}{
		{name: "utc", zone: time.UTC},
		{name: "west of utc", zone: time.FixedZone("UTC-3", -3*60*60)},
		{name: "east of utc", zone: time.FixedZone("UTC+9", 9*60*60)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewMockSellerStore(t)
			dialog := mocks.NewMockDialog(t)
			birth := day.In(tt.zone)
			salary := decimal.RequireFromString("1200")

			f := NewSellerForm(store, nil, dialog)
			f.SetEntity(&seller.Seller{
				ID:         int64Ptr(5),
				Name:       "Ann",
				Email:      "ann@example.com",
				BirthDate:  &birth,
				BaseSalary: &salary,
			})
			f.PopulateFields()

			if got := f.Field(SlotBirthDate); got != "01/05/1990" {
				t.Fatalf("Field(birthDate) = %q, want %q", got, "01/05/1990")
			}

			var saved *seller.Seller
			store.EXPECT().SaveOrUpdate(mock.Anything, mock.Anything).
				RunAndReturn(func(_ context.Context, s *seller.Seller) error {
					saved = s
					return nil
				})
			dialog.EXPECT().Close().Return()

			if err := f.Submit(context.Background()); err != nil {
				t.Fatalf("Submit() error = %v", err)
			}
			if saved.BirthDate == nil || !saved.BirthDate.Equal(day) {
				t.Errorf("saved BirthDate = %v, want %v", saved.BirthDate, day)
			}
		})
	}
}

func TestDepartmentForm_Submit_StoreRejectsFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		fields     map[string]string
		wantErrors Fields
		wantAlert  bool
	}{
		{
			name:       "known slot",
			fields:     map[string]string{SlotName: "already taken"},
			wantErrors: Fields{SlotName: "already taken"},
		},
		{
			name:       "no matching slot",
			fields:     map[string]string{"region": "unknown"},
			wantErrors: Fields{},
			wantAlert:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewMockDepartmentStore(t)
			dialog := mocks.NewMockDialog(t)
			rec := &fakeRecorder{}
			f := NewDepartmentForm(store, dialog, WithRecorder(rec))
			f.SetEntity(&department.Department{})
			f.PopulateFields()
			f.SetField(SlotName, "Books")

			store.EXPECT().SaveOrUpdate(mock.Anything, mock.Anything).
				Return(&domain.ValidationError{Fields: tt.fields})
			if tt.wantAlert {
				dialog.EXPECT().Alert(AlertTitle, mock.Anything).Once()
			}

			err := f.Submit(context.Background())
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("Submit() error = %v, want ErrValidation", err)
			}
			if got := errors.Is(err, domain.ErrStorage); got != tt.wantAlert {
				t.Errorf("errors.Is(err, ErrStorage) = %v, want %v", got, tt.wantAlert)
			}
			if diff := cmp.Diff(tt.wantErrors, f.Errors()); diff != "" {
				t.Errorf("Errors() mismatch (-want +got):\n%s", diff)
			}
			if !tt.wantAlert {
				dialog.AssertNotCalled(t, "Alert", mock.Anything, mock.Anything)
			}
			dialog.AssertNotCalled(t, "Close")

			want := OutcomeInvalid
			if tt.wantAlert {
				want = OutcomeFailed
			}
			if len(rec.events) != 1 || rec.events[0].outcome != want {
				t.Errorf("recorded events = %+v, want one %q", rec.events, want)
			}
		})
	}
}
