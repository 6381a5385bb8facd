package seller

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
)

func validSeller() Seller {
	id := int64(1)
	birth := time.Date(1990, 4, 21, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("3500.00")
	return Seller{
		Name:       "Maria Green",
		Email:      "maria@example.com",
		BirthDate:  &birth,
		BaseSalary: &salary,
		Department: &department.Department{ID: &id, Name: "Computers"},
	}
}

// requireFields asserts err is a ValidationError whose fields equal want.
func requireFields(t *testing.T, err error, want map[string]string) {
	t.Helper()

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Validate() = %v, want ErrValidation", err)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(*ValidationError) = false, got %T", err)
	}
	if diff := cmp.Diff(want, verr.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSeller_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Seller)
		want   map[string]string
	}{
		{
			name:   "valid seller passes",
			modify: func(_ *Seller) {},
		},
		{
			name:   "missing department passes",
			modify: func(s *Seller) { s.Department = nil },
		},
		{
			name:   "empty name fails",
			modify: func(s *Seller) { s.Name = "  " },
			want:   map[string]string{FieldName: "Field Name can't be empty"},
		},
		{
			name:   "long name fails",
			modify: func(s *Seller) { s.Name = strings.Repeat("n", NameMaxLength+1) },
			want:   map[string]string{FieldName: "Field Name can't exceed 70 characters"},
		},
		{
			name:   "empty email fails",
			modify: func(s *Seller) { s.Email = "" },
			want:   map[string]string{FieldEmail: "Field Email can't be empty"},
		},
		{
			name:   "long email fails",
			modify: func(s *Seller) { s.Email = strings.Repeat("e", EmailMaxLength+1) },
			want:   map[string]string{FieldEmail: "Field Email can't exceed 60 characters"},
		},
		{
			name:   "missing birth date fails",
			modify: func(s *Seller) { s.BirthDate = nil },
			want:   map[string]string{FieldBirthDate: "Field Birth Date can't be empty"},
		},
		{
			name:   "missing base salary fails",
			modify: func(s *Seller) { s.BaseSalary = nil },
			want:   map[string]string{FieldBaseSalary: "Field Base Salary can't be empty"},
		},
		{
			name: "every violation is collected",
			modify: func(s *Seller) {
				*s = Seller{}
			},
			want: map[string]string{
				FieldName:       "Field Name can't be empty",
				FieldEmail:      "Field Email can't be empty",
				FieldBirthDate:  "Field Birth Date can't be empty",
				FieldBaseSalary: "Field Base Salary can't be empty",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := validSeller()
			tt.modify(&s)

			err := s.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireFields(t, err, tt.want)
		})
	}
}

func TestSeller_ValidateNil(t *testing.T) {
	t.Parallel()

	var s *Seller
	requireFields(t, s.Validate(), map[string]string{
		FieldName:       "Field Name can't be empty",
		FieldEmail:      "Field Email can't be empty",
		FieldBirthDate:  "Field Birth Date can't be empty",
		FieldBaseSalary: "Field Base Salary can't be empty",
	})
}

func TestSeller_DepartmentName(t *testing.T) {
	t.Parallel()

	s := validSeller()
	if got := s.DepartmentName(); got != "Computers" {
		t.Errorf("DepartmentName() = %q, want %q", got, "Computers")
	}

	s.Department = nil
	if got := s.DepartmentName(); got != "" {
		t.Errorf("DepartmentName() = %q, want empty", got)
	}
}

func TestCalendarDate(t *testing.T) {
	t.Parallel()

	want := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   time.Time
	}{
		{name: "utc midnight", in: want},
		{name: "same instant west of utc", in: want.In(time.FixedZone("UTC-3", -3*60*60))},
		{name: "same instant east of utc", in: want.In(time.FixedZone("UTC+14", 14*60*60))},
		{name: "time of day dropped", in: want.Add(15*time.Hour + 30*time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CalendarDate(tt.in); got != want {
				t.Errorf("CalendarDate(%v) = %v, want %v", tt.in, got, want)
			}
		})
	}
}
