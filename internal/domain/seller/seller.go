// Package seller holds the Seller entity and its validation rules.
package seller

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
)

// Column widths enforced on input and on submit.
const (
	NameMaxLength  = 70
	EmailMaxLength = 60
)

// Field keys used in validation errors. They double as form slot names.
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldBirthDate  = "birthDate"
	FieldBaseSalary = "baseSalary"
)

const (
	msgNameRequired       = "Field Name can't be empty"
	msgEmailRequired      = "Field Email can't be empty"
	msgBirthDateRequired  = "Field Birth Date can't be empty"
	msgBaseSalaryRequired = "Field Base Salary can't be empty"
)

// Seller is a salesperson attached to a department.
// A nil ID marks a record that has not been persisted yet. BirthDate and
// BaseSalary are nil when the input could not be parsed.
type Seller struct {
	ID         *int64
	Name       string
	Email      string
	BirthDate  *time.Time
	BaseSalary *decimal.Decimal
	Department *department.Department
}

// IsNew reports whether the seller has not been persisted yet.
func (s *Seller) IsNew() bool {
	return s.ID == nil
}

// Validate checks every field and reports all violations at once.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (s *Seller) Validate() error {
	if s == nil {
		s = &Seller{}
	}

	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(s.Name) == "":
		fields[FieldName] = msgNameRequired
	case utf8.RuneCountInString(s.Name) > NameMaxLength:
		fields[FieldName] = fmt.Sprintf("Field Name can't exceed %d characters", NameMaxLength)
	}

	switch {
	case strings.TrimSpace(s.Email) == "":
		fields[FieldEmail] = msgEmailRequired
	case utf8.RuneCountInString(s.Email) > EmailMaxLength:
		fields[FieldEmail] = fmt.Sprintf("Field Email can't exceed %d characters", EmailMaxLength)
	}

	if s.BirthDate == nil {
		fields[FieldBirthDate] = msgBirthDateRequired
	}
	if s.BaseSalary == nil {
		fields[FieldBaseSalary] = msgBaseSalaryRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DepartmentName returns the attached department's name, or "" when the
// seller has none.
func (s *Seller) DepartmentName() string {
	if s.Department == nil {
		return ""
	}
	return s.Department.Name
}

// CalendarDate reduces t to midnight UTC of its UTC calendar day. Birth dates
// are stored as UTC midnight, but a driver may hand them back in another
// zone; reading the day in that zone would shift it.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
