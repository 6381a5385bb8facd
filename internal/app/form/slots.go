package form

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

// Slot names shared by every surface. Error slots use the same keys as the
// input slots they annotate.
const (
	SlotID         = "id"
	SlotName       = "name"
	SlotEmail      = "email"
	SlotBirthDate  = "birthDate"
	SlotBaseSalary = "baseSalary"
	SlotDepartment = "departmentId"
)

// DateLayout is the display format for date slots (dd/MM/yyyy).
const DateLayout = "02/01/2006"

// Kind tells a surface which input constraint applies to a slot.
type Kind string

// Slot kinds.
const (
	KindText    Kind = "text"
	KindInteger Kind = "integer"
	KindDecimal Kind = "decimal"
	KindDate    Kind = "date"
	KindChoice  Kind = "choice"
)

// Fields holds slot values keyed by slot name.
type Fields map[string]string

// Slot describes one input field of a form.
type Slot struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Kind      Kind   `json:"kind"`
	MaxLength int    `json:"max_length,omitempty"`
	ReadOnly  bool   `json:"read_only,omitempty"`
}

var (
	integerInput = regexp.MustCompile(`^\d*$`)
	decimalInput = regexp.MustCompile(`^\d*(\.\d*)?$`)
)

// Accepts reports whether a surface should let the user type value into the
// slot. It mirrors keystroke-level widget constraints; the real rules run on
// Submit.
func (s Slot) Accepts(value string) bool {
	if s.MaxLength > 0 && utf8.RuneCountInString(value) > s.MaxLength {
		return false
	}
	switch s.Kind {
	case KindInteger:
		return integerInput.MatchString(value)
	case KindDecimal:
		return decimalInput.MatchString(value)
	default:
		return true
	}
}

// parseID returns nil for anything that is not a base-10 integer.
func parseID(raw string) *int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseDecimal(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

func parseDate(raw string) *time.Time {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &t
}

func formatID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

func formatDecimal(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return seller.CalendarDate(*t).Format(DateLayout)
}
