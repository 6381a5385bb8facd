// Package department holds the Department entity and its validation rules.
package department

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
)

// NameMaxLength is the widest department name the store accepts.
const NameMaxLength = 30

const msgNameRequired = "Field Name can't be empty"

// Department groups sellers. A nil ID marks a record that has not been
// persisted yet.
type Department struct {
	ID   *int64
	Name string
}

// IsNew reports whether the department has not been persisted yet.
func (d *Department) IsNew() bool {
	return d.ID == nil
}

// Validate checks business rules for the Department entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (d *Department) Validate() error {
	if d == nil {
		return &domain.ValidationError{Fields: map[string]string{"name": msgNameRequired}}
	}

	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(d.Name) == "":
		fields["name"] = msgNameRequired
	case utf8.RuneCountInString(d.Name) > NameMaxLength:
		fields["name"] = fmt.Sprintf("Field Name can't exceed %d characters", NameMaxLength)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SameAs reports whether both departments refer to the same persisted record.
func (d *Department) SameAs(other *Department) bool {
	if d == nil || other == nil || d.ID == nil || other.ID == nil {
		return false
	}
	return *d.ID == *other.ID
}
