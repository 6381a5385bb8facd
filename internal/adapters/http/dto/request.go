package dto

import (
	"github.com/jsamuelsen11/sellerdesk/internal/domain"
)

const msgRequired = "is required"

// FormSubmitRequest is the body of POST /api/v1/forms/{kind}. Fields holds
// the raw slot text exactly as a user typed it; the form parses it.
type FormSubmitRequest struct {
	Fields map[string]string `json:"fields"`
}

// Validate checks the envelope only. Slot content is validated by the form.
func (r *FormSubmitRequest) Validate() error {
	if r.Fields == nil {
		return &domain.ValidationError{Fields: map[string]string{"fields": msgRequired}}
	}
	return nil
}
