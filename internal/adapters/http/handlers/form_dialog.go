package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sellerdesk/internal/app/form"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

var _ ports.Dialog = (*formDialog)(nil)

// formDialog hosts one form for the length of a single request. It records
// what the form asked the surface to do so the response can report it.
type formDialog struct {
	closed bool
	alert  *dto.AlertResponse
}

func (d *formDialog) Close() {
	d.closed = true
}

func (d *formDialog) Alert(title, message string) {
	d.alert = &dto.AlertResponse{Title: title, Message: message}
}

// formState is the read side shared by both form types.
type formState interface {
	Slots() []form.Slot
	Fields() form.Fields
	Errors() form.Fields
}

func newFormResponse(f formState, d *formDialog) dto.FormResponse {
	resp := dto.FormResponse{
		Slots:  f.Slots(),
		Fields: f.Fields(),
		Closed: d.closed,
		Alert:  d.alert,
	}
	if errs := f.Errors(); len(errs) > 0 {
		resp.Errors = errs
	}
	return resp
}

// submitStatus picks the response code after Submit: 503 when the save failed
// and the form raised an alert, 400 when slots were rejected, 200 otherwise.
func submitStatus(d *formDialog, err error) int {
	switch {
	case d.alert != nil:
		return http.StatusServiceUnavailable
	case err != nil:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}
