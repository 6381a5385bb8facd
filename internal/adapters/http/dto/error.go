package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
)

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// statusRules is checked in order; the first sentinel err matches decides
// the status. ErrConflict precedes ErrStorage so a conflict the store
// reports stays a 409.
var statusRules = []struct {
	sentinel error
	status   int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrStorage, http.StatusServiceUnavailable},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// StatusFor maps err onto an HTTP status, defaulting to 500.
func StatusFor(err error) int {
	for _, rule := range statusRules {
		if errors.Is(err, rule.sentinel) {
			return rule.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse describes err for the request r. Validation failures
// list each field as "body.<field>" in location order.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusFor(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = lo.MapToSlice(verr.Fields, func(field, msg string) ErrorDetail {
			return ErrorDetail{Location: "body." + field, Message: msg}
		})
		slices.SortFunc(resp.Errors, func(a, b ErrorDetail) int {
			return cmp.Compare(a.Location, b.Location)
		})
	}
	return resp
}

// WriteErrorResponse sends err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}
