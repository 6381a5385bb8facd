// Package acl implements the store ports against a remote registry API.
// It is the anti-corruption layer between the registry's JSON resources and
// domain entities. Resource translators live in subpackages (acl/department,
// acl/seller); the clients, request plumbing and error mapping live here.
package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
)

// problemBodyLimit caps how much of an error body is parsed.
const problemBodyLimit = 1 << 20

// problem is the subset of an RFC 9457 body the registry fills in.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
}

// registryFields renames the registry's snake_case fields to the form slot
// names.
var registryFields = map[string]string{
	"birth_date":    "birthDate",
	"base_salary":   "baseSalary",
	"department_id": "departmentId",
}

// TranslateHTTPError turns a registry error response into a domain error.
// Field errors on a 400 or 422 become a *domain.ValidationError keyed by
// form slot; otherwise the problem detail, or the status text, is wrapped
// around the matching sentinel. Any 5xx is ErrUnavailable.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)
	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	sentinel, known := statusErrors[resp.StatusCode]
	if resp.StatusCode >= http.StatusInternalServerError {
		sentinel, known = domain.ErrUnavailable, true
	}
	switch {
	case !known:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	case sentinel == domain.ErrValidation && len(p.Errors) > 0:
		fields := make(map[string]string, len(p.Errors))
		for _, e := range p.Errors {
			name := strings.TrimPrefix(e.Location, "body.")
			if alias, ok := registryFields[name]; ok {
				name = alias
			}
			fields[name] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	default:
		return fmt.Errorf("%s: %w", detail, sentinel)
	}
}

func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != "application/problem+json" {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, problemBodyLimit)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}

// storageError wraps a failed registry call for the store ports. Not-found
// and validation results pass through unchanged so callers can still match
// them directly.
func storageError(op string, err error) error {
	var verr *domain.ValidationError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound), errors.As(err, &verr):
		return err
	default:
		return &domain.StorageError{Op: op, Err: err}
	}
}
