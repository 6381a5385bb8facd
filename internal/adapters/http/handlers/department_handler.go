// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sellerdesk/internal/app"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
)

// DepartmentHandler serves the department list, detail and form endpoints.
type DepartmentHandler struct {
	registry *app.Registry
}

// NewDepartmentHandler creates a new DepartmentHandler.
func NewDepartmentHandler(registry *app.Registry) *DepartmentHandler {
	return &DepartmentHandler{registry: registry}
}

// ListDepartments handles GET /api/v1/departments. It refreshes the shared
// list from the store before answering.
func (h *DepartmentHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	list := h.registry.Departments()
	if err := list.Refresh(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDepartmentListResponse(list.Items()))
}

// GetDepartment handles GET /api/v1/departments/{id}.
func (h *DepartmentHandler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.registry.Department(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToDepartmentResponse(d))
}

// DeleteDepartment handles DELETE /api/v1/departments/{id}.
func (h *DepartmentHandler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.registry.RemoveDepartment(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// OpenForm handles GET /api/v1/forms/departments[?id=N]. Without an id the
// form is blank; with one it shows the stored department.
func (h *DepartmentHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	id, ok, err := queryID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entity := &department.Department{}
	if ok {
		if entity, err = h.registry.Department(r.Context(), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	dialog := &formDialog{}
	f := h.registry.DepartmentForm(dialog)
	f.SetEntity(entity)
	f.PopulateFields()

	writeJSON(w, r, http.StatusOK, newFormResponse(f, dialog))
}

// SubmitForm handles POST /api/v1/forms/departments.
func (h *DepartmentHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var req dto.FormSubmitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dialog := &formDialog{}
	f := h.registry.DepartmentForm(dialog)
	f.SetEntity(&department.Department{})
	f.SetFields(req.Fields)

	err := f.Submit(r.Context())

	resp := newFormResponse(f, dialog)
	if err == nil {
		resp.Entity = dto.ToDepartmentResponse(f.Entity())
	}
	writeJSON(w, r, submitStatus(dialog, err), resp)
}
