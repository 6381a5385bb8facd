package handlers

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sellerdesk/internal/app"
	"github.com/jsamuelsen11/sellerdesk/internal/app/form"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

// SellerHandler serves the seller list, detail and form endpoints.
type SellerHandler struct {
	registry *app.Registry
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(registry *app.Registry) *SellerHandler {
	return &SellerHandler{registry: registry}
}

// ListSellers handles GET /api/v1/sellers.
func (h *SellerHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	list := h.registry.Sellers()
	if err := list.Refresh(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSellerListResponse(list.Items()))
}

// GetSeller handles GET /api/v1/sellers/{id}.
func (h *SellerHandler) GetSeller(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	s, err := h.registry.Seller(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSellerResponse(s))
}

// DeleteSeller handles DELETE /api/v1/sellers/{id}.
func (h *SellerHandler) DeleteSeller(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.registry.RemoveSeller(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// OpenForm handles GET /api/v1/forms/sellers[?id=N]. The response lists the
// department choices; a new seller starts on the first one.
func (h *SellerHandler) OpenForm(w http.ResponseWriter, r *http.Request) {
	id, ok, err := queryID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	entity := &seller.Seller{}
	if ok {
		if entity, err = h.registry.Seller(r.Context(), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	dialog := &formDialog{}
	f := h.registry.SellerForm(dialog)
	if err := f.LoadAssociatedObjects(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	f.SetEntity(entity)
	f.PopulateFields()

	writeJSON(w, r, http.StatusOK, sellerFormResponse(f, dialog))
}

// SubmitForm handles POST /api/v1/forms/sellers.
func (h *SellerHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	var req dto.FormSubmitRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dialog := &formDialog{}
	f := h.registry.SellerForm(dialog)
	if err := f.LoadAssociatedObjects(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	f.SetEntity(&seller.Seller{})
	f.SetFields(req.Fields)

	err := f.Submit(r.Context())

	resp := sellerFormResponse(f, dialog)
	if err == nil {
		resp.Entity = dto.ToSellerResponse(f.Entity())
	}
	writeJSON(w, r, submitStatus(dialog, err), resp)
}

func sellerFormResponse(f *form.SellerForm, d *formDialog) dto.FormResponse {
	resp := newFormResponse(f, d)
	resp.DepartmentOptions = lo.Map(f.DepartmentOptions(), func(o department.Department, _ int) dto.DepartmentResponse {
		return dto.ToDepartmentResponse(&o)
	})
	return resp
}
