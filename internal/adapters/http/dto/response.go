// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/samber/lo"

	"github.com/jsamuelsen11/sellerdesk/internal/app/form"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

// DateLayout is the wire format for seller birth dates.
const DateLayout = "2006-01-02"

// DepartmentResponse represents a single department in HTTP responses.
type DepartmentResponse struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

// DepartmentListResponse represents the department list.
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Count       int                  `json:"count"`
}

// SellerResponse represents a single seller in HTTP responses. Salary is a
// decimal string so no precision is lost.
type SellerResponse struct {
	ID         *int64              `json:"id"`
	Name       string              `json:"name"`
	Email      string              `json:"email"`
	BirthDate  string              `json:"birth_date,omitempty"`
	BaseSalary string              `json:"base_salary,omitempty"`
	Department *DepartmentResponse `json:"department,omitempty"`
}

// SellerListResponse represents the seller list.
type SellerListResponse struct {
	Sellers []SellerResponse `json:"sellers"`
	Count   int              `json:"count"`
}

// AlertResponse carries the alert raised by a failed save.
type AlertResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// FormResponse is the state of a form after it was opened or submitted.
// Errors is present only when some slot is invalid. Entity is set once the
// form has saved.
type FormResponse struct {
	Slots             []form.Slot          `json:"slots"`
	Fields            form.Fields          `json:"fields"`
	Errors            form.Fields          `json:"errors,omitempty"`
	DepartmentOptions []DepartmentResponse `json:"department_options,omitempty"`
	Closed            bool                 `json:"closed"`
	Alert             *AlertResponse       `json:"alert,omitempty"`
	Entity            any                  `json:"entity,omitempty"`
}

// ToDepartmentResponse converts a domain Department to an HTTP response DTO.
func ToDepartmentResponse(d *department.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name}
}

// ToDepartmentListResponse converts departments, keeping their order.
func ToDepartmentListResponse(departments []department.Department) DepartmentListResponse {
	items := lo.Map(departments, func(d department.Department, _ int) DepartmentResponse {
		return ToDepartmentResponse(&d)
	})
	return DepartmentListResponse{Departments: items, Count: len(items)}
}

// ToSellerResponse converts a domain Seller to an HTTP response DTO.
func ToSellerResponse(s *seller.Seller) SellerResponse {
	resp := SellerResponse{ID: s.ID, Name: s.Name, Email: s.Email}
	if s.BirthDate != nil {
		resp.BirthDate = s.BirthDate.Format(DateLayout)
	}
	if s.BaseSalary != nil {
		resp.BaseSalary = s.BaseSalary.StringFixed(2)
	}
	if s.Department != nil {
		d := ToDepartmentResponse(s.Department)
		resp.Department = &d
	}
	return resp
}

// ToSellerListResponse converts sellers, keeping their order.
func ToSellerListResponse(sellers []seller.Seller) SellerListResponse {
	items := lo.Map(sellers, func(s seller.Seller, _ int) SellerResponse {
		return ToSellerResponse(&s)
	})
	return SellerListResponse{Sellers: items, Count: len(items)}
}
