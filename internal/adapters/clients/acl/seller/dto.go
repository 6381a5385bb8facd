// Package seller translates between the remote registry API's seller
// resources and domain sellers.
package seller

// DateLayout is the registry's birth date format.
const DateLayout = "2006-01-02"

// SellerDTO matches the registry Seller schema. BaseSalary is a decimal
// string so no precision is lost in transit.
type SellerDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	BirthDate    string `json:"birth_date"`
	BaseSalary   string `json:"base_salary"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

// SellerRequestDTO is the body of a create or update call.
type SellerRequestDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	BirthDate    string `json:"birth_date,omitempty"`
	BaseSalary   string `json:"base_salary,omitempty"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

// SellerListResponseDTO matches the registry SellerList schema.
type SellerListResponseDTO struct {
	Sellers []SellerDTO `json:"sellers"`
	Count   int64       `json:"count"`
}
