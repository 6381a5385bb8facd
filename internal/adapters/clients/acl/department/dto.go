// Package department translates between the remote registry API's
// department resources and domain departments.
package department

// DepartmentDTO matches the registry Department schema.
type DepartmentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DepartmentRequestDTO is the body of a create or update call.
type DepartmentRequestDTO struct {
	Name string `json:"name"`
}

// DepartmentListResponseDTO matches the registry DepartmentList schema.
type DepartmentListResponseDTO struct {
	Departments []DepartmentDTO `json:"departments"`
	Count       int64           `json:"count"`
}
