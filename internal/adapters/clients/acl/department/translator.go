package department

import "github.com/jsamuelsen11/sellerdesk/internal/domain/department"

// ToDomain converts a registry department to the domain entity.
func ToDomain(dto *DepartmentDTO) department.Department {
	id := dto.ID
	return department.Department{ID: &id, Name: dto.Name}
}

// ToDomainList converts a department list response, keeping its order.
func ToDomainList(dto DepartmentListResponseDTO) []department.Department {
	out := make([]department.Department, len(dto.Departments))
	for i := range dto.Departments {
		out[i] = ToDomain(&dto.Departments[i])
	}
	return out
}

// ToRequest builds the create/update body. The ID travels in the URL.
func ToRequest(d *department.Department) DepartmentRequestDTO {
	return DepartmentRequestDTO{Name: d.Name}
}
