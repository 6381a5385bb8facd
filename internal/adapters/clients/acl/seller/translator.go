package seller

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

// ToDomain converts a registry seller. The department carries only its ID;
// the client resolves names separately. Malformed dates and salaries become
// nil rather than failing the whole list.
func ToDomain(dto *SellerDTO) seller.Seller {
	id := dto.ID
	s := seller.Seller{
		ID:    &id,
		Name:  dto.Name,
		Email: dto.Email,
	}
	if t, err := time.Parse(DateLayout, dto.BirthDate); err == nil {
		s.BirthDate = &t
	}
	if d, err := decimal.NewFromString(dto.BaseSalary); err == nil {
		s.BaseSalary = &d
	}
	if dto.DepartmentID != nil {
		depID := *dto.DepartmentID
		s.Department = &department.Department{ID: &depID}
	}
	return s
}

// ToDomainList converts a seller list response, keeping its order.
func ToDomainList(dto SellerListResponseDTO) []seller.Seller {
	out := make([]seller.Seller, len(dto.Sellers))
	for i := range dto.Sellers {
		out[i] = ToDomain(&dto.Sellers[i])
	}
	return out
}

// ToRequest builds the create/update body. The ID travels in the URL.
func ToRequest(s *seller.Seller) SellerRequestDTO {
	req := SellerRequestDTO{Name: s.Name, Email: s.Email}
	if s.BirthDate != nil {
		req.BirthDate = s.BirthDate.Format(DateLayout)
	}
	if s.BaseSalary != nil {
		req.BaseSalary = s.BaseSalary.StringFixed(2)
	}
	if s.Department != nil {
		req.DepartmentID = s.Department.ID
	}
	return req
}

// DepartmentIDs returns the distinct department IDs referenced by sellers,
// in first-seen order.
func DepartmentIDs(sellers []seller.Seller) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, s := range sellers {
		if s.Department == nil || s.Department.ID == nil {
			continue
		}
		id := *s.Department.ID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
