package gormstore

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

var _ ports.SellerStore = (*SellerStore)(nil)

// SellerStore persists sellers in the "seller" table. Reads preload the
// referenced department.
type SellerStore struct {
	db *gorm.DB
}

// FindAll returns every seller ordered by name.
func (s *SellerStore) FindAll(ctx context.Context) ([]seller.Seller, error) {
	var recs []sellerRecord
	err := s.db.WithContext(ctx).
		Preload("Department").
		Order("name ASC").
		Find(&recs).Error
	if err != nil {
		return nil, translate("find sellers", err)
	}

	out := make([]seller.Seller, len(recs))
	for i, r := range recs {
		out[i] = r.toDomain()
	}
	return out, nil
}

// FindByID returns one seller or domain.ErrNotFound.
func (s *SellerStore) FindByID(ctx context.Context, id int64) (*seller.Seller, error) {
	var rec sellerRecord
	if err := s.db.WithContext(ctx).Preload("Department").First(&rec, id).Error; err != nil {
		return nil, translate("find seller", err)
	}
	out := rec.toDomain()
	return &out, nil
}

// SaveOrUpdate inserts the seller when it has no ID and updates it otherwise.
// The department is stored by reference only; it is never created here.
func (s *SellerStore) SaveOrUpdate(ctx context.Context, sl *seller.Seller) error {
	rec := toSellerRecord(sl)

	if sl.IsNew() {
		if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&rec).Error; err != nil {
			return translate("insert seller", err)
		}
		sl.ID = &rec.ID
		return nil
	}

	res := s.db.WithContext(ctx).
		Model(&sellerRecord{}).
		Where("id = ?", rec.ID).
		Updates(map[string]any{
			"name":          rec.Name,
			"email":         rec.Email,
			"birth_date":    rec.BirthDate,
			"base_salary":   rec.BaseSalary,
			"department_id": rec.DepartmentID,
		})
	if res.Error != nil {
		return translate("update seller", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Remove deletes a seller.
func (s *SellerStore) Remove(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&sellerRecord{}, id)
	if res.Error != nil {
		return translate("delete seller", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
