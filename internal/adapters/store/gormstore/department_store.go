package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

var _ ports.DepartmentStore = (*DepartmentStore)(nil)

// DepartmentStore persists departments in the "department" table.
type DepartmentStore struct {
	db *gorm.DB
}

// FindAll returns every department ordered by name.
func (s *DepartmentStore) FindAll(ctx context.Context) ([]department.Department, error) {
	var recs []departmentRecord
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, translate("find departments", err)
	}

	out := make([]department.Department, len(recs))
	for i, r := range recs {
		out[i] = r.toDomain()
	}
	return out, nil
}

// FindByID returns one department or domain.ErrNotFound.
func (s *DepartmentStore) FindByID(ctx context.Context, id int64) (*department.Department, error) {
	var rec departmentRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translate("find department", err)
	}
	d := rec.toDomain()
	return &d, nil
}

// SaveOrUpdate inserts d when it has no ID and updates it otherwise.
// Updating a missing department returns domain.ErrNotFound.
func (s *DepartmentStore) SaveOrUpdate(ctx context.Context, d *department.Department) error {
	rec := toDepartmentRecord(d)

	if d.IsNew() {
		if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
			return translate("insert department", err)
		}
		d.ID = &rec.ID
		return nil
	}

	res := s.db.WithContext(ctx).
		Model(&departmentRecord{}).
		Where("id = ?", rec.ID).
		Update("name", rec.Name)
	if res.Error != nil {
		return translate("update department", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Remove deletes a department. Departments still referenced by sellers are
// rejected by the foreign key.
func (s *DepartmentStore) Remove(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&departmentRecord{}, id)
	if res.Error != nil {
		return translate("delete department", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
