package gormstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

type departmentRecord struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;size:30;not null"`
}

func (departmentRecord) TableName() string { return "department" }

type sellerRecord struct {
	ID           int64             `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string            `gorm:"column:name;size:70;not null"`
	Email        string            `gorm:"column:email;size:60;not null"`
	BirthDate    time.Time         `gorm:"column:birth_date;not null"`
	BaseSalary   decimal.Decimal   `gorm:"column:base_salary;type:decimal(12,2);not null"`
	DepartmentID *int64            `gorm:"column:department_id;index"`
	Department   *departmentRecord `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
}

func (sellerRecord) TableName() string { return "seller" }

func toDepartmentRecord(d *department.Department) departmentRecord {
	rec := departmentRecord{Name: d.Name}
	if d.ID != nil {
		rec.ID = *d.ID
	}
	return rec
}

func (r departmentRecord) toDomain() department.Department {
	id := r.ID
	return department.Department{ID: &id, Name: r.Name}
}

func toSellerRecord(s *seller.Seller) sellerRecord {
	rec := sellerRecord{Name: s.Name, Email: s.Email}
	if s.ID != nil {
		rec.ID = *s.ID
	}
	if s.BirthDate != nil {
		rec.BirthDate = seller.CalendarDate(*s.BirthDate)
	}
	if s.BaseSalary != nil {
		rec.BaseSalary = *s.BaseSalary
	}
	if s.Department != nil && s.Department.ID != nil {
		id := *s.Department.ID
		rec.DepartmentID = &id
	}
	return rec
}

func (r sellerRecord) toDomain() seller.Seller {
	id := r.ID
	birth := seller.CalendarDate(r.BirthDate)
	salary := r.BaseSalary
	s := seller.Seller{
		ID:         &id,
		Name:       r.Name,
		Email:      r.Email,
		BirthDate:  &birth,
		BaseSalary: &salary,
	}
	switch {
	case r.Department != nil:
		d := r.Department.toDomain()
		s.Department = &d
	case r.DepartmentID != nil:
		depID := *r.DepartmentID
		s.Department = &department.Department{ID: &depID}
	}
	return s
}
