package seller

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

func int64Ptr(v int64) *int64 { return &v }

func TestToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  SellerDTO
		want seller.Seller
	}{
		{
			name: "complete seller",
			dto: SellerDTO{
				ID: 3, Name: "Ann", Email: "ann@example.com",
				BirthDate: "1991-07-14", BaseSalary: "2100.50", DepartmentID: int64Ptr(2),
			},
			want: func() seller.Seller {
				birth := time.Date(1991, 7, 14, 0, 0, 0, 0, time.UTC)
				salary := decimal.RequireFromString("2100.50")
				return seller.Seller{
					ID: int64Ptr(3), Name: "Ann", Email: "ann@example.com",
					BirthDate: &birth, BaseSalary: &salary,
					Department: &department.Department{ID: int64Ptr(2)},
				}
			}(),
		},
		{
			name: "malformed values become nil",
			dto:  SellerDTO{ID: 4, Name: "Bob", BirthDate: "14/07/1991", BaseSalary: "lots"},
			want: seller.Seller{ID: int64Ptr(4), Name: "Bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ToDomain(&tt.dto)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ToDomain() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToRequest(t *testing.T) {
	t.Parallel()

	birth := time.Date(1991, 7, 14, 0, 0, 0, 0, time.UTC)
	salary := decimal.RequireFromString("2100.5")
	got := ToRequest(&seller.Seller{
		ID: int64Ptr(3), Name: "Ann", Email: "ann@example.com",
		BirthDate: &birth, BaseSalary: &salary,
		Department: &department.Department{ID: int64Ptr(2), Name: "Books"},
	})

	want := SellerRequestDTO{
		Name: "Ann", Email: "ann@example.com",
		BirthDate: "1991-07-14", BaseSalary: "2100.50", DepartmentID: int64Ptr(2),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToRequest() mismatch (-want +got):\n%s", diff)
	}
}

func TestDepartmentIDs(t *testing.T) {
	t.Parallel()

	sellers := []seller.Seller{
		{Department: &department.Department{ID: int64Ptr(2)}},
		{Department: nil},
		{Department: &department.Department{ID: int64Ptr(1)}},
		{Department: &department.Department{ID: int64Ptr(2)}},
	}

	if diff := cmp.Diff([]int64{2, 1}, DepartmentIDs(sellers)); diff != "" {
		t.Errorf("DepartmentIDs() mismatch (-want +got):\n%s", diff)
	}
}
