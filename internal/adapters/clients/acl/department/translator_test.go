package department

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
)

func TestToDomainList(t *testing.T) {
	t.Parallel()

	got := ToDomainList(DepartmentListResponseDTO{
		Departments: []DepartmentDTO{{ID: 2, Name: "Toys"}, {ID: 1, Name: "Books"}},
		Count:       2,
	})

	two, one := int64(2), int64(1)
	want := []department.Department{{ID: &two, Name: "Toys"}, {ID: &one, Name: "Books"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToDomainList() mismatch (-want +got):\n%s", diff)
	}
}

func TestToDomainList_Empty(t *testing.T) {
	t.Parallel()

	got := ToDomainList(DepartmentListResponseDTO{})
	if got == nil || len(got) != 0 {
		t.Errorf("ToDomainList(empty) = %v, want empty non-nil slice", got)
	}
}

func TestToRequest(t *testing.T) {
	t.Parallel()

	id := int64(5)
	got := ToRequest(&department.Department{ID: &id, Name: "Garden"})
	if got.Name != "Garden" {
		t.Errorf("ToRequest().Name = %q, want %q", got.Name, "Garden")
	}
}
