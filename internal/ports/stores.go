package ports

import (
	"context"

	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
)

// DepartmentStore is the persistence service for departments.
// Implemented by the gorm store and by the remote registry ACL client;
// called by the form and list workflows.
type DepartmentStore interface {
	// FindAll returns every department in the store's natural order.
	FindAll(ctx context.Context) ([]department.Department, error)

	// FindByID returns a single department.
	// Returns domain.ErrNotFound if the department does not exist.
	FindByID(ctx context.Context, id int64) (*department.Department, error)

	// SaveOrUpdate inserts the department when its ID is nil and updates it
	// otherwise. On insert the assigned ID is written back to d.
	// Backend failures are returned as *domain.StorageError.
	SaveOrUpdate(ctx context.Context, d *department.Department) error

	// Remove deletes a department by ID.
	// Returns domain.ErrNotFound if the department does not exist.
	Remove(ctx context.Context, id int64) error
}

// SellerStore is the persistence service for sellers. Returned sellers carry
// their department reference populated.
type SellerStore interface {
	// FindAll returns every seller in the store's natural order.
	FindAll(ctx context.Context) ([]seller.Seller, error)

	// FindByID returns a single seller.
	// Returns domain.ErrNotFound if the seller does not exist.
	FindByID(ctx context.Context, id int64) (*seller.Seller, error)

	// SaveOrUpdate inserts the seller when its ID is nil and updates it
	// otherwise. On insert the assigned ID is written back to s.
	// Backend failures are returned as *domain.StorageError.
	SaveOrUpdate(ctx context.Context, s *seller.Seller) error

	// Remove deletes a seller by ID.
	// Returns domain.ErrNotFound if the seller does not exist.
	Remove(ctx context.Context, id int64) error
}
