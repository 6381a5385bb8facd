// Package app wires the form and list workflows to the store ports and
// exposes them to the inbound adapters.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/sellerdesk/internal/app/form"
	"github.com/jsamuelsen11/sellerdesk/internal/app/listing"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

// Registry owns the shared list views and builds a fresh form per editing
// session. Saving a department refreshes both lists because seller rows show
// department names.
type Registry struct {
	departments ports.DepartmentStore
	sellers     ports.SellerStore
	logger      *slog.Logger
	recorder    form.Recorder

	departmentList *listing.View[department.Department]
	sellerList     *listing.View[seller.Seller]
}

// NewRegistry creates a Registry. recorder may be nil. refreshTimeout bounds
// the list refresh that follows a save; zero selects the listing default.
func NewRegistry(
	departments ports.DepartmentStore,
	sellers ports.SellerStore,
	logger *slog.Logger,
	recorder form.Recorder,
	refreshTimeout time.Duration,
) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	listOpts := []listing.Option{
		listing.WithLogger(logger),
		listing.WithRefreshTimeout(refreshTimeout),
	}
	return &Registry{
		departments:    departments,
		sellers:        sellers,
		logger:         logger,
		recorder:       recorder,
		departmentList: listing.NewDepartmentList(departments, listOpts...),
		sellerList:     listing.NewSellerList(sellers, listOpts...),
	}
}

// Departments returns the shared department list.
func (r *Registry) Departments() *listing.View[department.Department] {
	return r.departmentList
}

// Sellers returns the shared seller list.
func (r *Registry) Sellers() *listing.View[seller.Seller] {
	return r.sellerList
}

// DepartmentForm builds a department form hosted by dialog.
func (r *Registry) DepartmentForm(dialog ports.Dialog) *form.DepartmentForm {
	f := form.NewDepartmentForm(r.departments, dialog, r.formOptions()...)
	f.Subscribe(r.departmentList.OnDataChanged)
	f.Subscribe(r.sellerList.OnDataChanged)
	return f
}

// SellerForm builds a seller form hosted by dialog. The caller still has to
// load its department options.
func (r *Registry) SellerForm(dialog ports.Dialog) *form.SellerForm {
	f := form.NewSellerForm(r.sellers, r.departments, dialog, r.formOptions()...)
	f.Subscribe(r.sellerList.OnDataChanged)
	return f
}

// Department returns a single department.
func (r *Registry) Department(ctx context.Context, id int64) (*department.Department, error) {
	r.logger.InfoContext(ctx, "fetching department", slog.Int64("id", id))

	d, err := r.departments.FindByID(ctx, id)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to fetch department",
			slog.String("operation", "Department"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return d, nil
}

// Seller returns a single seller with its department populated.
func (r *Registry) Seller(ctx context.Context, id int64) (*seller.Seller, error) {
	r.logger.InfoContext(ctx, "fetching seller", slog.Int64("id", id))

	s, err := r.sellers.FindByID(ctx, id)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to fetch seller",
			slog.String("operation", "Seller"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return s, nil
}

// RemoveDepartment deletes a department and refreshes both lists.
func (r *Registry) RemoveDepartment(ctx context.Context, id int64) error {
	r.logger.InfoContext(ctx, "removing department", slog.Int64("id", id))

	if err := r.departments.Remove(ctx, id); err != nil {
		r.logger.ErrorContext(ctx, "failed to remove department",
			slog.String("operation", "RemoveDepartment"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	r.departmentList.OnDataChanged()
	r.sellerList.OnDataChanged()
	return nil
}

// RemoveSeller deletes a seller and refreshes the seller list.
func (r *Registry) RemoveSeller(ctx context.Context, id int64) error {
	r.logger.InfoContext(ctx, "removing seller", slog.Int64("id", id))

	if err := r.sellers.Remove(ctx, id); err != nil {
		r.logger.ErrorContext(ctx, "failed to remove seller",
			slog.String("operation", "RemoveSeller"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	r.sellerList.OnDataChanged()
	return nil
}

func (r *Registry) formOptions() []form.Option {
	opts := []form.Option{form.WithLogger(r.logger)}
	if r.recorder != nil {
		opts = append(opts, form.WithRecorder(r.recorder))
	}
	return opts
}
