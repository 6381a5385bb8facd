package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/clients/acl/seller"
	"github.com/jsamuelsen11/sellerdesk/internal/app/fanout"
	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	domaindept "github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	domainseller "github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/httpclient"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

const sellersPath = "/api/v1/sellers"

var _ ports.SellerStore = (*SellerClient)(nil)

// SellerClient implements [ports.SellerStore] against the registry API's
// /api/v1/sellers resource. The registry returns department IDs only, so
// reads resolve department names through a [ports.DepartmentStore].
type SellerClient struct {
	req         *Requester
	departments ports.DepartmentStore
	maxWorkers  int
	logger      *slog.Logger
}

// NewSellerClient creates a SellerClient. maxWorkers caps the parallel
// department lookups made while listing sellers.
func NewSellerClient(
	client *httpclient.Client,
	departments ports.DepartmentStore,
	maxWorkers int,
	logger *slog.Logger,
) *SellerClient {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	r := NewRequester(client, logger)
	return &SellerClient{req: r, departments: departments, maxWorkers: maxWorkers, logger: r.logger}
}

// FindAll fetches GET /api/v1/sellers and fills in department names.
func (c *SellerClient) FindAll(ctx context.Context) ([]domainseller.Seller, error) {
	var dto seller.SellerListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, sellersPath, http.StatusOK, nil, &dto); err != nil {
		return nil, storageError("list sellers", err)
	}

	sellers := seller.ToDomainList(dto)
	if err := c.resolveDepartments(ctx, sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

// FindByID fetches GET /api/v1/sellers/{id} with its department.
func (c *SellerClient) FindByID(ctx context.Context, id int64) (*domainseller.Seller, error) {
	var dto seller.SellerDTO
	if err := c.req.Do(ctx, http.MethodGet, sellerPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, storageError("get seller", err)
	}

	s := []domainseller.Seller{seller.ToDomain(&dto)}
	if err := c.resolveDepartments(ctx, s); err != nil {
		return nil, err
	}
	return &s[0], nil
}

// SaveOrUpdate sends POST for new sellers and PUT for existing ones.
func (c *SellerClient) SaveOrUpdate(ctx context.Context, s *domainseller.Seller) error {
	body := seller.ToRequest(s)

	var resp seller.SellerDTO
	if s.IsNew() {
		if err := c.req.Do(ctx, http.MethodPost, sellersPath, http.StatusCreated, body, &resp); err != nil {
			return storageError("create seller", err)
		}
		id := resp.ID
		s.ID = &id
		return nil
	}

	if err := c.req.Do(ctx, http.MethodPut, sellerPath(*s.ID), http.StatusOK, body, &resp); err != nil {
		return storageError("update seller", err)
	}
	return nil
}

// Remove sends DELETE /api/v1/sellers/{id}.
func (c *SellerClient) Remove(ctx context.Context, id int64) error {
	if err := c.req.Do(ctx, http.MethodDelete, sellerPath(id), http.StatusNoContent, nil, nil); err != nil {
		return storageError("delete seller", err)
	}
	return nil
}

// resolveDepartments looks up every distinct department once, in parallel,
// and attaches the results. A department deleted since the seller was read
// stays as a bare ID reference.
func (c *SellerClient) resolveDepartments(ctx context.Context, sellers []domainseller.Seller) error {
	ids := seller.DepartmentIDs(sellers)
	if len(ids) == 0 {
		return nil
	}

	results := fanout.Run(ctx, c.maxWorkers, ids, c.departments.FindByID)

	byID := make(map[int64]*domaindept.Department, len(ids))
	var errs []error
	for i, r := range results {
		switch {
		case r.Err == nil:
			byID[ids[i]] = r.Value
		case errors.Is(r.Err, domain.ErrNotFound):
			c.logger.WarnContext(ctx, "seller references missing department",
				slog.Int64("department_id", ids[i]),
			)
		default:
			errs = append(errs, fmt.Errorf("department %d: %w", ids[i], r.Err))
		}
	}
	if len(errs) > 0 {
		err := errors.Join(errs...)
		c.logger.ErrorContext(ctx, "failed to resolve seller departments",
			slog.String("operation", "resolveDepartments"),
			slog.Int("failed", len(errs)),
			slog.Any("error", err),
		)
		return &domain.StorageError{Op: "resolve departments", Err: err}
	}

	for i := range sellers {
		ref := sellers[i].Department
		if ref == nil || ref.ID == nil {
			continue
		}
		if d, ok := byID[*ref.ID]; ok {
			sellers[i].Department = d
		}
	}
	return nil
}

func sellerPath(id int64) string {
	return fmt.Sprintf("%s/%d", sellersPath, id)
}
