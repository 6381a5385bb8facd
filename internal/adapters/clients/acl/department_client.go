package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/clients/acl/department"
	domaindept "github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/httpclient"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

const departmentsPath = "/api/v1/departments"

var _ ports.DepartmentStore = (*DepartmentClient)(nil)

// DepartmentClient implements [ports.DepartmentStore] against the registry
// API's /api/v1/departments resource.
type DepartmentClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewDepartmentClient creates a DepartmentClient. The client's BaseURL
// should point at the registry API root.
func NewDepartmentClient(client *httpclient.Client, logger *slog.Logger) *DepartmentClient {
	r := NewRequester(client, logger)
	return &DepartmentClient{req: r, logger: r.logger}
}

// FindAll fetches GET /api/v1/departments in the registry's order.
func (c *DepartmentClient) FindAll(ctx context.Context) ([]domaindept.Department, error) {
	var dto department.DepartmentListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, departmentsPath, http.StatusOK, nil, &dto); err != nil {
		return nil, storageError("list departments", err)
	}
	return department.ToDomainList(dto), nil
}

// FindByID fetches GET /api/v1/departments/{id}.
// Returns [domain.ErrNotFound] when the registry answers 404.
func (c *DepartmentClient) FindByID(ctx context.Context, id int64) (*domaindept.Department, error) {
	var dto department.DepartmentDTO
	if err := c.req.Do(ctx, http.MethodGet, departmentPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, storageError("get department", err)
	}
	d := department.ToDomain(&dto)
	return &d, nil
}

// SaveOrUpdate sends POST for new departments and PUT for existing ones.
// The ID assigned by the registry is written back to d.
func (c *DepartmentClient) SaveOrUpdate(ctx context.Context, d *domaindept.Department) error {
	body := department.ToRequest(d)

	var resp department.DepartmentDTO
	if d.IsNew() {
		if err := c.req.Do(ctx, http.MethodPost, departmentsPath, http.StatusCreated, body, &resp); err != nil {
			return storageError("create department", err)
		}
		id := resp.ID
		d.ID = &id
		return nil
	}

	if err := c.req.Do(ctx, http.MethodPut, departmentPath(*d.ID), http.StatusOK, body, &resp); err != nil {
		return storageError("update department", err)
	}
	return nil
}

// Remove sends DELETE /api/v1/departments/{id}.
func (c *DepartmentClient) Remove(ctx context.Context, id int64) error {
	if err := c.req.Do(ctx, http.MethodDelete, departmentPath(id), http.StatusNoContent, nil, nil); err != nil {
		return storageError("delete department", err)
	}
	return nil
}

func departmentPath(id int64) string {
	return fmt.Sprintf("%s/%d", departmentsPath, id)
}
