package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/normalize"
)

type EmployeeFilter struct {
	Search     string
	Department string
}

func (f EmployeeFilter) values() url.Values {
	q := url.Values{}
	setParam(q, "search", f.Search)
	setParam(q, "department", f.Department)
	return q
}

func (c *HTTPClient) ListEmployees(ctx context.Context, f EmployeeFilter) ([]models.Employee, error) {
	var remote []normalize.RemoteEmployee
	found, err := c.do(ctx, http.MethodGet, "/api/employees", f.values(), nil, &remote)
	if err != nil || !found {
		return nil, err
	}

	out := make([]models.Employee, 0, len(remote))
	for _, r := range remote {
		out = append(out, normalize.EmployeeFromRemote(r))
	}
	return out, nil
}

func (c *HTTPClient) Departments(ctx context.Context) ([]string, error) {
	var names []string
	found, err := c.do(ctx, http.MethodGet, "/api/employees/departments", nil, nil, &names)
	if err != nil || !found {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (c *HTTPClient) CreateEmployee(ctx context.Context, e models.Employee) (*models.Employee, error) {
	if !c.Configured() {
		return nil, nil
	}
	return c.employeeCall(ctx, http.MethodPost, "/api/employees", normalize.EmployeeToCreate(e, c.now()))
}

// UpdateEmployee sends e to PUT /api/employees/{remoteID}. An empty remoteID
// means the record was never mirrored; nothing is sent.
func (c *HTTPClient) UpdateEmployee(ctx context.Context, remoteID string, e models.Employee) (*models.Employee, error) {
	if remoteID == "" {
		return nil, nil
	}
	return c.employeeCall(ctx, http.MethodPut, "/api/employees/"+url.PathEscape(remoteID), normalize.EmployeeToUpdate(e))
}

func (c *HTTPClient) DeleteEmployee(ctx context.Context, remoteID string) (bool, error) {
	if remoteID == "" || !c.Configured() {
		return false, nil
	}
	if _, err := c.do(ctx, http.MethodDelete, "/api/employees/"+url.PathEscape(remoteID), nil, nil, nil); err != nil {
		return false, err
	}
	return true, nil
}

func (c *HTTPClient) employeeCall(ctx context.Context, method, path string, body any) (*models.Employee, error) {
	var r normalize.RemoteEmployee
	found, err := c.do(ctx, method, path, nil, body, &r)
	if err != nil || !found {
		return nil, err
	}
	e := normalize.EmployeeFromRemote(r)
	return &e, nil
}
