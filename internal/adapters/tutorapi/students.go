package tutorapi

import (
	"context"
	"net/http"

	"tutorportal/internal/domain"
)

var _ domain.StudentAPI = (*Client)(nil)

// ListStudents calls GET /api/students.
func (c *Client) ListStudents(ctx context.Context) ([]domain.Student, error) {
	return getList[domain.Student](ctx, c, "/api/students", nil)
}

// CreateStudent calls POST /api/students. Only 201 Created counts as success.
func (c *Client) CreateStudent(ctx context.Context, s domain.NewStudent) (*domain.Student, error) {
	var created domain.Student
	if err := c.postJSON(ctx, "/api/students", s, &created, http.StatusCreated); err != nil {
		return nil, err
	}
	return &created, nil
}
