package tutorapi

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"tutorportal/internal/domain"
)

var _ domain.ResourceAPI = (*Client)(nil)

// ListResources calls GET /api/resources.
func (c *Client) ListResources(ctx context.Context) ([]domain.Resource, error) {
	return getList[domain.Resource](ctx, c, "/api/resources", nil)
}

// CreateResource calls POST /api/resources with a multipart body holding
// title, description and file. The file is streamed, never buffered whole.
func (c *Client) CreateResource(ctx context.Context, r domain.NewResource) (*domain.Resource, error) {
	if r.File == nil {
		return nil, fmt.Errorf("%w: file is required", domain.ErrInvalidInput)
	}
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeResourceForm(mw, r))
	}()

	req, err := c.newRequest(ctx, http.MethodPost, "/api/resources", nil, pr, mw.FormDataContentType())
	if err != nil {
		pr.CloseWithError(err)
		return nil, err
	}
	var created domain.Resource
	if err := c.send(req, &created, http.StatusOK, http.StatusCreated); err != nil {
		pr.CloseWithError(err)
		return nil, err
	}
	return &created, nil
}

func writeResourceForm(mw *multipart.Writer, r domain.NewResource) error {
	if err := mw.WriteField("title", r.Title); err != nil {
		return err
	}
	if err := mw.WriteField("description", r.Description); err != nil {
		return err
	}
	part, err := mw.CreateFormFile("file", r.FileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r.File); err != nil {
		return fmt.Errorf("stream file: %w", err)
	}
	return mw.Close()
}
