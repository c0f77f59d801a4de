package domain

import (
	"context"
	"io"
)

// Resource is a teaching material whose file lives in external storage.
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
}

// NewResource is the create payload for POST /api/resources. File is streamed
// as the multipart "file" part under FileName.
type NewResource struct {
	Title       string `form:"title" validate:"required,notblank"`
	Description string `form:"description" validate:"required,notblank"`
	FileName    string `form:"file" validate:"required"`
	File        io.Reader
}

// ResourceAPI is the resources side of the tutor API.
type ResourceAPI interface {
	ListResources(ctx context.Context) ([]Resource, error)
	CreateResource(ctx context.Context, r NewResource) (*Resource, error)
}

// ResourceService defines the operations behind the Resources page.
type ResourceService interface {
	List(ctx context.Context) ([]Resource, error)
	Create(ctx context.Context, r *NewResource) (*Resource, error)
}
