package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tutorportal/internal/domain"
)

type resourceService struct {
	api            domain.ResourceAPI
	contextTimeout time.Duration
}

// NewResourceService returns the service behind the Resources page.
func NewResourceService(api domain.ResourceAPI, timeout time.Duration) domain.ResourceService {
	return &resourceService{api: api, contextTimeout: timeout}
}

func (s *resourceService) List(ctx context.Context) ([]domain.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	resources, err := s.api.ListResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

// Create uploads a resource. The timeout covers the whole upload.
func (s *resourceService) Create(ctx context.Context, in *domain.NewResource) (*domain.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in == nil || in.File == nil {
		return nil, fmt.Errorf("%w: file is required", domain.ErrInvalidInput)
	}
	r := *in
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	if r.Title == "" || r.Description == "" {
		return nil, fmt.Errorf("%w: title and description are required", domain.ErrInvalidInput)
	}

	created, err := s.api.CreateResource(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return created, nil
}
