package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tutorportal/internal/domain"
)

type studentService struct {
	api            domain.StudentAPI
	contextTimeout time.Duration
}

// NewStudentService returns the service behind the Students page.
func NewStudentService(api domain.StudentAPI, timeout time.Duration) domain.StudentService {
	return &studentService{api: api, contextTimeout: timeout}
}

func (s *studentService) List(ctx context.Context) ([]domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	students, err := s.api.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

func (s *studentService) Create(ctx context.Context, in *domain.NewStudent) (*domain.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in == nil {
		return nil, fmt.Errorf("%w: student is required", domain.ErrInvalidInput)
	}
	normalized := domain.NewStudent{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Notes:     strings.TrimSpace(in.Notes),
	}
	if normalized.FirstName == "" || normalized.LastName == "" || normalized.Email == "" {
		return nil, fmt.Errorf("%w: first name, last name and email are required", domain.ErrInvalidInput)
	}

	created, err := s.api.CreateStudent(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}
	return created, nil
}
