package domain

import "context"

// Student is a tutee as stored by the tutor API.
// swagger:model Student
type Student struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
}

// FullName returns "First Last".
func (s Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// NewStudent is the create payload for POST /api/students.
type NewStudent struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required,notblank"`
	LastName  string `json:"lastName" form:"lastName" validate:"required,notblank"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Phone     string `json:"phone" form:"phone"`
	Notes     string `json:"notes" form:"notes"`
}

// StudentAPI is the students side of the tutor API.
type StudentAPI interface {
	ListStudents(ctx context.Context) ([]Student, error)
	CreateStudent(ctx context.Context, s NewStudent) (*Student, error)
}

// StudentService defines the operations behind the Students page.
type StudentService interface {
	List(ctx context.Context) ([]Student, error)
	Create(ctx context.Context, s *NewStudent) (*Student, error)
}
