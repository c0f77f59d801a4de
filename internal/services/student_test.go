package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tutorportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStudentAPI implements domain.StudentAPI for tests.
type fakeStudentAPI struct {
	students    []domain.Student
	listErr     error
	createErr   error
	lastCreated *domain.NewStudent
	hadDeadline bool
}

func (f *fakeStudentAPI) ListStudents(ctx context.Context) ([]domain.Student, error) {
	_, f.hadDeadline = ctx.Deadline()
	return f.students, f.listErr
}

func (f *fakeStudentAPI) CreateStudent(ctx context.Context, s domain.NewStudent) (*domain.Student, error) {
	f.lastCreated = &s
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Student{ID: "st-1", FirstName: s.FirstName, LastName: s.LastName, Email: s.Email}, nil
}

func TestStudentService_List(t *testing.T) {
	api := &fakeStudentAPI{students: []domain.Student{{ID: "st-1"}}}
	svc := NewStudentService(api, time.Second)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.True(t, api.hadDeadline, "calls carry the service timeout")
}

func TestStudentService_ListError(t *testing.T) {
	api := &fakeStudentAPI{listErr: &domain.APIError{StatusCode: 500}}
	svc := NewStudentService(api, time.Second)

	_, err := svc.List(context.Background())

	var apiErr *domain.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestStudentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		in        *domain.NewStudent
		apiErr    error
		wantErr   error
		checkSent func(t *testing.T, sent *domain.NewStudent)
	}{
		{
			name: "normalizes input",
			in:   &domain.NewStudent{FirstName: " Ada ", LastName: "Lovelace", Email: " ADA@Example.com ", Phone: " 555 "},
			checkSent: func(t *testing.T, sent *domain.NewStudent) {
				assert.Equal(t, "Ada", sent.FirstName)
				assert.Equal(t, "ada@example.com", sent.Email)
				assert.Equal(t, "555", sent.Phone)
			},
		},
		{
			name:    "nil input",
			in:      nil,
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "blank last name",
			in:      &domain.NewStudent{FirstName: "Ada", LastName: "  ", Email: "a@b.co"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "api error",
			in:      &domain.NewStudent{FirstName: "Ada", LastName: "L", Email: "a@b.co"},
			apiErr:  &domain.APIError{StatusCode: 409, Message: "email taken"},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeStudentAPI{createErr: tt.apiErr}
			svc := NewStudentService(api, time.Second)

			created, err := svc.Create(context.Background(), tt.in)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, api.lastCreated, "invalid input never reaches the API")
			case tt.apiErr != nil:
				msg, ok := domain.APIMessage(err)
				assert.True(t, ok)
				assert.Equal(t, "email taken", msg)
			default:
				require.NoError(t, err)
				assert.Equal(t, "st-1", created.ID)
				tt.checkSent(t, api.lastCreated)
			}
		})
	}
}
