package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"tutorportal/internal/delivery/http/helpers"
	"tutorportal/internal/delivery/http/views"
	"tutorportal/internal/domain"
)

// Messages shown on the Students page.
const (
	MsgFetchStudentsFailed = "Failed to fetch students. Please try again later."
	MsgStudentCreated      = "Student created successfully!"
	msgCreateStudentFailed = "Failed to create student"
)

// StudentsPage is the model of the Students page.
type StudentsPage struct {
	Students []domain.Student
	Form     domain.NewStudent
}

type StudentController struct {
	Logger  *slog.Logger
	Service domain.StudentService
	Views   PageRenderer
}

func NewStudentController(logger *slog.Logger, svc domain.StudentService, v PageRenderer) *StudentController {
	return &StudentController{Logger: logger, Service: svc, Views: v}
}

// List renders the student list and the create form.
func (c *StudentController) List(w http.ResponseWriter, r *http.Request) {
	page := views.Page{Title: "Students", Path: "/students"}
	students, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		page.Error = MsgFetchStudentsFailed
	}
	page.Data = StudentsPage{Students: students}
	c.Views.Render(w, http.StatusOK, views.PageStudents, page)
}

// Create validates the form and creates the student. The created student is
// appended to the list already shown and the form is cleared; on failure the
// typed values stay in the form.
func (c *StudentController) Create(w http.ResponseWriter, r *http.Request) {
	page := views.Page{Title: "Students", Path: "/students"}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := domain.NewStudent{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Notes:     r.PostFormValue("notes"),
	}

	students, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}

	if msgs := helpers.ValidateStruct(form); len(msgs) > 0 {
		page.Error = msgCreateStudentFailed + ": " + strings.Join(msgs, ", ")
		page.Data = StudentsPage{Students: students, Form: form}
		c.Views.Render(w, http.StatusBadRequest, views.PageStudents, page)
		return
	}

	created, err := c.Service.Create(r.Context(), &form)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		page.Error = failureMessage(msgCreateStudentFailed, err)
		page.Data = StudentsPage{Students: students, Form: form}
		c.Views.Render(w, statusFor(err), views.PageStudents, page)
		return
	}

	page.Flash = MsgStudentCreated
	page.Data = StudentsPage{Students: append(students, *created)}
	c.Views.Render(w, http.StatusCreated, views.PageStudents, page)
}
