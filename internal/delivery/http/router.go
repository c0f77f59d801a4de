package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"tutorportal/internal/delivery/http/controllers"
)

// Controllers bundles the handlers mounted by NewRouter.
type Controllers struct {
	Dashboard *controllers.DashboardController
	Students  *controllers.StudentController
	Resources *controllers.ResourceController
	Invoices  *controllers.InvoiceController
	Schedule  *controllers.ScheduleController
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", c.Dashboard.Show)
	mux.HandleFunc("GET /students", c.Students.List)
	mux.HandleFunc("POST /students", c.Students.Create)
	mux.HandleFunc("GET /resources", c.Resources.List)
	mux.HandleFunc("POST /resources", c.Resources.Create)
	mux.HandleFunc("GET /invoices", c.Invoices.List)
	mux.HandleFunc("POST /invoices", c.Invoices.Create)
	mux.HandleFunc("POST /invoices/{id}/pay", c.Invoices.Pay)

	// Schedule
	mux.HandleFunc("GET /schedule", c.Schedule.Show)
	mux.HandleFunc("GET /schedule/prev", c.Schedule.Prev)
	mux.HandleFunc("GET /schedule/next", c.Schedule.Next)
	mux.HandleFunc("GET /schedule/book", c.Schedule.SelectSlot)
	mux.HandleFunc("POST /schedule/book", c.Schedule.Book)

	// JSON and feeds
	mux.HandleFunc("GET /schedule/week", c.Schedule.Week)
	mux.HandleFunc("GET /schedule.ics", c.Schedule.Calendar)
	mux.HandleFunc("GET /healthz", controllers.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
