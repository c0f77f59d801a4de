package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"tutorportal/internal/delivery/http/helpers"
	"tutorportal/internal/delivery/http/views"
	"tutorportal/internal/domain"
)

// Messages shown on the Resources page.
const (
	MsgFetchResourcesFailed = "Failed to fetch resources. Please try again later."
	MsgResourceAdded        = "Resource added successfully!"
	msgAddResourceFailed    = "Failed to add resource"
)

// maxUploadMemory is the part of a multipart upload kept in memory; the rest
// spills to temporary files.
const maxUploadMemory = 32 << 20

// ResourceForm holds the typed fields of the upload form.
type ResourceForm struct {
	Title       string
	Description string
}

// ResourcesPage is the model of the Resources page.
type ResourcesPage struct {
	Resources []domain.Resource
	Form      ResourceForm
}

type ResourceController struct {
	Logger  *slog.Logger
	Service domain.ResourceService
	Views   PageRenderer
}

func NewResourceController(logger *slog.Logger, svc domain.ResourceService, v PageRenderer) *ResourceController {
	return &ResourceController{Logger: logger, Service: svc, Views: v}
}

// List renders the resource list and the upload form.
func (c *ResourceController) List(w http.ResponseWriter, r *http.Request) {
	page := views.Page{Title: "Resources", Path: "/resources"}
	if r.URL.Query().Get("added") == "1" {
		page.Flash = MsgResourceAdded
	}
	c.renderList(w, r, http.StatusOK, page, ResourceForm{})
}

// Create streams the uploaded file to the tutor API and redirects back to the
// list on success.
func (c *ResourceController) Create(w http.ResponseWriter, r *http.Request) {
	page := views.Page{Title: "Resources", Path: "/resources"}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	form := ResourceForm{Title: r.FormValue("title"), Description: r.FormValue("description")}
	in := domain.NewResource{Title: form.Title, Description: form.Description}
	file, hdr, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		in.FileName = hdr.Filename
		in.File = file
	}

	if msgs := helpers.ValidateStruct(in); len(msgs) > 0 {
		page.Error = msgAddResourceFailed + ": " + strings.Join(msgs, ", ")
		c.renderList(w, r, http.StatusBadRequest, page, form)
		return
	}

	if _, err := c.Service.Create(r.Context(), &in); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		page.Error = failureMessage(msgAddResourceFailed, err)
		c.renderList(w, r, statusFor(err), page, form)
		return
	}
	http.Redirect(w, r, "/resources?added=1", http.StatusSeeOther)
}

func (c *ResourceController) renderList(w http.ResponseWriter, r *http.Request, status int, page views.Page, form ResourceForm) {
	resources, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		if page.Error == "" {
			page.Error = MsgFetchResourcesFailed
		}
	}
	page.Data = ResourcesPage{Resources: resources, Form: form}
	c.Views.Render(w, status, views.PageResources, page)
}
