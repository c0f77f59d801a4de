package controllers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"tutorportal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, fields map[string]string, fileName, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/resources", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestResourceController_List(t *testing.T) {
	svc := &fakeResourceService{resources: []domain.Resource{{ID: "r1", Title: "Fractions", Description: "Worksheet", FileURL: "https://files.example/r1.pdf"}}}
	c := NewResourceController(testLogger, svc, newTestViews(t))
	rr := httptest.NewRecorder()

	c.List(rr, httptest.NewRequest(http.MethodGet, "/resources?added=1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Fractions")
	assert.Contains(t, rr.Body.String(), "https://files.example/r1.pdf")
	assert.Contains(t, rr.Body.String(), MsgResourceAdded)
}

func TestResourceController_ListFailure(t *testing.T) {
	c := NewResourceController(testLogger, &fakeResourceService{listErr: errors.New("down")}, newTestViews(t))
	rr := httptest.NewRecorder()

	c.List(rr, httptest.NewRequest(http.MethodGet, "/resources", nil))

	assert.Contains(t, rr.Body.String(), MsgFetchResourcesFailed)
}

func TestResourceController_Create(t *testing.T) {
	tests := []struct {
		name         string
		fields       map[string]string
		fileName     string
		createErr    error
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{
			name:         "success redirects",
			fields:       map[string]string{"title": "Fractions", "description": "Worksheet"},
			fileName:     "fractions.pdf",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/resources?added=1",
		},
		{
			name:       "missing file",
			fields:     map[string]string{"title": "Fractions", "description": "Worksheet"},
			wantStatus: http.StatusBadRequest,
			wantBody:   "file is a required field",
		},
		{
			name:       "blank title",
			fields:     map[string]string{"title": " ", "description": "Worksheet"},
			fileName:   "fractions.pdf",
			wantStatus: http.StatusBadRequest,
			wantBody:   "title cannot be blank",
		},
		{
			name:       "api failure keeps typed values",
			fields:     map[string]string{"title": "Fractions", "description": "Worksheet"},
			fileName:   "fractions.pdf",
			createErr:  &domain.APIError{StatusCode: http.StatusRequestEntityTooLarge, Message: "file too large"},
			wantStatus: http.StatusBadGateway,
			wantBody:   "Failed to add resource: file too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeResourceService{createErr: tt.createErr}
			c := NewResourceController(testLogger, svc, newTestViews(t))
			rr := httptest.NewRecorder()

			c.Create(rr, multipartRequest(t, tt.fields, tt.fileName, "pdf-bytes"))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
				require.NotNil(t, svc.lastCreate)
				assert.Equal(t, "fractions.pdf", svc.lastCreate.FileName)
				assert.Equal(t, "pdf-bytes", svc.lastContent)
			}
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}
