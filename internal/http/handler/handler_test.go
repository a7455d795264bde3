package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"siteapi/internal/config"
	"siteapi/internal/model"
	"siteapi/internal/service"
	serviceMocks "siteapi/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetLanding(t *testing.T) {
	mockSvc := new(serviceMocks.MockLandingService)
	app := fiber.New()
	app.Get("/api/landing", GetLanding(mockSvc))

	t.Run("success", func(t *testing.T) {
		stored := &model.Landing{Hero: model.Hero{Title: "Welcome"}}
		mockSvc.On("Get", mock.Anything).Return(stored, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/landing", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Landing
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "Welcome", result.Hero.Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/landing", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestSaveLanding(t *testing.T) {
	mockSvc := new(serviceMocks.MockLandingService)
	app := fiber.New()
	app.Post("/api/landing", SaveLanding(mockSvc))

	t.Run("success", func(t *testing.T) {
		saved := &model.Landing{Hero: model.Hero{Title: "New Title"}}
		mockSvc.On("Save", mock.Anything, mock.MatchedBy(func(upd *model.LandingUpdate) bool {
			return upd.Hero != nil && upd.Hero.Title == "New Title"
		})).Return(saved, nil).Once()

		payload := `{"hero":{"title":"New Title"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/landing", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result saveLandingResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.True(t, result.Success)
		assert.Equal(t, "New Title", result.Landing.Hero.Title)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/landing", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "INVALID_BODY", body.Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Save", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/landing", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListGalleryImages(t *testing.T) {
	mockSvc := new(serviceMocks.MockGalleryService)
	app := fiber.New()
	app.Get("/api/gallery", ListGalleryImages(mockSvc))

	t.Run("success", func(t *testing.T) {
		imgs := []model.Image{{ID: uuid.New().String(), URL: "https://cdn.example.com/gallery/a.jpg"}}
		mockSvc.On("List", mock.Anything).Return(imgs, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result []model.Image
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("db error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/gallery", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUploadGalleryImages(t *testing.T) {
	mockSvc := new(serviceMocks.MockGalleryService)
	app := fiber.New()
	app.Post("/api/gallery/upload", UploadGalleryImages(mockSvc))

	newMultipart := func(names ...string) (*bytes.Buffer, string) {
		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		for _, name := range names {
			part, _ := writer.CreateFormFile("images", name)
			part.Write([]byte("fake image bytes"))
		}
		writer.Close()
		return body, writer.FormDataContentType()
	}

	t.Run("success", func(t *testing.T) {
		expected := []model.Image{
			{ID: uuid.New().String(), URL: "https://cdn.example.com/gallery/a.jpg"},
			{ID: uuid.New().String(), URL: "https://cdn.example.com/gallery/b.jpg"},
		}
		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(files []service.UploadFile) bool {
			return len(files) == 2 && files[0].Filename == "a.jpg" && files[1].Filename == "b.jpg"
		})).Return(expected, nil).Once()

		body, ct := newMultipart("a.jpg", "b.jpg")
		req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result []model.Image
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result, 2)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no files", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "FILES_REQUIRED", res.Error.Code)
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, mock.Anything).Return(nil, service.ErrUnsupportedFileType).Once()

		body, ct := newMultipart("notes.pdf")
		req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure maps to 502", func(t *testing.T) {
		mockSvc.On("Upload", mock.Anything, mock.Anything).Return(nil, service.ErrStorageWrite).Once()

		body, ct := newMultipart("a.jpg")
		req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "STORAGE_ERROR", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestUploadGalleryImages_BodyLimit(t *testing.T) {
	// A server configured like cmd/api must accept a single max-size file;
	// Fiber's default 4 MiB body limit would reject it with 413 before the
	// handler runs.
	mockSvc := new(serviceMocks.MockGalleryService)
	app := fiber.New(fiber.Config{
		BodyLimit:    config.UploadConfig{MaxFiles: 10, MaxFileSizeMiB: 5}.BodyLimitBytes(),
		ErrorHandler: ErrorHandler(),
	})
	app.Post("/api/gallery/upload", UploadGalleryImages(mockSvc))

	expected := []model.Image{{ID: uuid.New().String(), URL: "https://cdn.example.com/gallery/large.jpg"}}
	mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(files []service.UploadFile) bool {
		return len(files) == 1 && files[0].Size == int64(5<<20)
	})).Return(expected, nil).Once()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("images", "large.jpg")
	part.Write(bytes.Repeat([]byte("x"), 5<<20))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp, _ := app.Test(req, 5000)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockSvc.AssertExpectations(t)
}

func TestDeleteGalleryImage(t *testing.T) {
	mockSvc := new(serviceMocks.MockGalleryService)
	app := fiber.New()
	app.Delete("/api/gallery/:id", DeleteGalleryImage(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/gallery/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Image deleted successfully", body["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/gallery/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/gallery/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ID", res.Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(errors.New("delete error")).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/gallery/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestCreateEnquiry(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnquiryService)
	app := fiber.New()
	app.Post("/api/enquiries", CreateEnquiry(mockSvc))

	t.Run("success", func(t *testing.T) {
		created := &model.Enquiry{ID: uuid.New().String(), Name: "Asha", Email: "asha@example.com"}
		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(e *model.Enquiry) bool {
			return e.Name == "Asha" && e.Email == "asha@example.com"
		})).Return(created, nil).Once()

		payload := `{"name":"Asha","email":"asha@example.com","course":"Full Stack"}`
		req := httptest.NewRequest(http.MethodPost, "/api/enquiries", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Enquiry
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, created.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing name maps to 400", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrNameRequired).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/enquiries", bytes.NewBufferString(`{"email":"x@y.z"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/enquiries", bytes.NewBufferString("{broken"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_BODY", res.Error.Code)
	})
}

func TestDeleteEnquiry(t *testing.T) {
	mockSvc := new(serviceMocks.MockEnquiryService)
	app := fiber.New()
	app.Delete("/api/enquiries/:id", DeleteEnquiry(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/enquiries/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Delete", mock.Anything, id).Return(service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/enquiries/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListPlacements(t *testing.T) {
	mockSvc := new(serviceMocks.MockPlacementService)
	app := fiber.New()
	app.Get("/api/placements", ListPlacements(mockSvc))

	t.Run("all records", func(t *testing.T) {
		items := []model.Placement{{ID: uuid.New().String(), StudentName: "Ravi"}}
		mockSvc.On("List", mock.Anything, false).Return(items, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/placements", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("active only", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, true).Return([]model.Placement{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/placements?active=true", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestUpdatePlacement(t *testing.T) {
	mockSvc := new(serviceMocks.MockPlacementService)
	app := fiber.New()
	app.Put("/api/placements/:id", UpdatePlacement(mockSvc))

	t.Run("success uses path id", func(t *testing.T) {
		id := uuid.New().String()
		updated := &model.Placement{ID: id, StudentName: "Ravi", Company: "Acme"}
		mockSvc.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Placement) bool {
			return p.ID == id && p.Company == "Acme"
		})).Return(updated, nil).Once()

		payload := `{"id":"ignored","studentName":"Ravi","course":"Data Science","company":"Acme","position":"Analyst"}`
		req := httptest.NewRequest(http.MethodPut, "/api/placements/"+id, bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Update", mock.Anything, mock.Anything).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/api/placements/"+id, bytes.NewBufferString(`{"studentName":"x","course":"c","company":"co","position":"p"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
