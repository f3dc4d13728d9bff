package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"fileuploader/internal/http/middleware"
	"fileuploader/internal/model"
	"fileuploader/internal/repository/memory"
	"fileuploader/internal/service"
	serviceMocks "fileuploader/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testApp = "fileuploaderApp"

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.New()
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, nil, Services{
		Cars:      service.NewCarService(store.Cars()),
		Documents: service.NewDocumentService(store.Documents(), store.Cars(), store.Contents()),
		Contents:  service.NewContentService(nil, store.Contents(), store.Documents()),
	}, Alert{App: testApp})
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body, contentType string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, b
}

func sendJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	return send(t, app, method, path, body, fiber.MIMEApplicationJSON)
}

func decode(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), string(b))
	return m
}

func errorCode(t *testing.T, b []byte) string {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.Unmarshal(b, &body), string(b))
	return body.Error.Code
}

// createID posts body to path and returns the new id.
func createID(t *testing.T, app *fiber.App, path, body string) int64 {
	t.Helper()
	resp, b := sendJSON(t, app, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(b))
	return int64(decode(t, b)["id"].(float64))
}

// countItems lists path and returns the number of records.
func countItems(t *testing.T, app *fiber.App, path string) int {
	t.Helper()
	resp, b := send(t, app, http.MethodGet, path, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(b, &items))
	return len(items)
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

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

	t.Run("no database", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCarRoutes(t *testing.T) {
	app := newTestApp(t)

	t.Run("create", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/cars", `{"model":"AAAAAAAAAA"}`)

		require.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decode(t, b)
		id := int64(body["id"].(float64))
		assert.Equal(t, "AAAAAAAAAA", body["model"])
		assert.Equal(t, "/api/cars/"+itoa(id), resp.Header.Get("Location"))
		assert.Equal(t, testApp+".car.created", resp.Header.Get("X-"+testApp+"-alert"))
		assert.Equal(t, itoa(id), resp.Header.Get("X-"+testApp+"-params"))
	})

	t.Run("create with existing id", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/cars", `{"id":1,"model":"AAAAAAAAAA"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID_EXISTS", errorCode(t, b))
	})

	t.Run("model is required", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/cars", `{}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, b))
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/cars", `{"model":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "BAD_REQUEST", errorCode(t, b))
	})

	t.Run("update id mismatch", func(t *testing.T) {
		id := createID(t, app, "/api/cars", `{"model":"A"}`)

		resp, b := sendJSON(t, app, http.MethodPut, "/api/cars/"+itoa(id), `{"id":`+itoa(id+100)+`,"model":"B"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID_INVALID", errorCode(t, b))
	})

	t.Run("update without body id", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPut, "/api/cars/1", `{"model":"B"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID_NULL", errorCode(t, b))
	})

	t.Run("update absent car", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPut, "/api/cars/999", `{"id":999,"model":"B"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "ID_NOT_FOUND", errorCode(t, b))
	})

	t.Run("update", func(t *testing.T) {
		id := createID(t, app, "/api/cars", `{"model":"A"}`)

		resp, b := sendJSON(t, app, http.MethodPut, "/api/cars/"+itoa(id), `{"id":`+itoa(id)+`,"model":"BBBBBBBBBB"}`)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "BBBBBBBBBB", decode(t, b)["model"])
		assert.Equal(t, testApp+".car.updated", resp.Header.Get("X-"+testApp+"-alert"))
	})

	t.Run("update without path id", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPut, "/api/cars", `{"id":1,"model":"B"}`)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", errorCode(t, b))
	})

	t.Run("patch absent car", func(t *testing.T) {
		resp, b := send(t, app, http.MethodPatch, "/api/cars/999", `{"id":999}`, mimeMergePatchJSON)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", errorCode(t, b))
	})

	t.Run("patch with other media type", func(t *testing.T) {
		resp, b := send(t, app, http.MethodPatch, "/api/cars/1", `{"id":1}`, fiber.MIMETextPlain)

		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
		assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", errorCode(t, b))
	})

	t.Run("patch", func(t *testing.T) {
		id := createID(t, app, "/api/cars", `{"model":"A"}`)

		resp, b := send(t, app, http.MethodPatch, "/api/cars/"+itoa(id), `{"id":`+itoa(id)+`,"model":"C"}`, mimeMergePatchJSON+"; charset=utf-8")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "C", decode(t, b)["model"])
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, b := send(t, app, http.MethodGet, "/api/cars/abc", "", "")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", errorCode(t, b))
	})

	t.Run("get absent car", func(t *testing.T) {
		resp, b := send(t, app, http.MethodGet, "/api/cars/999", "", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", errorCode(t, b))
	})

	t.Run("list", func(t *testing.T) {
		resp, b := send(t, app, http.MethodGet, "/api/cars", "", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var cars []map[string]any
		require.NoError(t, json.Unmarshal(b, &cars))
		assert.NotEmpty(t, cars)
	})

	t.Run("delete absent car", func(t *testing.T) {
		resp, _ := send(t, app, http.MethodDelete, "/api/cars/12345", "", "")

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, testApp+".car.deleted", resp.Header.Get("X-"+testApp+"-alert"))
		assert.Equal(t, "12345", resp.Header.Get("X-"+testApp+"-params"))
	})
}

func TestDocumentRoutes(t *testing.T) {
	app := newTestApp(t)
	carID := createID(t, app, "/api/cars", `{"model":"Volvo"}`)

	t.Run("car is required", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/documents", `{"title":"t","size":1}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, b))
	})

	t.Run("negative size", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/documents", `{"title":"t","size":-1,"car":{"id":`+itoa(carID)+`}}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, b))
	})

	t.Run("unknown car", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/documents", `{"title":"t","size":1,"car":{"id":999}}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "REFERENCE_NOT_FOUND", errorCode(t, b))
	})

	t.Run("create and read back through the car", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/documents", `{"title":"AAAAAAAAAA","size":1,"mimeType":"application/pdf","car":{"id":`+itoa(carID)+`}}`)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(b))
		doc := decode(t, b)
		docID := int64(doc["id"].(float64))
		assert.Equal(t, "/api/documents/"+itoa(docID), resp.Header.Get("Location"))
		assert.Nil(t, doc["content"])
		assert.Equal(t, "Volvo", doc["car"].(map[string]any)["model"])

		resp, b = send(t, app, http.MethodGet, "/api/cars/"+itoa(carID), "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		docs := decode(t, b)["documents"].([]any)
		require.Len(t, docs, 1)
		assert.Equal(t, "AAAAAAAAAA", docs[0].(map[string]any)["title"])
	})

	t.Run("deleting a car with documents fails", func(t *testing.T) {
		resp, b := send(t, app, http.MethodDelete, "/api/cars/"+itoa(carID), "", "")

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, b))
	})

	t.Run("patch keeps absent fields", func(t *testing.T) {
		docID := createID(t, app, "/api/documents", `{"title":"keep","size":5,"car":{"id":`+itoa(carID)+`}}`)

		resp, b := send(t, app, http.MethodPatch, "/api/documents/"+itoa(docID), `{"id":`+itoa(docID)+`,"size":7}`, fiber.MIMEApplicationJSON)

		require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
		doc := decode(t, b)
		assert.Equal(t, "keep", doc["title"])
		assert.Equal(t, float64(7), doc["size"])
	})
}

func TestContentRoutes(t *testing.T) {
	app := newTestApp(t)
	carID := createID(t, app, "/api/cars", `{"model":"Volvo"}`)
	docID := createID(t, app, "/api/documents", `{"title":"manual","size":1,"car":{"id":`+itoa(carID)+`}}`)

	var contentID int64

	t.Run("create attaches the document", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/contents", `{"data":"MA==","dataContentType":"image/jpg","document":{"id":`+itoa(docID)+`}}`)

		require.Equal(t, http.StatusCreated, resp.StatusCode, string(b))
		body := decode(t, b)
		contentID = int64(body["id"].(float64))
		assert.Equal(t, "/api/contents/"+itoa(contentID), resp.Header.Get("Location"))
		assert.Equal(t, "MA==", body["data"])
		assert.Equal(t, float64(docID), body["document"].(map[string]any)["id"])

		resp, b = send(t, app, http.MethodGet, "/api/documents/"+itoa(docID), "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(contentID), decode(t, b)["content"].(map[string]any)["id"])
	})

	t.Run("data is required", func(t *testing.T) {
		resp, b := sendJSON(t, app, http.MethodPost, "/api/contents", `{"dataContentType":"image/jpg"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, b))
	})

	t.Run("patch data only", func(t *testing.T) {
		resp, b := send(t, app, http.MethodPatch, "/api/contents/"+itoa(contentID), `{"id":`+itoa(contentID)+`,"data":"MQ=="}`, mimeMergePatchJSON)

		require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
		body := decode(t, b)
		assert.Equal(t, "MQ==", body["data"])
		assert.Equal(t, "image/jpg", body["dataContentType"])
		assert.Equal(t, testApp+".content.updated", resp.Header.Get("X-"+testApp+"-alert"))
	})

	t.Run("patch content type only keeps data", func(t *testing.T) {
		resp, b := send(t, app, http.MethodPatch, "/api/contents/"+itoa(contentID), `{"id":`+itoa(contentID)+`,"dataContentType":"image/png"}`, mimeMergePatchJSON)

		require.Equal(t, http.StatusOK, resp.StatusCode, string(b))
		body := decode(t, b)
		assert.Equal(t, "MQ==", body["data"])
		assert.Equal(t, "image/png", body["dataContentType"])
	})

	t.Run("filter orphans", func(t *testing.T) {
		orphanID := createID(t, app, "/api/contents", `{"data":"MQ==","dataContentType":"image/png"}`)

		resp, b := send(t, app, http.MethodGet, "/api/contents?filter=document-is-null", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var items []map[string]any
		require.NoError(t, json.Unmarshal(b, &items))
		require.Len(t, items, 1)
		assert.Equal(t, float64(orphanID), items[0]["id"])

		resp, b = send(t, app, http.MethodGet, "/api/contents", "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NoError(t, json.Unmarshal(b, &items))
		assert.Len(t, items, 2)
	})

	t.Run("delete absent content", func(t *testing.T) {
		before := countItems(t, app, "/api/contents")

		resp, _ := send(t, app, http.MethodDelete, "/api/contents/999999", "", "")

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, before, countItems(t, app, "/api/contents"))
	})

	t.Run("delete clears the document reference", func(t *testing.T) {
		resp, _ := send(t, app, http.MethodDelete, "/api/contents/"+itoa(contentID), "", "")
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, b := send(t, app, http.MethodGet, "/api/documents/"+itoa(docID), "", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, decode(t, b)["content"])
	})
}

func TestServiceFailures(t *testing.T) {
	mockSvc := new(serviceMocks.MockCarService)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/api/cars", ListCars(mockSvc))
	app.Get("/api/cars/:id", GetCar(mockSvc))
	app.Delete("/api/cars/:id", DeleteCar(mockSvc, Alert{}))

	t.Run("list error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

		resp, b := send(t, app, http.MethodGet, "/api/cars", "", "")

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, b))
		assert.NotContains(t, string(b), "db down")
	})

	t.Run("get", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, int64(3)).Return(&model.Car{ID: model.Int64(3), Model: "Saab"}, nil).Once()

		resp, b := send(t, app, http.MethodGet, "/api/cars/3", "", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"id":3,"model":"Saab"}`, string(b))
	})

	t.Run("delete without alert app", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

		resp, _ := send(t, app, http.MethodDelete, "/api/cars/3", "", "")

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("X--alert"))
	})

	mockSvc.AssertExpectations(t)
}

func TestErrorHandler_NotFoundRoute(t *testing.T) {
	app := newTestApp(t)

	resp, b := send(t, app, http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body errorPayload
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), body.RequestID)
}
