package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflog/attendance-backend-go/internal/domain/employee"
	handler "github.com/stafflog/attendance-backend-go/internal/handler/http"
)

type stubEmployeeService struct {
	createFn func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getFn    func(ctx context.Context, id int64) (employee.EmployeeResponse, error)
	updateFn func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn func(ctx context.Context, id int64) error
	listFn   func(ctx context.Context, filter employee.EmployeeFilter) (employee.EmployeeListResponse, error)
}

func (s *stubEmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return s.createFn(ctx, req)
}

func (s *stubEmployeeService) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubEmployeeService) UpdateEmployee(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubEmployeeService) DeleteEmployee(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubEmployeeService) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.EmployeeListResponse, error) {
	return s.listFn(ctx, filter)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func newEmployeeRouter(svc employee.EmployeeService) *chi.Mux {
	h := handler.NewEmployeeHandler(svc)
	r := chi.NewRouter()
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.ListEmployees)
		r.Post("/", h.CreateEmployee)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetEmployee)
			r.Patch("/", h.UpdateEmployee)
			r.Delete("/", h.DeleteEmployee)
		})
	})
	return r
}

func TestCreateEmployee_Handler_Success(t *testing.T) {
	svc := &stubEmployeeService{
		createFn: func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{ID: 1, Name: req.Name, Email: req.Email, Dept: req.Dept}, nil
		},
	}
	router := newEmployeeRouter(svc)

	body := `{"name":"Ana","email":"ana@example.com","dept":"Engineering"}`
	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)

	var data employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(1), data.ID)
	assert.Equal(t, "Ana", data.Name)
}

func TestCreateEmployee_Handler_InvalidJSON(t *testing.T) {
	router := newEmployeeRouter(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestCreateEmployee_Handler_MissingFields(t *testing.T) {
	// The stub has no createFn; reaching the service would panic the test.
	router := newEmployeeRouter(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"name":"Ana"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email")
	assert.Contains(t, env.Error.Details, "dept")
}

func TestCreateEmployee_Handler_Duplicate(t *testing.T) {
	svc := &stubEmployeeService{
		createFn: func(_ context.Context, _ employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeExists
		},
	}
	router := newEmployeeRouter(svc)

	body := `{"name":"Ana","email":"ana@example.com","dept":"Engineering"}`
	req := httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestGetEmployee_Handler_InvalidID(t *testing.T) {
	router := newEmployeeRouter(&stubEmployeeService{})

	for _, path := range []string{"/employees/abc", "/employees/0", "/employees/-3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "path %s", path)
	}
}

func TestGetEmployee_Handler_NotFound(t *testing.T) {
	svc := &stubEmployeeService{
		getFn: func(_ context.Context, _ int64) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		},
	}
	router := newEmployeeRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/employees/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestUpdateEmployee_Handler_PartialBody(t *testing.T) {
	var captured employee.UpdateEmployeeRequest
	svc := &stubEmployeeService{
		updateFn: func(_ context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			captured = req
			return employee.EmployeeResponse{ID: id, Name: *req.Name, Email: "ana@example.com", Dept: "Engineering"}, nil
		},
	}
	router := newEmployeeRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/employees/5", strings.NewReader(`{"name":"Anabel"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured.Name)
	assert.Equal(t, "Anabel", *captured.Name)
	assert.Nil(t, captured.Email)
	assert.Nil(t, captured.Dept)
}

func TestDeleteEmployee_Handler_NoContent(t *testing.T) {
	svc := &stubEmployeeService{
		deleteFn: func(_ context.Context, _ int64) error { return nil },
	}
	router := newEmployeeRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/employees/5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestListEmployees_Handler_ParsesQuery(t *testing.T) {
	var captured employee.EmployeeFilter
	svc := &stubEmployeeService{
		listFn: func(_ context.Context, filter employee.EmployeeFilter) (employee.EmployeeListResponse, error) {
			captured = filter
			return employee.EmployeeListResponse{Items: []employee.EmployeeResponse{}, Total: 0}, nil
		},
	}
	router := newEmployeeRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/employees?name=ana&dept=eng&limit=5&offset=15", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured.Name)
	assert.Equal(t, "ana", *captured.Name)
	require.NotNil(t, captured.Dept)
	assert.Equal(t, "eng", *captured.Dept)
	assert.Nil(t, captured.Email)
	assert.Equal(t, 5, captured.Limit)
	assert.Equal(t, 15, captured.Offset)
}

func TestListEmployees_Handler_InvalidLimit(t *testing.T) {
	router := newEmployeeRouter(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodGet, "/employees?limit=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
