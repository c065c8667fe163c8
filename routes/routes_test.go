package routes_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrmsproject/handlers"
	"hrmsproject/models"
	"hrmsproject/routes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	summaryCalls    int
	byEmployeeCalls int
	lastEmployeeID  string
}

func (s *stubAttendanceService) MarkAttendance(_ context.Context, _, _, _ string) (*models.MonthlyAttendance, bool, error) {
	return &models.MonthlyAttendance{}, true, nil
}

func (s *stubAttendanceService) GetAttendanceByEmployee(_ context.Context, employeeID string, _ models.AttendanceFilter) ([]models.AttendanceRecord, error) {
	s.byEmployeeCalls++
	s.lastEmployeeID = employeeID
	return []models.AttendanceRecord{}, nil
}

func (s *stubAttendanceService) GetAttendanceByDate(_ context.Context, _ string) ([]models.DailyAttendanceRecord, error) {
	return []models.DailyAttendanceRecord{}, nil
}

func (s *stubAttendanceService) GetAttendanceSummary(_ context.Context) (map[string]models.AttendanceSummary, error) {
	s.summaryCalls++
	return map[string]models.AttendanceSummary{}, nil
}

type stubEmployeeService struct{}

func (s *stubEmployeeService) CreateEmployee(_ context.Context, _ *models.CreateEmployeeRequest) (*models.Employee, error) {
	return &models.Employee{}, nil
}

func (s *stubEmployeeService) GetEmployees(_ context.Context) ([]models.Employee, error) {
	return []models.Employee{}, nil
}

func (s *stubEmployeeService) DeleteEmployee(_ context.Context, _ string) error {
	return nil
}

type okPinger struct{}

func (okPinger) Ping(_ context.Context) error { return nil }

func setup(t *testing.T) (http.Handler, *stubAttendanceService) {
	t.Helper()
	attendance := &stubAttendanceService{}
	handler := routes.SetupRoutes(
		handlers.NewEmployeeHandler(&stubEmployeeService{}),
		handlers.NewAttendanceHandler(attendance),
		handlers.NewHealthHandler(okPinger{}),
		slog.Default(),
	)
	return handler, attendance
}

func TestRoutes_SummaryNotShadowedByEmployeeID(t *testing.T) {
	t.Parallel()

	handler, attendance := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/attendance/summary", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, attendance.summaryCalls)
	assert.Zero(t, attendance.byEmployeeCalls)

	req = httptest.NewRequest(http.MethodGet, "/api/attendance/E1", nil)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, attendance.byEmployeeCalls)
	assert.Equal(t, "E1", attendance.lastEmployeeID)
}

func TestRoutes_UnknownRouteReturnsJSON404(t *testing.T) {
	t.Parallel()

	handler, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.JSONEq(t, `{"success":false,"message":"Route /api/nope not found"}`, rr.Body.String())
}

func TestRoutes_HealthCheck(t *testing.T) {
	t.Parallel()

	handler, _ := setup(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRoutes_CORSApplied(t *testing.T) {
	t.Parallel()

	handler, _ := setup(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/employees", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
