package routes

import (
	"fmt"
	"log/slog"
	"net/http"

	"hrmsproject/handlers"
	"hrmsproject/middlewares"
	"hrmsproject/utils"
)

// SetupRoutes wires the full API surface. The literal /summary pattern
// takes precedence over the {employeeId} wildcard, so the summary
// endpoint is never shadowed by an employee lookup.
func SetupRoutes(
	employeeHandler *handlers.EmployeeHandler,
	attendanceHandler *handlers.AttendanceHandler,
	healthHandler *handlers.HealthHandler,
	log *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Employee directory routes
	mux.HandleFunc("POST /api/employees", employeeHandler.CreateEmployee)
	mux.HandleFunc("GET /api/employees", employeeHandler.GetEmployees)
	mux.HandleFunc("DELETE /api/employees/{employeeId}", employeeHandler.DeleteEmployee)

	// Attendance routes
	mux.HandleFunc("POST /api/attendance", attendanceHandler.MarkAttendance)
	mux.HandleFunc("GET /api/attendance", attendanceHandler.GetAttendanceByDate)
	mux.HandleFunc("GET /api/attendance/summary", attendanceHandler.GetAttendanceSummary)
	mux.HandleFunc("GET /api/attendance/{employeeId}", attendanceHandler.GetAttendanceByEmployee)

	// Health check
	mux.Handle("GET /api/health", healthHandler)

	// JSON 404 for anything unmatched
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utils.HandleMessageResponse(w, fmt.Sprintf("Route %s not found", r.URL.Path), http.StatusNotFound)
	})

	return middlewares.RequestLogger(log)(middlewares.CORS(mux))
}
