package handlers

import (
	"context"
	"net/http"
	"time"

	"hrmsproject/models"
	service "hrmsproject/services"
	"hrmsproject/utils"
)

type AttendanceHandler struct {
	service service.AttendanceService
}

func NewAttendanceHandler(service service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
	}
}

func (h *AttendanceHandler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req models.MarkAttendanceRequest
	if err := utils.DecodeAndValidate(w, r, &req); err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doc, changed, err := h.service.MarkAttendance(ctx, req.EmployeeID, req.Date, req.Status)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleMarkResponse(w, doc, changed)
}

func (h *AttendanceHandler) GetAttendanceByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := r.PathValue("employeeId")
	filter := models.AttendanceFilter{
		Month:  r.URL.Query().Get("month"),
		Date:   r.URL.Query().Get("date"),
		Status: r.URL.Query().Get("status"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := h.service.GetAttendanceByEmployee(ctx, employeeID, filter)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleListResponse(w, len(records), records)
}

func (h *AttendanceHandler) GetAttendanceByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	records, err := h.service.GetAttendanceByDate(ctx, date)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleListResponse(w, len(records), records)
}

func (h *AttendanceHandler) GetAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	summary, err := h.service.GetAttendanceSummary(ctx)
	if err != nil {
		utils.HandleError(w, err)
		return
	}

	utils.HandleDataResponse(w, summary, http.StatusOK)
}
