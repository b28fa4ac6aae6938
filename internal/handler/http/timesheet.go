package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/arohak/timesheet-backend-go/internal/domain/timesheet"
	"github.com/arohak/timesheet-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimesheetHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	EmployeeDetails(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.Service
}

func NewTimesheetHandler(timesheetService timesheet.Service) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

// Submit implements TimesheetHandler.
func (h *TimesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq timesheet.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := submitReq.Validate(); err != nil {
		slog.Error("Submit validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	stored, err := h.timesheetService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit service error", "employee_id", submitReq.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Timesheet submitted", "employee_id", stored.EmployeeID, "month", stored.Month, "year", stored.Year)
	response.SuccessWithMessage(w, "Timesheet submitted", stored)
}

// List implements TimesheetHandler.
func (h *TimesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	listReq := timesheet.ListRequest{
		Month:  query.Get("month"),
		Status: query.Get("status"),
		Search: query.Get("search"),
	}
	if yearStr := query.Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		listReq.Year = year
	}

	if err := listReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	timesheets, err := h.timesheetService.List(r.Context(), listReq)
	if err != nil {
		slog.Error("List timesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

// ListEmployees implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.timesheetService.ListEmployees(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// EmployeeDetails implements TimesheetHandler.
func (h *TimesheetHandlerImpl) EmployeeDetails(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empId")
	if empID == "" {
		response.BadRequest(w, "empId is required", nil)
		return
	}

	details, err := h.timesheetService.EmployeeDetails(r.Context(), empID)
	if err != nil {
		slog.Error("EmployeeDetails service error", "emp_id", empID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}
