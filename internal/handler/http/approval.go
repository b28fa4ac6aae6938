package http

import (
	"log/slog"
	"net/http"

	"github.com/arohak/timesheet-backend-go/internal/domain/approval"
	"github.com/arohak/timesheet-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ApprovalHandler interface {
	ListPendingUsers(w http.ResponseWriter, r *http.Request)
	ApproveUser(w http.ResponseWriter, r *http.Request)
	RejectUser(w http.ResponseWriter, r *http.Request)
	ListPendingResets(w http.ResponseWriter, r *http.Request)
	ApproveReset(w http.ResponseWriter, r *http.Request)
	DeleteReset(w http.ResponseWriter, r *http.Request)
	RevokeUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
}

type ApprovalHandlerImpl struct {
	approvalService approval.Service
}

func NewApprovalHandler(approvalService approval.Service) ApprovalHandler {
	return &ApprovalHandlerImpl{approvalService: approvalService}
}

// ListPendingUsers implements ApprovalHandler.
func (h *ApprovalHandlerImpl) ListPendingUsers(w http.ResponseWriter, r *http.Request) {
	pending, err := h.approvalService.ListPendingUsers(r.Context())
	if err != nil {
		slog.Error("ListPendingUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// ApproveUser implements ApprovalHandler.
func (h *ApprovalHandlerImpl) ApproveUser(w http.ResponseWriter, r *http.Request) {
	idReq := approval.PendingIDRequest{ID: chi.URLParam(r, "id")}
	if err := idReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	approved, err := h.approvalService.ApproveUser(r.Context(), idReq.ID)
	if err != nil {
		slog.Error("ApproveUser service error", "pending_id", idReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Signup approved", "emp_id", approved.EmpID)
	response.SuccessWithMessage(w, "User approved", approved)
}

// RejectUser implements ApprovalHandler.
func (h *ApprovalHandlerImpl) RejectUser(w http.ResponseWriter, r *http.Request) {
	idReq := approval.PendingIDRequest{ID: chi.URLParam(r, "id")}
	if err := idReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rejected, err := h.approvalService.RejectUser(r.Context(), idReq.ID)
	if err != nil {
		slog.Error("RejectUser service error", "pending_id", idReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Signup rejected", "emp_id", rejected.EmpID)
	response.SuccessWithMessage(w, "User rejected", rejected)
}

// ListPendingResets implements ApprovalHandler.
func (h *ApprovalHandlerImpl) ListPendingResets(w http.ResponseWriter, r *http.Request) {
	pending, err := h.approvalService.ListPendingResets(r.Context())
	if err != nil {
		slog.Error("ListPendingResets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, pending)
}

// ApproveReset implements ApprovalHandler.
func (h *ApprovalHandlerImpl) ApproveReset(w http.ResponseWriter, r *http.Request) {
	idReq := approval.PendingIDRequest{ID: chi.URLParam(r, "id")}
	if err := idReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	approved, err := h.approvalService.ApproveReset(r.Context(), idReq.ID)
	if err != nil {
		slog.Error("ApproveReset service error", "pending_id", idReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Reset approved", "emp_id", approved.EmpID)
	response.SuccessWithMessage(w, "Reset approved", approved)
}

// DeleteReset implements ApprovalHandler.
func (h *ApprovalHandlerImpl) DeleteReset(w http.ResponseWriter, r *http.Request) {
	idReq := approval.PendingIDRequest{ID: chi.URLParam(r, "id")}
	if err := idReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.approvalService.DeleteReset(r.Context(), idReq.ID); err != nil {
		slog.Error("DeleteReset service error", "pending_id", idReq.ID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reset request deleted", nil)
}

// RevokeUser implements ApprovalHandler.
func (h *ApprovalHandlerImpl) RevokeUser(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empId")
	if empID == "" {
		response.BadRequest(w, "empId is required", nil)
		return
	}

	revoked, err := h.approvalService.RevokeUser(r.Context(), empID)
	if err != nil {
		slog.Error("RevokeUser service error", "emp_id", empID, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User revoked", "emp_id", revoked.EmpID)
	response.SuccessWithMessage(w, "User deleted", revoked)
}

// ListUsers implements ApprovalHandler.
func (h *ApprovalHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.approvalService.ListUsers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		slog.Error("ListUsers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// GetUser implements ApprovalHandler.
func (h *ApprovalHandlerImpl) GetUser(w http.ResponseWriter, r *http.Request) {
	empID := chi.URLParam(r, "empId")
	if empID == "" {
		response.BadRequest(w, "empId is required", nil)
		return
	}

	found, err := h.approvalService.GetUserByEmpID(r.Context(), empID)
	if err != nil {
		slog.Error("GetUser service error", "emp_id", empID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}
