package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/arohak/timesheet-backend-go/internal/domain/auth"
	"github.com/arohak/timesheet-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	AdminLogin(w http.ResponseWriter, r *http.Request)
	RequestReset(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Signup implements AuthHandler.
func (a *AuthHandlerImpl) Signup(w http.ResponseWriter, r *http.Request) {
	var signupReq auth.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
		slog.Error("Signup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := signupReq.Validate(); err != nil {
		slog.Error("Signup validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := a.authService.Signup(r.Context(), signupReq); err != nil {
		slog.Error("Signup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Signup staged for approval", "emp_id", signupReq.EmpID)
	response.Created(w, "Signup submitted and awaiting administrator approval", nil)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in successfully")
	response.SuccessWithMessage(w, "Logged in successfully", tokenResponse)
}

// AdminLogin implements AuthHandler.
func (a *AuthHandlerImpl) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.AdminLoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("AdminLogin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("AdminLogin validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	tokenResponse, err := a.authService.AdminLogin(r.Context(), loginReq)
	if err != nil {
		slog.Error("AdminLogin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin logged in successfully")
	response.SuccessWithMessage(w, "Logged in successfully", tokenResponse)
}

// RequestReset implements AuthHandler.
func (a *AuthHandlerImpl) RequestReset(w http.ResponseWriter, r *http.Request) {
	var resetReq auth.RequestResetRequest

	if err := json.NewDecoder(r.Body).Decode(&resetReq); err != nil {
		slog.Error("RequestReset decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := resetReq.Validate(); err != nil {
		slog.Error("RequestReset validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := a.authService.RequestReset(r.Context(), resetReq); err != nil {
		slog.Error("RequestReset service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Password reset staged for approval")
	response.SuccessWithMessage(w, "Reset request submitted and awaiting administrator approval", nil)
}

// ResetPassword implements AuthHandler.
func (a *AuthHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var resetReq auth.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&resetReq); err != nil {
		slog.Error("ResetPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := resetReq.Validate(); err != nil {
		slog.Error("ResetPassword validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := a.authService.ResetPassword(r.Context(), resetReq); err != nil {
		slog.Error("ResetPassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Password reset successfully")
	response.SuccessWithMessage(w, "Password has been reset successfully", nil)
}
