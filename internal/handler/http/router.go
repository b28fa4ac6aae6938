package http

import (
	"log/slog"
	"os"

	"github.com/arohak/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/arohak/timesheet-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(jwtService jwt.Service, frontendURL string, env string, authHandler AuthHandler, approvalHandler ApprovalHandler, timesheetHandler TimesheetHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.Post("/admin-login", authHandler.AdminLogin)
			r.Post("/request-reset", authHandler.RequestReset)
			r.Post("/reset-password", authHandler.ResetPassword)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Use(middleware.AdminOnly)

				r.Get("/pending-users", approvalHandler.ListPendingUsers)
				r.Post("/approve-user/{id}", approvalHandler.ApproveUser)
				r.Post("/reject-user/{id}", approvalHandler.RejectUser)

				r.Get("/pending-resets", approvalHandler.ListPendingResets)
				r.Post("/approve-reset/{id}", approvalHandler.ApproveReset)
				r.Delete("/delete-reset/{id}", approvalHandler.DeleteReset)

				r.Get("/users", approvalHandler.ListUsers)
				r.Get("/users/{empId}", approvalHandler.GetUser)
				r.Delete("/revoke-user/{empId}", approvalHandler.RevokeUser)
			})
		})

		r.Route("/timesheets", func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/submit", timesheetHandler.Submit)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/", timesheetHandler.List)
				r.Get("/employees", timesheetHandler.ListEmployees)
				r.Get("/employees/{empId}", timesheetHandler.EmployeeDetails)
			})
		})
	})
	return r
}
