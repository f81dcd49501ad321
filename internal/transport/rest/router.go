package rest

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/employee-management/internal/auth"
	"github.com/employee-management/internal/report"
	"github.com/employee-management/internal/task"
	"github.com/employee-management/internal/transport/middleware"
	"github.com/employee-management/internal/user"
)

// RegisterAllRoutes wires the dashboard API under /api/v1. Every route past
// the auth group carries a role guard: admin routes manage accounts, read all
// reports and assign tasks; employee routes submit reports and work tasks.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, userHandler *user.Handler, reportHandler *report.Handler, taskHandler *task.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	guard := auth.NewRoleGuard(logger)

	// Apply global middleware
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)
			sr.Post("/logout", authHandler.Logout)
		})

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			// Current user
			pr.Get("/users/me", authHandler.Me)

			// Admin: employee account management
			pr.Group(func(ar chi.Router) {
				ar.Use(guard.RequireAdmin())

				ar.Route("/employees", func(er chi.Router) {
					er.Post("/", userHandler.Create)       // POST /employees
					er.Get("/", userHandler.List)          // GET /employees
					er.Delete("/{id}", userHandler.Delete) // DELETE /employees/:id
				})

				ar.Get("/reports", reportHandler.QueryAll)        // GET /reports
				ar.Get("/reports/export", reportHandler.ExportAll) // GET /reports/export

				ar.Post("/tasks", taskHandler.Create) // POST /tasks
				ar.Get("/tasks", taskHandler.ListAll) // GET /tasks
			})

			// Employee: own reports and tasks
			pr.Group(func(er chi.Router) {
				er.Use(guard.RequireEmployee())

				er.Put("/reports", reportHandler.Submit)               // PUT /reports
				er.Get("/reports/mine", reportHandler.QueryOwn)        // GET /reports/mine
				er.Get("/reports/mine/export", reportHandler.ExportOwn) // GET /reports/mine/export

				er.Get("/tasks/mine", taskHandler.ListOwn)             // GET /tasks/mine
				er.Patch("/tasks/{id}/complete", taskHandler.Complete) // PATCH /tasks/:id/complete
			})
		})
	})
}
