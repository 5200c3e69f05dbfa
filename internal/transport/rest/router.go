package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/adminrec/personnel-management/internal/attendance"
	"github.com/adminrec/personnel-management/internal/auth"
	"github.com/adminrec/personnel-management/internal/employee"
	"github.com/adminrec/personnel-management/internal/position"
	"github.com/adminrec/personnel-management/internal/request"
	"github.com/adminrec/personnel-management/internal/sector"
	"github.com/adminrec/personnel-management/internal/transport/middleware"
	"github.com/adminrec/personnel-management/internal/transport/swagger"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	employeeHandler *employee.Handler,
	sectorHandler *sector.Handler,
	positionHandler *position.Handler,
	attendanceHandler *attendance.Handler,
	requestHandler *request.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", authHandler.Login)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Group(func(ar chi.Router) {
				ar.Use(middleware.RequireRoles(auth.RoleAdmin))
				ar.Post("/auth/register", authHandler.Register)
			})

			pr.Route("/sectors", func(sr chi.Router) {
				sr.Get("/", sectorHandler.List)
				sr.Get("/{id}", sectorHandler.Get)

				sr.Group(func(ar chi.Router) {
					ar.Use(middleware.RequireRoles(auth.RoleAdmin))
					ar.Put("/{id}/supervisors", sectorHandler.ReassignSupervisors)
					ar.Delete("/{id}", sectorHandler.Delete)
				})
			})

			pr.Route("/positions", func(psr chi.Router) {
				psr.Get("/", positionHandler.List)
				psr.Get("/{id}", positionHandler.Get)

				psr.Group(func(ar chi.Router) {
					ar.Use(middleware.RequireRoles(auth.RoleAdmin))
					ar.Post("/", positionHandler.Create)
					ar.Put("/{id}", positionHandler.Update)
					ar.Delete("/{id}", positionHandler.Delete)
				})
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Group(func(ar chi.Router) {
					ar.Use(middleware.RequireRoles(auth.RoleAdmin))
					ar.Get("/", employeeHandler.List)
					ar.Get("/{id}", employeeHandler.Get)
					ar.Post("/", employeeHandler.Create)
					ar.Put("/{id}", employeeHandler.Update)
					ar.Delete("/{id}", employeeHandler.Delete)
					ar.Get("/{id}/history", employeeHandler.History)
				})

				// salary report input, readable by supervisors too
				er.Group(func(mr chi.Router) {
					mr.Use(middleware.RequireRoles(auth.RoleAdmin, auth.RoleSupervisor))
					mr.Get("/{id}/attendances", employeeHandler.Attendances)
				})
			})

			pr.Route("/attendances", func(atr chi.Router) {
				atr.Post("/", attendanceHandler.Register)
				atr.Get("/", attendanceHandler.List)
			})

			pr.Route("/requests", func(rr chi.Router) {
				rr.Post("/", requestHandler.Create)
				rr.Get("/", requestHandler.ListOwn)

				rr.Group(func(mr chi.Router) {
					mr.Use(middleware.RequireRoles(auth.RoleSupervisor, auth.RoleAdmin))
					mr.Get("/sector", requestHandler.ListForSupervisor)
					mr.Patch("/{id}/status", requestHandler.ChangeStatus)
				})
			})
		})
	})
}
