package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nzdigital/capdev-backend-go/internal/handler/http/middleware"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	frontendURL string,
	env string,
	reportHandler ReportHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	leaveHandler LeaveHandler,
	syncHandler SyncHandler,
	authHandler AuthHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "capdev-backend"),
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

		r.Route("/auth/ipayroll", func(r chi.Router) {
			r.Get("/", authHandler.ConnectIPayroll)
			r.Get("/callback", authHandler.IPayrollCallback)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/reports", func(r chi.Router) {
				r.Get("/time", reportHandler.GetTimeReport)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
					r.Post("/assignments", employeeHandler.CreateAssignment)
					r.Delete("/assignments/{assignmentID}", employeeHandler.DeleteAssignment)
				})
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", masterHandler.ListTeams)
				r.Post("/", masterHandler.CreateTeam)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", masterHandler.GetTeam)
					r.Put("/", masterHandler.UpdateTeam)
					r.Delete("/", masterHandler.DeleteTeam)
					r.Post("/boards", masterHandler.CreateBoard)
					r.Delete("/boards/{boardID}", masterHandler.DeleteBoard)
				})
			})

			r.Route("/roles", func(r chi.Router) {
				r.Get("/", masterHandler.ListRoles)
				r.Post("/", masterHandler.CreateRole)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", masterHandler.GetRole)
					r.Put("/", masterHandler.UpdateRole)
					r.Delete("/", masterHandler.DeleteRole)
					r.Get("/general-time-assignments", masterHandler.ListGeneralTimeAssignments)
					r.Post("/general-time-assignments", masterHandler.CreateGeneralTimeAssignment)
					r.Delete("/general-time-assignments/{assignmentID}", masterHandler.DeleteGeneralTimeAssignment)
				})
			})

			r.Route("/time-types", func(r chi.Router) {
				r.Get("/", masterHandler.ListTimeTypes)
				r.Post("/", masterHandler.CreateTimeType)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", masterHandler.GetTimeType)
					r.Put("/", masterHandler.UpdateTimeType)
					r.Delete("/", masterHandler.DeleteTimeType)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/", leaveHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", leaveHandler.Get)
					r.Delete("/", leaveHandler.Delete)
				})
			})

			r.Get("/projects", masterHandler.ListProjects)

			r.Route("/sync", func(r chi.Router) {
				r.Get("/jira", syncHandler.TriggerJira)
				r.Get("/ipayroll", syncHandler.TriggerIPayroll)
			})
		})
	})
	return r
}
