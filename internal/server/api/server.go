// Package api serves the HR backend over HTTP with fiber. Routes mirror the
// contract the hrms client consumes: employees, attendance and dashboard
// stats under /api, plus an unauthenticated /health probe.
package api

import (
	"context"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/logging"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address    string
	logger     logging.Logger
	app        *fiber.App
	employees  EmployeeService
	attendance AttendanceService
	dashboard  DashboardService
}

func NewServer(a string, l logging.Logger, es EmployeeService, as AttendanceService, ds DashboardService) *Server {
	s := &Server{
		address:    a,
		logger:     l.With("module", "http_server"),
		employees:  es,
		attendance: as,
		dashboard:  ds,
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "hrms",
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	s.app.Use(recover.New())
	s.app.Use(cors.New())
	s.app.Use(s.requestLogger)
	s.routes()

	return s
}

func (s *Server) routes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api")

	emp := api.Group("/employees")
	emp.Get("/", s.listEmployees)
	emp.Post("/", s.createEmployee)
	emp.Get("/departments", s.listDepartments)
	emp.Put("/:id", s.updateEmployee)
	emp.Delete("/:id", s.deleteEmployee)

	att := api.Group("/attendance")
	att.Get("/", s.listAttendance)
	att.Post("/", s.markAttendance)
	att.Put("/:id", s.updateAttendance)
	att.Delete("/:id", s.deleteAttendance)

	api.Get("/dashboard/stats", s.dashboardStats)
}

// Run listens until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.app.Listen(s.address); err != nil {
		return err
	}
	return nil
}
