package api

import (
	"context"

	"github.com/dmitrijs2005/hrmsync/internal/server/models"
	"github.com/gofiber/fiber/v2"
)

type EmployeeService interface {
	List(ctx context.Context, f models.EmployeeFilter) ([]models.Employee, error)
	Departments(ctx context.Context) ([]string, error)
	Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error)
	Update(ctx context.Context, id int64, in models.EmployeeInput) (*models.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type AttendanceService interface {
	List(ctx context.Context, f models.AttendanceFilter) ([]models.Attendance, error)
	Mark(ctx context.Context, in models.AttendanceCreate) (*models.Attendance, error)
	Update(ctx context.Context, id int64, in models.AttendanceUpdate) (*models.Attendance, error)
	Delete(ctx context.Context, id int64) error
}

type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, "id must be a positive integer")
	}
	return int64(id), nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "malformed request body")
	}
	return nil
}

func (s *Server) listEmployees(c *fiber.Ctx) error {
	items, err := s.employees.List(c.UserContext(), models.EmployeeFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
	})
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (s *Server) listDepartments(c *fiber.Ctx) error {
	items, err := s.employees.Departments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (s *Server) createEmployee(c *fiber.Ctx) error {
	var in models.EmployeeInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	e, err := s.employees.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

func (s *Server) updateEmployee(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in models.EmployeeInput
	if err := parseBody(c, &in); err != nil {
		return err
	}
	e, err := s.employees.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(e)
}

func (s *Server) deleteEmployee(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.employees.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) listAttendance(c *fiber.Ctx) error {
	items, err := s.attendance.List(c.UserContext(), models.AttendanceFilter{
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Status:   c.Query("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (s *Server) markAttendance(c *fiber.Ctx) error {
	var in models.AttendanceCreate
	if err := parseBody(c, &in); err != nil {
		return err
	}
	a, err := s.attendance.Mark(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (s *Server) updateAttendance(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in models.AttendanceUpdate
	if err := parseBody(c, &in); err != nil {
		return err
	}
	a, err := s.attendance.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(a)
}

func (s *Server) deleteAttendance(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := s.attendance.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) dashboardStats(c *fiber.Ctx) error {
	st, err := s.dashboard.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(st)
}
