package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"hrmsproject/models"
	repository "hrmsproject/repositories"
)

var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, error)
	GetEmployees(ctx context.Context) ([]models.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

type employeeService struct {
	log  *slog.Logger
	repo repository.EmployeeRepository
}

func NewEmployeeService(log *slog.Logger, repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{
		log:  log,
		repo: repo,
	}
}

// CreateEmployee registers a new directory record. Both employeeId and
// email must be unique; emails are compared and stored lowercased.
func (s *employeeService) CreateEmployee(ctx context.Context, req *models.CreateEmployeeRequest) (*models.Employee, error) {
	if req.EmployeeID == "" || req.FullName == "" || req.Email == "" || req.Department == "" {
		return nil, models.NewInvalidInput("all fields are required: employeeId, fullName, email, department")
	}

	if !emailRegex.MatchString(req.Email) {
		return nil, models.NewInvalidInput("please provide a valid email address")
	}

	email := strings.ToLower(req.Email)

	existing, err := s.repo.FindByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, models.NewStorageError("failed to look up employee", err)
	}
	if existing != nil {
		return nil, models.NewConflict(fmt.Sprintf("employee with ID '%s' already exists", req.EmployeeID))
	}

	existing, err = s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, models.NewStorageError("failed to look up employee", err)
	}
	if existing != nil {
		return nil, models.NewConflict(fmt.Sprintf("employee with email '%s' already exists", req.Email))
	}

	now := time.Now()
	employee := &models.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      email,
		Department: req.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, employee); err != nil {
		// The unique indexes close the race between the lookups above and
		// the insert; a duplicate surfacing here is still a Conflict.
		if models.KindOf(err) == models.ErrConflict {
			return nil, err
		}
		return nil, models.NewStorageError("failed to create employee", err)
	}

	s.log.InfoContext(ctx, "employee created",
		slog.String("op", "Employee.Create"), "employeeId", employee.EmployeeID, "department", employee.Department)

	return employee, nil
}

func (s *employeeService) GetEmployees(ctx context.Context) ([]models.Employee, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, models.NewStorageError("failed to list employees", err)
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	return employees, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	deleted, err := s.repo.Delete(ctx, employeeID)
	if err != nil {
		return models.NewStorageError("failed to delete employee", err)
	}
	if !deleted {
		return models.NewNotFound(fmt.Sprintf("employee with ID '%s' not found", employeeID))
	}

	s.log.InfoContext(ctx, "employee deleted",
		slog.String("op", "Employee.Delete"), "employeeId", employeeID)

	return nil
}
