package services_test

import (
	"context"
	"log/slog"
	"testing"

	"hrmsproject/models"
	"hrmsproject/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]*models.Employee
	err       error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*models.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *models.Employee) error {
	if r.err != nil {
		return r.err
	}
	r.employees[employee.EmployeeID] = employee
	return nil
}

func (r *fakeEmployeeRepo) FindByEmployeeID(_ context.Context, employeeID string) (*models.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.employees[employeeID], nil
}

func (r *fakeEmployeeRepo) FindByEmail(_ context.Context, email string) (*models.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, employee := range r.employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetAll(_ context.Context) ([]models.Employee, error) {
	if r.err != nil {
		return nil, r.err
	}
	var all []models.Employee
	for _, employee := range r.employees {
		all = append(all, *employee)
	}
	return all, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, employeeID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.employees[employeeID]; !ok {
		return false, nil
	}
	delete(r.employees, employeeID)
	return true, nil
}

func (r *fakeEmployeeRepo) Exists(_ context.Context, employeeID string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.employees[employeeID]
	return ok, nil
}

func validRequest() *models.CreateEmployeeRequest {
	return &models.CreateEmployeeRequest{
		EmployeeID: "E1",
		FullName:   "Jane Doe",
		Email:      "Jane.Doe@example.com",
		Department: "Engineering",
	}
}

func TestCreateEmployee_Success(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := services.NewEmployeeService(slog.Default(), repo)

	employee, err := svc.CreateEmployee(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "E1", employee.EmployeeID)
	assert.Equal(t, "jane.doe@example.com", employee.Email, "email must be stored lowercased")
	assert.False(t, employee.CreatedAt.IsZero())
	assert.Contains(t, repo.employees, "E1")
}

func TestCreateEmployee_MissingFields(t *testing.T) {
	t.Parallel()

	svc := services.NewEmployeeService(slog.Default(), newFakeEmployeeRepo())

	mutations := []func(*models.CreateEmployeeRequest){
		func(r *models.CreateEmployeeRequest) { r.EmployeeID = "" },
		func(r *models.CreateEmployeeRequest) { r.FullName = "" },
		func(r *models.CreateEmployeeRequest) { r.Email = "" },
		func(r *models.CreateEmployeeRequest) { r.Department = "" },
	}

	for _, mutate := range mutations {
		req := validRequest()
		mutate(req)

		_, err := svc.CreateEmployee(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, models.ErrInvalidInput, models.KindOf(err))
	}
}

func TestCreateEmployee_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc := services.NewEmployeeService(slog.Default(), newFakeEmployeeRepo())

	req := validRequest()
	req.Email = "not-an-email"

	_, err := svc.CreateEmployee(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, models.ErrInvalidInput, models.KindOf(err))
}

func TestCreateEmployee_DuplicateID(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := services.NewEmployeeService(slog.Default(), repo)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, validRequest())
	require.NoError(t, err)

	dup := validRequest()
	dup.Email = "other@example.com"
	_, err = svc.CreateEmployee(ctx, dup)

	require.Error(t, err)
	assert.Equal(t, models.ErrConflict, models.KindOf(err))
}

func TestCreateEmployee_DuplicateEmailCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := services.NewEmployeeService(slog.Default(), repo)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, validRequest())
	require.NoError(t, err)

	dup := validRequest()
	dup.EmployeeID = "E2"
	dup.Email = "JANE.DOE@EXAMPLE.COM"
	_, err = svc.CreateEmployee(ctx, dup)

	require.Error(t, err)
	assert.Equal(t, models.ErrConflict, models.KindOf(err))
}

func TestGetEmployees_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	svc := services.NewEmployeeService(slog.Default(), newFakeEmployeeRepo())

	employees, err := svc.GetEmployees(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	svc := services.NewEmployeeService(slog.Default(), repo)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, "E1"))
	assert.Empty(t, repo.employees)

	err = svc.DeleteEmployee(ctx, "E1")
	require.Error(t, err)
	assert.Equal(t, models.ErrNotFound, models.KindOf(err))
}

func TestEmployeeService_StorageError(t *testing.T) {
	t.Parallel()

	repo := newFakeEmployeeRepo()
	repo.err = assert.AnError
	svc := services.NewEmployeeService(slog.Default(), repo)

	_, err := svc.CreateEmployee(context.Background(), validRequest())
	require.Error(t, err)
	assert.Equal(t, models.ErrStorage, models.KindOf(err))

	_, err = svc.GetEmployees(context.Background())
	require.Error(t, err)
	assert.Equal(t, models.ErrStorage, models.KindOf(err))
}
