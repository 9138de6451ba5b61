package employee

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nzdigital/capdev-backend-go/internal/domain/employee"
	"github.com/nzdigital/capdev-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	createErr error
	updateErr error
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if f.createErr != nil {
		return employee.Employee{}, f.createErr
	}
	emp.ID = "emp-" + emp.PayrollID
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

type fakeAssignmentRepo struct {
	assignments []employee.Assignment
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a employee.Assignment) (employee.Assignment, error) {
	a.ID = "asg-new"
	f.assignments = append(f.assignments, a)
	return a, nil
}

func (f *fakeAssignmentRepo) GetByEmployeeID(ctx context.Context, employeeID string) ([]employee.Assignment, error) {
	var out []employee.Assignment
	for _, a := range f.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Update(ctx context.Context, a employee.Assignment) error { return nil }

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService(empRepo *fakeEmployeeRepo, asgRepo *fakeAssignmentRepo) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   empRepo,
		assignmentRepo: asgRepo,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func strPtr(s string) *string { return &s }

func TestCreateEmployee(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), &fakeAssignmentRepo{})

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:         "Aroha Ngata",
		PayrollID:    "E042",
		HoursPerWeek: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, "Aroha Ngata", resp.Name)
	assert.Equal(t, 40.0, resp.HoursPerWeek)
}

func TestCreateEmployeeValidation(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), &fakeAssignmentRepo{})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:         "",
		HoursPerWeek: -1,
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "hours_per_week")
}

func TestCreateEmployeePayrollIDConflict(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.createErr = &pgconn.PgError{Code: "23505"}
	svc := newTestService(repo, &fakeAssignmentRepo{})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:      "Sam Pohe",
		PayrollID: "E001",
	})
	assert.ErrorIs(t, err, employee.ErrPayrollIDExists)
}

func TestUpdateEmployeePartial(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo, &fakeAssignmentRepo{})

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:         "Mere Kahu",
		PayrollID:    "E007",
		HoursPerWeek: 40,
	})
	require.NoError(t, err)

	hours := 32.0
	err = svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID:           created.ID,
		HoursPerWeek: &hours,
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 32.0, got.HoursPerWeek)
	assert.Equal(t, "Mere Kahu", got.Name)
}

func TestCreateAssignmentRejectsOverlap(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	empRepo.employees["emp-1"] = employee.Employee{ID: "emp-1", Name: "Aroha Ngata"}

	asgRepo := &fakeAssignmentRepo{
		assignments: []employee.Assignment{
			{
				ID:         "asg-1",
				EmployeeID: "emp-1",
				TeamID:     "team-1",
				StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:    nil, // open-ended
			},
		},
	}
	svc := newTestService(empRepo, asgRepo)

	_, err := svc.CreateAssignment(context.Background(), employee.CreateAssignmentRequest{
		EmployeeID: "emp-1",
		TeamID:     "team-2",
		StartDate:  "2024-06-01",
	})
	assert.ErrorIs(t, err, employee.ErrAssignmentOverlap)
}

func TestCreateAssignmentAfterClosedPeriod(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	empRepo.employees["emp-1"] = employee.Employee{ID: "emp-1", Name: "Aroha Ngata"}

	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	asgRepo := &fakeAssignmentRepo{
		assignments: []employee.Assignment{
			{
				ID:         "asg-1",
				EmployeeID: "emp-1",
				TeamID:     "team-1",
				StartDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:    &end,
			},
		},
	}
	svc := newTestService(empRepo, asgRepo)

	resp, err := svc.CreateAssignment(context.Background(), employee.CreateAssignmentRequest{
		EmployeeID: "emp-1",
		TeamID:     "team-2",
		StartDate:  "2024-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "team-2", resp.TeamID)
	assert.Equal(t, "2024-06-01", resp.StartDate)
}

func TestCreateAssignmentUnknownEmployee(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo(), &fakeAssignmentRepo{})

	_, err := svc.CreateAssignment(context.Background(), employee.CreateAssignmentRequest{
		EmployeeID: "missing",
		TeamID:     "team-1",
		StartDate:  "2024-06-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateAssignmentEndBeforeStart(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	empRepo.employees["emp-1"] = employee.Employee{ID: "emp-1", Name: "Aroha Ngata"}
	svc := newTestService(empRepo, &fakeAssignmentRepo{})

	_, err := svc.CreateAssignment(context.Background(), employee.CreateAssignmentRequest{
		EmployeeID: "emp-1",
		TeamID:     "team-1",
		StartDate:  "2024-06-10",
		EndDate:    strPtr("2024-06-01"),
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}
