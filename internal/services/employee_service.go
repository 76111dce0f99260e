package services

import (
	"context"

	"github.com/poofware/employee-service/internal/dtos"
	"github.com/poofware/employee-service/internal/models"
	"github.com/poofware/employee-service/internal/repositories"
)

// EmployeeService sits between the controller and the repository. It
// builds entities from request shapes and decides which fields each
// operation may touch. Absence is reported as a nil employee, never as
// an error; errors from here are storage faults.
type EmployeeService struct {
	employeeRepo repositories.EmployeeRepository
}

func NewEmployeeService(repo repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: repo}
}

func (s *EmployeeService) GetEmployees(ctx context.Context) ([]*models.Employee, error) {
	return s.employeeRepo.GetAll(ctx)
}

func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id int) (*models.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// CreateEmployee copies every provided field from the request onto a
// fresh entity; unset optional fields stay unset. The repository
// assigns the employee and benefit IDs.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req dtos.CreateEmployeeRequest) (*models.Employee, error) {
	employee := &models.Employee{
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		SocialSecurityNumber: req.SocialSecurityNumber,
		Address1:             req.Address1,
		Address2:             req.Address2,
		City:                 req.City,
		State:                req.State,
		ZipCode:              req.ZipCode,
		PhoneNumber:          req.PhoneNumber,
		Email:                req.Email,
		Benefits:             []models.EmployeeBenefit{},
	}
	for _, b := range req.Benefits {
		employee.Benefits = append(employee.Benefits, models.EmployeeBenefit{
			BenefitType: models.BenefitType(b.BenefitType),
			Cost:        b.Cost,
		})
	}

	return s.employeeRepo.Create(ctx, employee)
}

// UpdateEmployee replaces the address/contact block of an existing
// employee. FirstName, LastName, SocialSecurityNumber and benefits are
// fixed at creation and left untouched. Returns a nil employee when the
// ID matches nothing; a storage error (including the entity vanishing
// between the lookup and the update) comes back as a non-nil error.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int, req dtos.UpdateEmployeeRequest) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}

	employee.Address1 = req.Address1
	employee.Address2 = req.Address2
	employee.City = req.City
	employee.State = req.State
	employee.ZipCode = req.ZipCode
	employee.PhoneNumber = req.PhoneNumber
	employee.Email = req.Email

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetEmployeeBenefits returns the owned benefits in insertion order.
// found is false when no employee has the given ID.
func (s *EmployeeService) GetEmployeeBenefits(ctx context.Context, id int) (benefits []models.EmployeeBenefit, found bool, err error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if employee == nil {
		return nil, false, nil
	}
	return employee.Benefits, true, nil
}
