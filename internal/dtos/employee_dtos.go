package dtos

import (
	"github.com/poofware/employee-service/internal/models"
)

// ----------------------------------------------------------------------
// Request shapes
//
// Create and Update are validated independently: creates establish the
// identity fields, updates only touch the address/contact block.
// ----------------------------------------------------------------------

type CreateEmployeeBenefitRequest struct {
	BenefitType string  `json:"benefit_type" validate:"required,oneof=HEALTH DENTAL VISION LIFE"`
	Cost        float64 `json:"cost" validate:"min=0"`
}

type CreateEmployeeRequest struct {
	FirstName            string                         `json:"first_name" validate:"required"`
	LastName             string                         `json:"last_name" validate:"required"`
	SocialSecurityNumber string                         `json:"social_security_number,omitempty" validate:"omitempty,ssn"`
	Address1             string                         `json:"address1,omitempty"`
	Address2             string                         `json:"address2,omitempty"`
	City                 string                         `json:"city,omitempty"`
	State                string                         `json:"state,omitempty"`
	ZipCode              string                         `json:"zip_code,omitempty"`
	PhoneNumber          string                         `json:"phone_number,omitempty"`
	Email                string                         `json:"email,omitempty" validate:"omitempty,email"`
	Benefits             []CreateEmployeeBenefitRequest `json:"benefits,omitempty" validate:"omitempty,dive"`
}

// UpdateEmployeeRequest carries the address/contact block only.
// FirstName, LastName, SocialSecurityNumber and benefits are fixed at
// creation and cannot be changed through this shape. Address1 is
// mandatory here even though it is optional on create.
type UpdateEmployeeRequest struct {
	Address1    string `json:"address1" validate:"required"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

// ----------------------------------------------------------------------
// Response projections
// ----------------------------------------------------------------------

// Employee is the read projection returned by every employee endpoint.
// SocialSecurityNumber is write-only and never echoed back.
type Employee struct {
	ID          int               `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	Address1    string            `json:"address1,omitempty"`
	Address2    string            `json:"address2,omitempty"`
	City        string            `json:"city,omitempty"`
	State       string            `json:"state,omitempty"`
	ZipCode     string            `json:"zip_code,omitempty"`
	PhoneNumber string            `json:"phone_number,omitempty"`
	Email       string            `json:"email,omitempty"`
	Benefits    []EmployeeBenefit `json:"benefits"`
}

type EmployeeBenefit struct {
	ID          int                `json:"id"`
	EmployeeID  int                `json:"employee_id"`
	BenefitType models.BenefitType `json:"benefit_type"`
	Cost        float64            `json:"cost"`
}

func NewEmployeeFromModel(e models.Employee) Employee {
	return Employee{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Address1:    e.Address1,
		Address2:    e.Address2,
		City:        e.City,
		State:       e.State,
		ZipCode:     e.ZipCode,
		PhoneNumber: e.PhoneNumber,
		Email:       e.Email,
		Benefits:    NewEmployeeBenefitsFromModel(e.Benefits),
	}
}

func NewEmployeeBenefitFromModel(b models.EmployeeBenefit) EmployeeBenefit {
	return EmployeeBenefit{
		ID:          b.ID,
		EmployeeID:  b.EmployeeID,
		BenefitType: b.BenefitType,
		Cost:        b.Cost,
	}
}

// NewEmployeeBenefitsFromModel always returns a non-nil slice so list
// responses serialize as [] rather than null.
func NewEmployeeBenefitsFromModel(benefits []models.EmployeeBenefit) []EmployeeBenefit {
	out := make([]EmployeeBenefit, 0, len(benefits))
	for _, b := range benefits {
		out = append(out, NewEmployeeBenefitFromModel(b))
	}
	return out
}
