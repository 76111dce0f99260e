package models

import "fmt"

type BenefitType string

const (
	BenefitTypeHealth BenefitType = "HEALTH"
	BenefitTypeDental BenefitType = "DENTAL"
	BenefitTypeVision BenefitType = "VISION"
	BenefitTypeLife   BenefitType = "LIFE"
)

// ParseBenefitType converts a wire value into the closed BenefitType set.
func ParseBenefitType(s string) (BenefitType, error) {
	switch BenefitType(s) {
	case BenefitTypeHealth, BenefitTypeDental, BenefitTypeVision, BenefitTypeLife:
		return BenefitType(s), nil
	default:
		return "", fmt.Errorf("invalid benefit type: %q", s)
	}
}

// EmployeeBenefit belongs to exactly one Employee and never outlives it.
type EmployeeBenefit struct {
	ID          int         `json:"id"`
	EmployeeID  int         `json:"employee_id"`
	BenefitType BenefitType `json:"benefit_type"`
	Cost        float64     `json:"cost"`
}

type Employee struct {
	ID                   int               `json:"id"`
	FirstName            string            `json:"first_name"`
	LastName             string            `json:"last_name"`
	SocialSecurityNumber string            `json:"social_security_number,omitempty"`
	Address1             string            `json:"address1,omitempty"`
	Address2             string            `json:"address2,omitempty"`
	City                 string            `json:"city,omitempty"`
	State                string            `json:"state,omitempty"`
	ZipCode              string            `json:"zip_code,omitempty"`
	PhoneNumber          string            `json:"phone_number,omitempty"`
	Email                string            `json:"email,omitempty"`
	Benefits             []EmployeeBenefit `json:"benefits"`
}

func (e *Employee) GetID() int {
	return e.ID
}

// SetID stamps the employee ID and keeps every owned benefit pointing at
// its owner. Benefits must never reference a different employee.
func (e *Employee) SetID(id int) {
	e.ID = id
	for i := range e.Benefits {
		e.Benefits[i].EmployeeID = id
	}
}

// Clone returns a deep copy, so stores can hand out values without
// sharing the benefits slice with callers.
func (e *Employee) Clone() *Employee {
	c := *e
	if e.Benefits != nil {
		c.Benefits = make([]EmployeeBenefit, len(e.Benefits))
		copy(c.Benefits, e.Benefits)
	}
	return &c
}
