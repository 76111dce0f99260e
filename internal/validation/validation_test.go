package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/employee-service/internal/dtos"
)

func TestValidateCreateRequiredFields(t *testing.T) {
	v := NewEmployeeValidator()

	result := v.ValidateCreate(dtos.CreateEmployeeRequest{})

	require.False(t, result.Valid())
	require.Equal(t, map[string][]string{
		"FirstName": {"First name is required."},
		"LastName":  {"Last name is required."},
	}, result.Errors)
}

func TestValidateCreateHappyPath(t *testing.T) {
	v := NewEmployeeValidator()

	result := v.ValidateCreate(dtos.CreateEmployeeRequest{
		FirstName:            "John",
		LastName:             "Doe",
		SocialSecurityNumber: "123-46-7890",
		Email:                "john.doe@example.com",
		Benefits: []dtos.CreateEmployeeBenefitRequest{
			{BenefitType: "HEALTH", Cost: 100},
		},
	})

	require.True(t, result.Valid())
	require.Empty(t, result.Errors)
}

func TestValidateCreateSSNFormat(t *testing.T) {
	v := NewEmployeeValidator()

	base := dtos.CreateEmployeeRequest{FirstName: "John", LastName: "Doe"}

	tests := []struct {
		ssn   string
		valid bool
	}{
		{"", true}, // optional
		{"123-46-7890", true},
		{"123467890", false},
		{"123-46-789", false},
		{"abc-de-fghi", false},
		{"1234-56-7890", false},
	}

	for _, tc := range tests {
		req := base
		req.SocialSecurityNumber = tc.ssn
		result := v.ValidateCreate(req)
		if tc.valid {
			require.True(t, result.Valid(), "ssn %q should pass", tc.ssn)
		} else {
			require.Contains(t, result.Errors, "SocialSecurityNumber", "ssn %q should fail", tc.ssn)
		}
	}
}

func TestValidateCreateBenefitRules(t *testing.T) {
	v := NewEmployeeValidator()

	result := v.ValidateCreate(dtos.CreateEmployeeRequest{
		FirstName: "John",
		LastName:  "Doe",
		Benefits: []dtos.CreateEmployeeBenefitRequest{
			{BenefitType: "PENSION", Cost: -5},
		},
	})

	require.False(t, result.Valid())
	require.Contains(t, result.Errors, "BenefitType")
	require.Contains(t, result.Errors, "Cost")
}

func TestValidateUpdateRequiresAddress1(t *testing.T) {
	v := NewEmployeeValidator()

	result := v.ValidateUpdate(dtos.UpdateEmployeeRequest{City: "Springfield"})

	require.False(t, result.Valid())
	require.Contains(t, result.Errors, "Address1")
	require.Equal(t, []string{"Address1 is required."}, result.Errors["Address1"])
}

// The Create and Update rule sets are independent: Update never asks
// for FirstName, Create never asks for Address1.
func TestRuleSetsAreIndependent(t *testing.T) {
	v := NewEmployeeValidator()

	createResult := v.ValidateCreate(dtos.CreateEmployeeRequest{
		FirstName: "John",
		LastName:  "Doe",
		// no Address1
	})
	require.True(t, createResult.Valid())

	updateResult := v.ValidateUpdate(dtos.UpdateEmployeeRequest{
		Address1: "1 Main St",
		// no FirstName field exists on the shape at all
	})
	require.True(t, updateResult.Valid())
}

func TestValidateUpdateEmailFormat(t *testing.T) {
	v := NewEmployeeValidator()

	result := v.ValidateUpdate(dtos.UpdateEmployeeRequest{
		Address1: "1 Main St",
		Email:    "not-an-email",
	})

	require.False(t, result.Valid())
	require.Equal(t, []string{"Email must be a valid email address."}, result.Errors["Email"])
}

func TestHumanizeField(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"FirstName", "First name"},
		{"LastName", "Last name"},
		{"Address1", "Address1"},
		{"SocialSecurityNumber", "Social security number"},
		{"Email", "Email"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.out, humanizeField(tc.in))
	}
}
