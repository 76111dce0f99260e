package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/poofware/employee-service/internal/dtos"
)

var ssnRegex = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)

// Result is the outcome of validating one request shape. Errors maps a
// field name to the ordered messages recorded for it; every listed field
// has at least one message.
type Result struct {
	Errors map[string][]string
}

func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// EmployeeValidator checks employee request shapes against their
// declared rules. The Create and Update rule sets are independent:
// Update does not require FirstName, Create does not require Address1.
// Validation never mutates its input.
type EmployeeValidator struct {
	validate *validator.Validate
}

func NewEmployeeValidator() *EmployeeValidator {
	v := validator.New()
	_ = v.RegisterValidation("ssn", func(fl validator.FieldLevel) bool {
		return ssnRegex.MatchString(fl.Field().String())
	})
	return &EmployeeValidator{validate: v}
}

func (v *EmployeeValidator) ValidateCreate(req dtos.CreateEmployeeRequest) Result {
	return v.check(req)
}

func (v *EmployeeValidator) ValidateUpdate(req dtos.UpdateEmployeeRequest) Result {
	return v.check(req)
}

func (v *EmployeeValidator) check(req any) Result {
	err := v.validate.Struct(req)
	if err == nil {
		return Result{}
	}

	errs := map[string][]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		errs[fe.Field()] = append(errs[fe.Field()], messageFor(fe))
	}
	return Result{Errors: errs}
}

// messageFor converts a validator error into the user-facing message
// keyed under the field name.
func messageFor(fe validator.FieldError) string {
	field := humanizeField(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required."
	case "email":
		return field + " must be a valid email address."
	case "ssn":
		return field + " must match the format ###-##-####."
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s].", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s.", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation on the '%s' tag.", field, fe.Tag())
	}
}

// humanizeField splits a CamelCase field name into words, keeping
// digits attached: "FirstName" -> "First name", "Address1" -> "Address1".
func humanizeField(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
