package routes

const (
	// Health
	Health = "/health"

	// Employee resource
	Employees        = "/employees"
	EmployeeByID     = "/employees/{id:[0-9]+}"
	EmployeeBenefits = "/employees/{id:[0-9]+}/benefits"
)
