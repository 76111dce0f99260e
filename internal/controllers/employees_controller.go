package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/poofware/employee-service/internal/dtos"
	"github.com/poofware/employee-service/internal/services"
	"github.com/poofware/employee-service/internal/utils"
	"github.com/poofware/employee-service/internal/validation"
)

type EmployeesController struct {
	employeeService *services.EmployeeService
	validator       *validation.EmployeeValidator
}

func NewEmployeesController(s *services.EmployeeService, v *validation.EmployeeValidator) *EmployeesController {
	return &EmployeesController{
		employeeService: s,
		validator:       v,
	}
}

// employeeID pulls the {id} path variable. The route pattern restricts
// it to digits, so Atoi only fails on requests that never match.
func employeeID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

// GET /employees
func (c *EmployeesController) ListEmployeesHandler(w http.ResponseWriter, r *http.Request) {
	employees, err := c.employeeService.GetEmployees(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list employees", nil, err)
		return
	}

	resp := make([]dtos.Employee, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, dtos.NewEmployeeFromModel(*e))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /employees/{id}
func (c *EmployeesController) GetEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid employee ID", nil, err)
		return
	}

	employee, err := c.employeeService.GetEmployeeByID(r.Context(), id)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch employee", nil, err)
		return
	}
	if employee == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Employee not found", nil)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewEmployeeFromModel(*employee))
}

// POST /employees
func (c *EmployeesController) CreateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}

	if result := c.validator.ValidateCreate(req); !result.Valid() {
		utils.RespondFieldErrors(w, result.Errors)
		return
	}

	employee, err := c.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create employee", nil, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/employees/%d", employee.ID))
	utils.RespondWithJSON(w, http.StatusCreated, dtos.NewEmployeeFromModel(*employee))
}

// PUT /employees/{id}
//
// Validation runs before the existence check: an invalid payload is a
// property of the payload, not the target, and is reported even when
// the target does not exist.
func (c *EmployeesController) UpdateEmployeeHandler(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid employee ID", nil, err)
		return
	}

	var req dtos.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}

	if result := c.validator.ValidateUpdate(req); !result.Valid() {
		utils.RespondFieldErrors(w, result.Errors)
		return
	}

	employee, err := c.employeeService.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		// Covers the entity vanishing between lookup and update.
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update employee", nil, err)
		return
	}
	if employee == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Employee not found", nil)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewEmployeeFromModel(*employee))
}

// GET /employees/{id}/benefits
func (c *EmployeesController) ListEmployeeBenefitsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := employeeID(r)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid employee ID", nil, err)
		return
	}

	benefits, found, err := c.employeeService.GetEmployeeBenefits(r.Context(), id)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list benefits", nil, err)
		return
	}
	if !found {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Employee not found", nil)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewEmployeeBenefitsFromModel(benefits))
}
