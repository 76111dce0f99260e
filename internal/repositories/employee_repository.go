package repositories

import (
	"context"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/poofware/employee-service/internal/models"
	"github.com/poofware/employee-service/internal/utils"
)

/* ------------------------------------------------------------------
   Postgres employee repository
------------------------------------------------------------------ */

// employeeRepo persists employees and their benefits in Postgres.
// BIGSERIAL keys give both sequences the monotonic, never-reused
// behavior the contract requires.
type employeeRepo struct{ db DB }

func NewEmployeeRepository(db DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

/* ---------- Create ---------- */

func (r *employeeRepo) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	stored := e.Clone()

	err = tx.QueryRow(ctx, `
		INSERT INTO employees (
			first_name, last_name, social_security_number,
			address1, address2, city, state, zip_code,
			phone_number, email
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		stored.FirstName, stored.LastName, stored.SocialSecurityNumber,
		stored.Address1, stored.Address2, stored.City, stored.State, stored.ZipCode,
		stored.PhoneNumber, stored.Email,
	).Scan(&stored.ID)
	if err != nil {
		return nil, err
	}
	stored.SetID(stored.ID)

	if stored.Benefits == nil {
		stored.Benefits = []models.EmployeeBenefit{}
	}
	for i := range stored.Benefits {
		b := &stored.Benefits[i]
		err = tx.QueryRow(ctx, `
			INSERT INTO employee_benefits (employee_id, benefit_type, cost)
			VALUES ($1,$2,$3)
			RETURNING id
		`, b.EmployeeID, b.BenefitType, b.Cost).Scan(&b.ID)
		if err != nil {
			return nil, err
		}
	}

	return stored, nil
}

/* ---------- Reads ---------- */

func (r *employeeRepo) GetAll(ctx context.Context) ([]*models.Employee, error) {
	rows, err := r.db.Query(ctx, baseSelectEmployee()+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, e := range out {
		if err := r.loadBenefits(ctx, e); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	row := r.db.QueryRow(ctx, baseSelectEmployee()+" WHERE id=$1", id)
	e, err := scanEmployee(row)
	if err != nil || e == nil {
		return e, err
	}
	if err := r.loadBenefits(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepo) loadBenefits(ctx context.Context, e *models.Employee) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, employee_id, benefit_type, cost
		FROM employee_benefits
		WHERE employee_id=$1
		ORDER BY id
	`, e.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	e.Benefits = []models.EmployeeBenefit{}
	for rows.Next() {
		var (
			b    models.EmployeeBenefit
			cost pgtype.Numeric
		)
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.BenefitType, &cost); err != nil {
			return err
		}
		if err := cost.AssignTo(&b.Cost); err != nil {
			return err
		}
		e.Benefits = append(e.Benefits, b)
	}
	return rows.Err()
}

/* ---------- Update ---------- */

// Update replaces the addressable employee columns wholesale. Benefits
// rows are fixed at creation and never touched here.
func (r *employeeRepo) Update(ctx context.Context, e *models.Employee) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE employees
		SET first_name=$1, last_name=$2, social_security_number=$3,
		    address1=$4, address2=$5, city=$6, state=$7, zip_code=$8,
		    phone_number=$9, email=$10
		WHERE id=$11
	`,
		e.FirstName, e.LastName, e.SocialSecurityNumber,
		e.Address1, e.Address2, e.City, e.State, e.ZipCode,
		e.PhoneNumber, e.Email,
		e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNoRowsUpdated
	}
	return nil
}

/* ---------- helpers ---------- */

func baseSelectEmployee() string {
	return `
		SELECT id, first_name, last_name, social_security_number,
		       address1, address2, city, state, zip_code,
		       phone_number, email
		FROM employees`
}

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var e models.Employee
	if err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.SocialSecurityNumber,
		&e.Address1, &e.Address2, &e.City, &e.State, &e.ZipCode,
		&e.PhoneNumber, &e.Email,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
