package repositories

import "context"

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id BIGSERIAL PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    social_security_number TEXT NOT NULL DEFAULT '',
    address1 TEXT NOT NULL DEFAULT '',
    address2 TEXT NOT NULL DEFAULT '',
    city TEXT NOT NULL DEFAULT '',
    state TEXT NOT NULL DEFAULT '',
    zip_code TEXT NOT NULL DEFAULT '',
    phone_number TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL DEFAULT ''
);
`

const createEmployeeBenefitsTable = `
CREATE TABLE IF NOT EXISTS employee_benefits (
    id BIGSERIAL PRIMARY KEY,
    employee_id BIGINT NOT NULL REFERENCES employees(id),
    benefit_type TEXT NOT NULL,
    cost NUMERIC(10,2) NOT NULL CHECK (cost >= 0)
);
`

// Migrate bootstraps the schema on startup. Statements are idempotent
// so repeated starts against the same database are safe.
func Migrate(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, createEmployeesTable); err != nil {
		return err
	}
	if _, err := db.Exec(ctx, createEmployeeBenefitsTable); err != nil {
		return err
	}
	return nil
}
