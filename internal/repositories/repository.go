package repositories

import (
	"context"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/poofware/employee-service/internal/models"
)

// DB is the subset of *pgxpool.Pool the repositories use, so tests can
// substitute a different connection source.
type DB interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

/*
Entity:

* `comparable`  → lets callers compare a result against the zero value
  (nil for pointer types) to detect not-found
* GetID/SetID  → the integer identity the store owns
* Clone        → deep copy, so stores never alias caller memory
*/
type Entity[T any] interface {
	comparable
	GetID() int
	SetID(id int)
	Clone() T
}

// Repository is the generic CRUD contract. Create assigns the next
// unused ID and returns the identified entity. GetByID returns the
// zero value of T with a nil error when no entity matches; absence is
// a normal outcome, not an error. Update replaces the stored record
// wholesale and returns utils.ErrNoRowsUpdated when the ID matches
// nothing.
type Repository[T Entity[T]] interface {
	Create(ctx context.Context, entity T) (T, error)
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int) (T, error)
	Update(ctx context.Context, entity T) error
}

// EmployeeRepository is the contract the employee service depends on.
type EmployeeRepository = Repository[*models.Employee]
