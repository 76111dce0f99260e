package repositories

import (
	"context"
	"sync"

	"github.com/poofware/employee-service/internal/models"
)

/* ------------------------------------------------------------------
   In-memory employee repository
------------------------------------------------------------------ */

// employeeMemoryRepo wraps the generic store with the one piece of
// employee-specific behavior the store cannot know about: benefit IDs.
// Benefit IDs are globally unique across the store instance and are
// assigned from their own monotonic sequence at employee creation,
// matching the BIGSERIAL column the postgres implementation uses.
type employeeMemoryRepo struct {
	store *MemoryStore[*models.Employee]

	mu            sync.Mutex
	nextBenefitID int
}

func NewEmployeeMemoryRepository() EmployeeRepository {
	return &employeeMemoryRepo{
		store:         NewMemoryStore[*models.Employee](),
		nextBenefitID: 1,
	}
}

func (r *employeeMemoryRepo) Create(ctx context.Context, e *models.Employee) (*models.Employee, error) {
	stamped := e.Clone()
	if stamped.Benefits == nil {
		stamped.Benefits = []models.EmployeeBenefit{}
	}

	r.mu.Lock()
	for i := range stamped.Benefits {
		stamped.Benefits[i].ID = r.nextBenefitID
		r.nextBenefitID++
	}
	r.mu.Unlock()

	return r.store.Create(ctx, stamped)
}

func (r *employeeMemoryRepo) GetAll(ctx context.Context) ([]*models.Employee, error) {
	return r.store.GetAll(ctx)
}

func (r *employeeMemoryRepo) GetByID(ctx context.Context, id int) (*models.Employee, error) {
	return r.store.GetByID(ctx, id)
}

func (r *employeeMemoryRepo) Update(ctx context.Context, e *models.Employee) error {
	return r.store.Update(ctx, e)
}
