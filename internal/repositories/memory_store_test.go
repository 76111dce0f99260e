package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/poofware/employee-service/internal/models"
	"github.com/poofware/employee-service/internal/utils"
)

func TestMemoryRepoCreateAssignsIncreasingIDs(t *testing.T) {
	repo := NewEmployeeMemoryRepository()
	ctx := context.Background()

	var lastID int
	for i := 0; i < 5; i++ {
		created, err := repo.Create(ctx, &models.Employee{FirstName: "John", LastName: "Doe"})
		require.NoError(t, err)
		require.Greater(t, created.ID, lastID)
		lastID = created.ID
	}
}

func TestMemoryRepoGetByIDRoundTrip(t *testing.T) {
	repo := NewEmployeeMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Employee{
		FirstName:            "John",
		LastName:             "Doe",
		SocialSecurityNumber: "123-46-7890",
		Address1:             "1 Main St",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
	require.NotNil(t, got.Benefits, "benefits default to an empty slice")
	require.Empty(t, got.Benefits)
}

func TestMemoryRepoGetByIDAbsent(t *testing.T) {
	repo := NewEmployeeMemoryRepository()

	got, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err, "absence is not an error")
	require.Nil(t, got)
}

func TestMemoryRepoGetAllInsertionOrder(t *testing.T) {
	repo := NewEmployeeMemoryRepository()
	ctx := context.Background()

	names := []string{"Alice", "Bob", "Carol"}
	for _, n := range names {
		_, err := repo.Create(ctx, &models.Employee{FirstName: n, LastName: "Doe"})
		require.NoError(t, err)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, e := range all {
		require.Equal(t, names[i], e.FirstName)
	}
}

func TestMemoryRepoGetAllEmpty(t *testing.T) {
	repo := NewEmployeeMemoryRepository()

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)
}

func TestMemoryRepoUpdate(t *testing.T) {
	repo := NewEmployeeMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Employee{FirstName: "John", LastName: "Doe"})
	require.NoError(t, err)

	created.Address1 = "2 Oak Ave"
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "2 Oak Ave", got.Address1)
}

func TestMemoryRepoUpdateAbsent(t *testing.T) {
	repo := NewEmployeeMemoryRepository()
	ctx := context.Background()

	err := repo.Update(ctx, &models.Employee{ID: 42, FirstName: "Ghost", LastName: "Entry"})
	require.ErrorIs(t, err, utils.ErrNoRowsUpdated)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all, "failed update must not mutate the store")
}

func TestMemoryRepoStampsBenefits(t *testing.T) {
	repo := NewEmployeeMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Employee{
		FirstName: "John",
		LastName:  "Doe",
		Benefits: []models.EmployeeBenefit{
			{BenefitType: models.BenefitTypeHealth, Cost: 100},
			{BenefitType: models.BenefitTypeDental, Cost: 50},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Benefits, 2)
	for _, b := range created.Benefits {
		require.Equal(t, created.ID, b.EmployeeID)
	}
	// Benefit IDs come from one global sequence.
	require.Equal(t, 1, created.Benefits[0].ID)
	require.Equal(t, 2, created.Benefits[1].ID)

	second, err := repo.Create(ctx, &models.Employee{
		FirstName: "Jane",
		LastName:  "Smith",
		Benefits: []models.EmployeeBenefit{
			{BenefitType: models.BenefitTypeVision, Cost: 25},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 3, second.Benefits[0].ID, "sequence continues across employees")
}

func TestMemoryRepoCallerCannotMutateStore(t *testing.T) {
	repo := NewEmployeeMemoryRepository()
	ctx := context.Background()

	input := &models.Employee{
		FirstName: "John",
		LastName:  "Doe",
		Benefits:  []models.EmployeeBenefit{{BenefitType: models.BenefitTypeHealth, Cost: 100}},
	}
	created, err := repo.Create(ctx, input)
	require.NoError(t, err)

	// Mutating the input or the returned value must not reach the store.
	input.FirstName = "Hacked"
	created.Benefits[0].Cost = 0

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "John", got.FirstName)
	require.Equal(t, float64(100), got.Benefits[0].Cost)
}
