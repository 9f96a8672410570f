package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"petclinic-visits/internal/adapters/storage/seed"
	"petclinic-visits/internal/domain/pets"
	"petclinic-visits/internal/domain/visits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSeeded(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Seed(context.Background(), db, seed.Default()))
	// idempotente
	require.NoError(t, Seed(context.Background(), db, seed.Default()))
	return db
}

func TestPetsRepo_GetByID(t *testing.T) {
	repo := NewPetsRepo(openSeeded(t))
	ctx := context.Background()

	p, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Iggy", p.Name)
	assert.Equal(t, 4, p.OwnerID)
	require.NotNil(t, p.BirthDate)
	assert.Equal(t, "2010-11-30", p.BirthDate.Format(visits.DateLayout))

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestVetsRepo_ListGroupsSpecialties(t *testing.T) {
	repo := NewVetsRepo(openSeeded(t))

	vs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, vs, 6)

	// orden por apellido
	assert.Equal(t, "Carter", vs[0].LastName)
	assert.Empty(t, vs[0].Specialties)

	for _, v := range vs {
		if v.LastName == "Douglas" {
			assert.Equal(t, []string{"dentistry", "surgery"}, v.Specialties)
		}
	}
}

func TestVisitsRepo_SaveInsertAndUpdate(t *testing.T) {
	repo := NewVisitsRepo(openSeeded(t))
	ctx := context.Background()

	created, err := repo.Save(ctx, visits.Visit{
		PetID:       5,
		VetID:       2,
		Date:        time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: "checkup",
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, 4, "seeded ids are 1..4")

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got.Description = "follow-up"
	got.VetID = 3
	_, err = repo.Save(ctx, got)
	require.NoError(t, err)

	list, err := repo.ListByPet(ctx, 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "follow-up", list[0].Description)
	assert.Equal(t, 3, list[0].VetID)
}

func TestVisitsRepo_NotFound(t *testing.T) {
	repo := NewVisitsRepo(openSeeded(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, visits.ErrNotFound)

	_, err = repo.Save(ctx, visits.Visit{ID: 404, PetID: 1, Date: time.Now(), Description: "x"})
	assert.ErrorIs(t, err, visits.ErrNotFound)
}

func TestVisitsRepo_ListByPetOrderedByDate(t *testing.T) {
	repo := NewVisitsRepo(openSeeded(t))

	list, err := repo.ListByPet(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "rabies shot", list[0].Description)
	assert.Equal(t, "spayed", list[1].Description)
}
