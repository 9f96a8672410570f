package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"petclinic-visits/internal/adapters/storage/seed"
	"petclinic-visits/internal/domain/pets"
	"petclinic-visits/internal/domain/visits"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitRepo_SaveAssignsIDsAfterSeed(t *testing.T) {
	repo := NewVisitRepo(seed.Default().Visits...)
	ctx := context.Background()

	v, err := repo.Save(ctx, visits.Visit{PetID: 5, VetID: 2, Date: time.Now(), Description: "checkup"})
	require.NoError(t, err)
	assert.Equal(t, 5, v.ID)

	got, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestVisitRepo_UpdateUnknownIsNotFound(t *testing.T) {
	repo := NewVisitRepo()

	_, err := repo.Save(context.Background(), visits.Visit{ID: 9, PetID: 1})
	assert.ErrorIs(t, err, visits.ErrNotFound)
}

func TestVisitRepo_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	repo := NewVisitRepo()
	ctx := context.Background()

	const n = 50
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := repo.Save(ctx, visits.Visit{PetID: 1, Description: "x"})
			if err == nil {
				ids <- v.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicated id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	list, err := repo.ListByPet(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, n)
}

func TestPetRepo_GetByIDDropsStoredVisits(t *testing.T) {
	repo, err := NewPetRepo(pets.Pet{ID: 1, Name: "Leo", Visits: []visits.Visit{{ID: 1}}})
	require.NoError(t, err)

	p, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, p.Visits)

	_, err = repo.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestNewPetRepo_RejectsBadSeed(t *testing.T) {
	_, err := NewPetRepo(pets.Pet{ID: 1}, pets.Pet{ID: 1})
	assert.ErrorIs(t, err, errExists)

	_, err = NewPetRepo(pets.Pet{Name: "sin id"})
	assert.ErrorIs(t, err, errIDRequired)

	_, err = NewPetRepo(seed.Default().Pets...)
	assert.NoError(t, err)
}
