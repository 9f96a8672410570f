package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic-visits/internal/domain/visits"
)

type visitRepo struct {
	mu     sync.RWMutex
	byID   map[int]visits.Visit
	nextID int
}

func NewVisitRepo(seed ...visits.Visit) visits.Repository {
	r := &visitRepo{
		byID:   make(map[int]visits.Visit),
		nextID: 1,
	}
	for _, v := range seed {
		r.byID[v.ID] = v
		if v.ID >= r.nextID {
			r.nextID = v.ID + 1
		}
	}
	return r
}

func (r *visitRepo) ListByPet(ctx context.Context, petID int) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]visits.Visit, 0)
	for _, v := range r.byID {
		if v.PetID == petID {
			out = append(out, v)
		}
	}

	// Orden por fecha asc, desempate por id
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *visitRepo) GetByID(ctx context.Context, id int) (visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return visits.Visit{}, visits.ErrNotFound
	}
	return v, nil
}

func (r *visitRepo) Save(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v.IsNew() {
		v.ID = r.nextID
		r.nextID++
		r.byID[v.ID] = v
		return v, nil
	}

	if _, ok := r.byID[v.ID]; !ok {
		return visits.Visit{}, visits.ErrNotFound
	}
	r.byID[v.ID] = v
	return v, nil
}
