package memory

import (
	"context"
	"fmt"
	"sync"

	"petclinic-visits/internal/domain/pets"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[int]pets.Pet
}

// NewPetRepo falla si alguna mascota del seed no tiene id o lo repite.
func NewPetRepo(seed ...pets.Pet) (pets.Repository, error) {
	r := &petRepo{
		byID: make(map[int]pets.Pet),
	}
	for _, p := range seed {
		if err := r.Create(context.Background(), p); err != nil {
			return nil, fmt.Errorf("seed pet %d: %w", p.ID, err)
		}
	}
	return r, nil
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID <= 0 {
		return errIDRequired
	}
	if _, exists := r.byID[p.ID]; exists {
		return errExists
	}
	// las visitas no se guardan acá; el sistema de registro es el repo de visitas
	p.Visits = nil
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}
