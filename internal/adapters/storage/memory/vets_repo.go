package memory

import (
	"context"
	"sort"
	"sync"

	"petclinic-visits/internal/domain/vets"
)

type vetRepo struct {
	mu   sync.RWMutex
	byID map[int]vets.Vet
}

func NewVetRepo(seed ...vets.Vet) vets.Repository {
	r := &vetRepo{
		byID: make(map[int]vets.Vet),
	}
	for _, v := range seed {
		r.byID[v.ID] = v
	}
	return r
}

func (r *vetRepo) List(ctx context.Context) ([]vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]vets.Vet, 0, len(r.byID))
	for _, v := range r.byID {
		v.Specialties = append([]string(nil), v.Specialties...)
		out = append(out, v)
	}

	// Orden por apellido, nombre (como se muestran en el select)
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].FirstName < out[j].FirstName
	})
	return out, nil
}
