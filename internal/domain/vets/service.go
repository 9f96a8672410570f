package vets

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Vet, error) {
	return s.repo.List(ctx)
}

// Index arma un lookup por ID, usado para validar la referencia vetId.
func Index(vs []Vet) func(id int) bool {
	ids := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		ids[v.ID] = struct{}{}
	}
	return func(id int) bool {
		_, ok := ids[id]
		return ok
	}
}
