package vets

import "context"

type Repository interface {
	List(ctx context.Context) ([]Vet, error)
}
