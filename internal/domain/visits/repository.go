package visits

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("visit not found")
)

type Repository interface {
	ListByPet(ctx context.Context, petID int) ([]Visit, error)
	GetByID(ctx context.Context, id int) (Visit, error)

	// Save hace upsert: ID == 0 inserta y asigna ID, si no actualiza.
	Save(ctx context.Context, v Visit) (Visit, error)
}
