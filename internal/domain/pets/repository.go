package pets

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("pet not found")
)

type Repository interface {
	GetByID(ctx context.Context, id int) (Pet, error)
}
