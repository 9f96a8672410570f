package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"petclinic-visits/internal/domain/pets"
	"petclinic-visits/internal/domain/visits"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) GetByID(ctx context.Context, id int) (pets.Pet, error) {
	var p pets.Pet
	var bd sql.NullString

	err := r.db.QueryRowContext(ctx,
		`SELECT id, owner_id, name, type, birth_date FROM pets WHERE id = ?`, id,
	).Scan(&p.ID, &p.OwnerID, &p.Name, &p.Type, &bd)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("failed to get pet: %w", err)
	}

	if bd.Valid && bd.String != "" {
		t, err := time.Parse(visits.DateLayout, bd.String)
		if err != nil {
			return pets.Pet{}, fmt.Errorf("pet %d: bad birth_date %q: %w", id, bd.String, err)
		}
		p.BirthDate = &t
	}
	return p, nil
}
