package postgres

import (
	"context"
	"database/sql"
	"errors"

	"petclinic-visits/internal/domain/visits"
)

type VisitsRepo struct {
	db *sql.DB
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db}
}

func (r *VisitsRepo) ListByPet(ctx context.Context, petID int) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, vet_id, visit_date, description
		FROM visits
		WHERE pet_id = $1
		ORDER BY visit_date ASC, id ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VisitsRepo) GetByID(ctx context.Context, id int) (visits.Visit, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, vet_id, visit_date, description
		FROM visits
		WHERE id = $1
	`, id)

	v, err := scanVisit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return visits.Visit{}, visits.ErrNotFound
		}
		return visits.Visit{}, err
	}
	return v, nil
}

func (r *VisitsRepo) Save(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	if v.IsNew() {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO visits (pet_id, vet_id, visit_date, description)
			VALUES ($1,$2,$3,$4)
			RETURNING id
		`, v.PetID, toNullVet(v.VetID), v.Date, v.Description).Scan(&v.ID)
		if err != nil {
			return visits.Visit{}, err
		}
		return v, nil
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE visits
		SET
			pet_id = $2,
			vet_id = $3,
			visit_date = $4,
			description = $5
		WHERE id = $1
	`, v.ID, v.PetID, toNullVet(v.VetID), v.Date, v.Description)
	if err != nil {
		return visits.Visit{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return visits.Visit{}, visits.ErrNotFound
	}
	return v, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVisit(s scanner) (visits.Visit, error) {
	var v visits.Visit
	var vet sql.NullInt64
	if err := s.Scan(&v.ID, &v.PetID, &vet, &v.Date, &v.Description); err != nil {
		return visits.Visit{}, err
	}
	if vet.Valid {
		v.VetID = int(vet.Int64)
	}
	return v, nil
}

func toNullVet(id int) sql.NullInt64 {
	if id <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(id), Valid: true}
}
