package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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
		WHERE pet_id = ?
		ORDER BY visit_date ASC, id ASC
	`, petID)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
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
	row := r.db.QueryRowContext(ctx,
		`SELECT id, pet_id, vet_id, visit_date, description FROM visits WHERE id = ?`, id)

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
	date := v.Date.Format(visits.DateLayout)

	if v.IsNew() {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO visits (pet_id, vet_id, visit_date, description) VALUES (?, ?, ?, ?)`,
			v.PetID, nullVet(v.VetID), date, v.Description,
		)
		if err != nil {
			return visits.Visit{}, fmt.Errorf("failed to insert visit: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return visits.Visit{}, fmt.Errorf("failed to read visit id: %w", err)
		}
		v.ID = int(id)
		return v, nil
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE visits SET pet_id = ?, vet_id = ?, visit_date = ?, description = ? WHERE id = ?`,
		v.PetID, nullVet(v.VetID), date, v.Description, v.ID,
	)
	if err != nil {
		return visits.Visit{}, fmt.Errorf("failed to update visit: %w", err)
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
	var date string
	if err := s.Scan(&v.ID, &v.PetID, &vet, &date, &v.Description); err != nil {
		return visits.Visit{}, err
	}
	if vet.Valid {
		v.VetID = int(vet.Int64)
	}

	d, err := time.Parse(visits.DateLayout, date)
	if err != nil {
		return visits.Visit{}, fmt.Errorf("visit %d: bad visit_date %q: %w", v.ID, date, err)
	}
	v.Date = d
	return v, nil
}

func nullVet(id int) sql.NullInt64 {
	if id <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(id), Valid: true}
}
