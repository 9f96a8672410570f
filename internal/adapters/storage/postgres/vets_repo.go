package postgres

import (
	"context"
	"database/sql"

	"petclinic-visits/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) List(ctx context.Context) ([]vets.Vet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.first_name, v.last_name, s.specialty
		FROM vets v
		LEFT JOIN vet_specialties s ON s.vet_id = v.id
		ORDER BY v.last_name, v.first_name, v.id, s.specialty
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Vet, 0)
	for rows.Next() {
		var v vets.Vet
		var spec sql.NullString
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &spec); err != nil {
			return nil, err
		}

		// una fila por especialidad: agrupamos sobre el último vet
		if n := len(out); n > 0 && out[n-1].ID == v.ID {
			if spec.Valid {
				out[n-1].Specialties = append(out[n-1].Specialties, spec.String)
			}
			continue
		}
		if spec.Valid {
			v.Specialties = []string{spec.String}
		}
		out = append(out, v)
	}

	return out, rows.Err()
}
