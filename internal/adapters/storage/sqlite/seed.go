package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"petclinic-visits/internal/adapters/storage/seed"
	"petclinic-visits/internal/domain/visits"
)

// Seed carga los datos de ejemplo; filas existentes se ignoran.
func Seed(ctx context.Context, db *sql.DB, data seed.Data) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, v := range data.Vets {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO vets (id, first_name, last_name) VALUES (?, ?, ?)`,
			v.ID, v.FirstName, v.LastName,
		); err != nil {
			return fmt.Errorf("seed vet %d: %w", v.ID, err)
		}
		for _, s := range v.Specialties {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO vet_specialties (vet_id, specialty) VALUES (?, ?)`,
				v.ID, s,
			); err != nil {
				return fmt.Errorf("seed vet specialty %d: %w", v.ID, err)
			}
		}
	}

	for _, p := range data.Pets {
		var bd sql.NullString
		if p.BirthDate != nil {
			bd = sql.NullString{String: p.BirthDate.Format(visits.DateLayout), Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO pets (id, owner_id, name, type, birth_date) VALUES (?, ?, ?, ?, ?)`,
			p.ID, p.OwnerID, p.Name, p.Type, bd,
		); err != nil {
			return fmt.Errorf("seed pet %d: %w", p.ID, err)
		}
	}

	for _, v := range data.Visits {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO visits (id, pet_id, vet_id, visit_date, description) VALUES (?, ?, ?, ?, ?)`,
			v.ID, v.PetID, nullVet(v.VetID), v.Date.Format(visits.DateLayout), v.Description,
		); err != nil {
			return fmt.Errorf("seed visit %d: %w", v.ID, err)
		}
	}

	return tx.Commit()
}
