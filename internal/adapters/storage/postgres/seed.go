package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"petclinic-visits/internal/adapters/storage/seed"
)

// Seed carga los datos de ejemplo. Es idempotente: filas con el mismo id se
// ignoran, y las secuencias quedan después del id más alto.
func Seed(ctx context.Context, db *sql.DB, data seed.Data) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, v := range data.Vets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO vets (id, first_name, last_name) VALUES ($1,$2,$3)
			ON CONFLICT (id) DO NOTHING
		`, v.ID, v.FirstName, v.LastName); err != nil {
			return fmt.Errorf("seed vet %d: %w", v.ID, err)
		}
		for _, s := range v.Specialties {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO vet_specialties (vet_id, specialty) VALUES ($1,$2)
				ON CONFLICT DO NOTHING
			`, v.ID, s); err != nil {
				return fmt.Errorf("seed vet specialty %d: %w", v.ID, err)
			}
		}
	}

	for _, p := range data.Pets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pets (id, owner_id, name, type, birth_date) VALUES ($1,$2,$3,$4,$5)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.OwnerID, p.Name, p.Type, toNullDate(p.BirthDate)); err != nil {
			return fmt.Errorf("seed pet %d: %w", p.ID, err)
		}
	}

	for _, v := range data.Visits {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO visits (id, pet_id, vet_id, visit_date, description) VALUES ($1,$2,$3,$4,$5)
			ON CONFLICT (id) DO NOTHING
		`, v.ID, v.PetID, toNullVet(v.VetID), v.Date, v.Description); err != nil {
			return fmt.Errorf("seed visit %d: %w", v.ID, err)
		}
	}

	for _, table := range []string{"vets", "pets", "visits"} {
		q := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`, table)
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("reset sequence %s: %w", table, err)
		}
	}

	return tx.Commit()
}
