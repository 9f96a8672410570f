package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS vets (
    id         INTEGER PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS vet_specialties (
    vet_id    INTEGER NOT NULL REFERENCES vets(id),
    specialty TEXT NOT NULL,
    PRIMARY KEY (vet_id, specialty)
);

CREATE TABLE IF NOT EXISTS pets (
    id         INTEGER PRIMARY KEY,
    owner_id   INTEGER NOT NULL,
    name       TEXT NOT NULL,
    type       TEXT NOT NULL DEFAULT '',
    birth_date TEXT
);

CREATE TABLE IF NOT EXISTS visits (
    id          INTEGER PRIMARY KEY,
    pet_id      INTEGER NOT NULL REFERENCES pets(id),
    vet_id      INTEGER REFERENCES vets(id),
    visit_date  TEXT NOT NULL,
    description TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visits_pet_id ON visits(pet_id);
`

// Open abre (o crea) la base SQLite e inicializa el schema.
// Con ":memory:" se fuerza una sola conexión: cada conexión nueva sería
// otra base vacía.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
