package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables (ajustable luego)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS vets (
	id         SERIAL PRIMARY KEY,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS vet_specialties (
	vet_id    INTEGER NOT NULL REFERENCES vets(id),
	specialty TEXT NOT NULL,
	PRIMARY KEY (vet_id, specialty)
);

CREATE TABLE IF NOT EXISTS pets (
	id         SERIAL PRIMARY KEY,
	owner_id   INTEGER NOT NULL,
	name       TEXT NOT NULL,
	type       TEXT NOT NULL DEFAULT '',
	birth_date DATE
);

CREATE TABLE IF NOT EXISTS visits (
	id          SERIAL PRIMARY KEY,
	pet_id      INTEGER NOT NULL REFERENCES pets(id),
	vet_id      INTEGER REFERENCES vets(id),
	visit_date  DATE NOT NULL,
	description TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_visits_pet_id ON visits(pet_id);
`

// EnsureSchema crea las tablas si no existen.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("postgres schema: %w", err)
	}
	return nil
}
