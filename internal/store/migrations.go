package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates the runs table and its indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			analyzed_at      TEXT NOT NULL,
			username         TEXT NOT NULL,
			version          TEXT NOT NULL,
			overall_score    INTEGER NOT NULL,
			readiness_score  INTEGER NOT NULL,
			career_stage     TEXT NOT NULL,
			ai_percentage    INTEGER NOT NULL,
			human_percentage INTEGER NOT NULL,
			complexity_level TEXT NOT NULL,
			original_repos   INTEGER NOT NULL,
			total_stars      INTEGER NOT NULL,
			result_json      TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_runs_username ON runs(username)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_analyzed_at ON runs(analyzed_at)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
