package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents one schema change applied in order.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the full ordered schema history. Append only.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_walk_sessions",
		SQL: `
			CREATE TABLE IF NOT EXISTS walk_sessions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				device_id TEXT NOT NULL DEFAULT '',
				started_at INTEGER NOT NULL,
				ended_at INTEGER NOT NULL,
				start_latitude REAL NOT NULL,
				start_longitude REAL NOT NULL,
				end_latitude REAL NOT NULL,
				end_longitude REAL NOT NULL,
				distance_km REAL NOT NULL,
				steps INTEGER NOT NULL,
				bearing_degrees REAL NOT NULL DEFAULT 0,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_walk_sessions_started_at
				ON walk_sessions(started_at);
		`,
	},
	{
		Version: 2,
		Name:    "create_hourly_steps",
		SQL: `
			CREATE TABLE IF NOT EXISTS hourly_steps (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				day TEXT NOT NULL,
				hour INTEGER NOT NULL CHECK (hour >= 0 AND hour < 24),
				steps INTEGER NOT NULL DEFAULT 0,
				UNIQUE(day, hour)
			);
		`,
	},
}

// Migrate applies all pending migrations to the database.
func Migrate(conn *sql.DB) error {
	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := conn.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		err := Transaction(conn, func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.SQL); err != nil {
				return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
			}
			_, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name)
			return err
		})
		if err != nil {
			return err
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}
