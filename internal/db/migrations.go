package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS strategies (
			id              TEXT PRIMARY KEY,
			name            TEXT NOT NULL UNIQUE,
			begin_time      INTEGER NOT NULL,
			slot_duration   INTEGER NOT NULL CHECK(slot_duration > 0),
			number_of_slots INTEGER NOT NULL CHECK(number_of_slots > 0),
			updated_at      DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS activities (
			strategy_id TEXT NOT NULL REFERENCES strategies(id),
			position    INTEGER NOT NULL,
			name        TEXT NOT NULL,
			color       TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (strategy_id, position)
		);

		CREATE TABLE IF NOT EXISTS slots (
			strategy_id       TEXT NOT NULL REFERENCES strategies(id),
			slot_index        INTEGER NOT NULL,
			activity_position INTEGER,
			PRIMARY KEY (strategy_id, slot_index)
		);

		CREATE TABLE IF NOT EXISTS recent_files (
			path TEXT PRIMARY KEY,
			seq  INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_recent_files_seq ON recent_files(seq);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
