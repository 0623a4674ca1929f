package store

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS projects (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS features (
			id         TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			name       TEXT NOT NULL,
			position   INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS assignments (
			id         TEXT PRIMARY KEY,
			feature_id TEXT NOT NULL REFERENCES features(id) ON DELETE CASCADE,
			role       TEXT NOT NULL DEFAULT '',
			label      TEXT NOT NULL DEFAULT '',
			start_date DATE NOT NULL,
			end_date   DATE NOT NULL,
			progress   INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
			color      TEXT NOT NULL DEFAULT '',
			position   INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_features_project ON features(project_id, position);
		CREATE INDEX IF NOT EXISTS idx_assignments_feature ON assignments(feature_id, position);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
