// Package store provides SQLite persistence for feature collections.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/feature"
)

// SQLite implements feature.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Cascading deletes keep features/assignments in sync with projects.
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// LoadTasks returns the feature collection for a project in stored order.
func (s *SQLite) LoadTasks(ctx context.Context, projectID string) ([]feature.Feature, error) {
	var exists int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE id = ?`, projectID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("querying project: %w", err)
	}
	if exists == 0 {
		return nil, feature.ErrProjectNotFound
	}

	features, err := s.loadFeatures(ctx, projectID)
	if err != nil {
		return nil, err
	}

	for i := range features {
		assignments, err := s.loadAssignments(ctx, features[i].ID)
		if err != nil {
			return nil, err
		}
		features[i].Assignments = assignments
	}

	return features, nil
}

func (s *SQLite) loadFeatures(ctx context.Context, projectID string) ([]feature.Feature, error) {
	query := `
		SELECT id, name
		FROM features
		WHERE project_id = ?
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying features: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var features []feature.Feature
	for rows.Next() {
		var f feature.Feature
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("scanning feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating features: %w", err)
	}

	return features, nil
}

func (s *SQLite) loadAssignments(ctx context.Context, featureID string) ([]feature.Assignment, error) {
	query := `
		SELECT id, role, label, start_date, end_date, progress, color
		FROM assignments
		WHERE feature_id = ?
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query, featureID)
	if err != nil {
		return nil, fmt.Errorf("querying assignments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var assignments []feature.Assignment
	for rows.Next() {
		var (
			a          feature.Assignment
			start, end string
		)
		if err := rows.Scan(&a.ID, &a.Role, &a.Label, &start, &end, &a.Progress, &a.Color); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}

		a.Start, err = parseStoredDate(start)
		if err != nil {
			return nil, fmt.Errorf("parsing start date: %w", err)
		}
		a.End, err = parseStoredDate(end)
		if err != nil {
			return nil, fmt.Errorf("parsing end date: %w", err)
		}

		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}

	return assignments, nil
}

// SaveTasks replaces a project's feature collection in a single transaction.
// The stored state afterwards is exactly the given slice; concurrent savers
// follow last-write-wins.
func (s *SQLite) SaveTasks(ctx context.Context, projectID string, features []feature.Feature) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO projects (id, updated_at) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at
	`, projectID, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("upserting project: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM features WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("clearing features: %w", err)
	}

	featStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO features (id, project_id, name, position) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing feature insert: %w", err)
	}
	defer func() { _ = featStmt.Close() }()

	asgStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO assignments (id, feature_id, role, label, start_date, end_date, progress, color, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing assignment insert: %w", err)
	}
	defer func() { _ = asgStmt.Close() }()

	for fi, f := range features {
		if _, err := featStmt.ExecContext(ctx, f.ID, projectID, f.Name, fi); err != nil {
			return fmt.Errorf("inserting feature %q: %w", f.Name, err)
		}
		for ai, a := range f.Assignments {
			_, err := asgStmt.ExecContext(ctx,
				a.ID,
				f.ID,
				a.Role,
				a.Label,
				dateutil.FormatDate(a.Start),
				dateutil.FormatDate(a.End),
				a.Progress,
				a.Color,
				ai,
			)
			if err != nil {
				return fmt.Errorf("inserting assignment %q: %w", a.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// ListProjects returns summaries of all stored projects, most recently
// updated first.
func (s *SQLite) ListProjects(ctx context.Context) ([]feature.ProjectInfo, error) {
	query := `
		SELECT p.id, p.name, COUNT(f.id)
		FROM projects p
		LEFT JOIN features f ON f.project_id = p.id
		GROUP BY p.id
		ORDER BY p.updated_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []feature.ProjectInfo
	for rows.Next() {
		var p feature.ProjectInfo
		if err := rows.Scan(&p.ID, &p.Name, &p.FeatureCount); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	return projects, nil
}

// DeleteProject removes a project; features and assignments cascade.
func (s *SQLite) DeleteProject(ctx context.Context, projectID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, projectID)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return feature.ErrProjectNotFound
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseStoredDate parses the date formats SQLite might return for a DATE
// column. Dates are calendar days; they carry no timezone.
func parseStoredDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateutil.DateFormat, s); err == nil {
		return t, nil
	}

	// SQLite sometimes returns DATE columns as "2006-01-02T00:00:00Z".
	if len(s) >= 10 {
		if t, err := time.Parse(dateutil.DateFormat, s[:10]); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
