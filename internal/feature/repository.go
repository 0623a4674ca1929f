package feature

import (
	"context"
	"errors"
)

// ErrProjectNotFound is returned when a project id has no stored collection.
var ErrProjectNotFound = errors.New("project not found")

// ProjectInfo describes a stored project without its feature collection.
type ProjectInfo struct {
	ID           string
	Name         string
	FeatureCount int
}

// Repository defines the storage interface for feature collections.
// Saves are whole-collection replacements: the stored state after SaveTasks
// is exactly the given slice, regardless of what was there before.
type Repository interface {
	// LoadTasks returns the feature collection for a project.
	// Returns ErrProjectNotFound when the project does not exist.
	LoadTasks(ctx context.Context, projectID string) ([]Feature, error)

	// SaveTasks replaces a project's feature collection atomically.
	SaveTasks(ctx context.Context, projectID string, features []Feature) error

	// ListProjects returns summaries of all stored projects.
	ListProjects(ctx context.Context) ([]ProjectInfo, error)

	// DeleteProject removes a project and its features.
	DeleteProject(ctx context.Context, projectID string) error

	// Close releases any resources held by the repository.
	Close() error
}
