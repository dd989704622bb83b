package repository

import (
	"context"
	"errors"

	"wchub/internal/domain/entity"
)

// ErrProjectNotFound is returned when an id-based project lookup misses.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines the standard operations for project persistence.
type ProjectRepository interface {
	// Create persists a new project listing.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a single project by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Project, error)

	// List retrieves projects ordered by creation time descending.
	// When ownerID is non-nil only that owner's projects are returned.
	List(ctx context.Context, ownerID *int64) ([]*entity.Project, error)

	// Update modifies an existing project listing.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project listing by its unique ID.
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of project listings.
	Count(ctx context.Context) (int64, error)
}
