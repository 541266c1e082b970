package repair

import (
	"context"
	"errors"

	"github.com/ivcho02/mechanic-api/internal/models"
)

// ErrNotFound is returned by lookups for ids that resolve to nothing.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Repairs --------
	ListRepairs(ctx context.Context) ([]models.Repair, error) // newest first
	GetRepair(ctx context.Context, id string) (*models.Repair, error)
	CreateRepair(ctx context.Context, r *models.Repair) error
	UpdateRepair(ctx context.Context, r *models.Repair) error

	// UpdateStatus persists a status transition as a single-field write
	// (plus updatedAt), matching how the UI applies transitions.
	UpdateStatus(ctx context.Context, id string, status Status, updatedAt models.Timestamp) error

	DeleteRepair(ctx context.Context, id string) error

	// -------- Collaborators --------
	GetClient(ctx context.Context, id string) (*models.Client, error)
	FindClientByEmail(ctx context.Context, email string) (*models.Client, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
}
