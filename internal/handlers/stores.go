package handlers

import (
	"context"

	"github.com/ivcho02/mechanic-api/internal/models"
)

// Store interfaces the CRUD handlers depend on; internal/infra/repository
// provides the Mongo implementation.

type ClientStore interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	FindClientByEmail(ctx context.Context, email string) (*models.Client, error)
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, c *models.Client) error
	DeleteClient(ctx context.Context, id string) error
}

type ServiceStore interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, svc *models.Service) error
	DeleteService(ctx context.Context, id string) error
}

type RepairStore interface {
	GetRepair(ctx context.Context, id string) (*models.Repair, error)
	DeleteRepair(ctx context.Context, id string) error
}
