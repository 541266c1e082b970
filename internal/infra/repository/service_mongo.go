package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/models"
)

func (s *Shop) ListServices(ctx context.Context) ([]models.Service, error) {
	cursor, err := s.services.Find(ctx, bson.M{}, byCreatedAtDesc())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (s *Shop) GetService(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	err := s.services.FindOne(ctx, bson.M{"_id": id}).Decode(&svc)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &svc, nil
}

func (s *Shop) CreateService(ctx context.Context, svc *models.Service) error {
	if svc.ID == "" {
		svc.ID = newID()
	}
	ts := now()
	svc.CreatedAt = &ts
	_, err := s.services.InsertOne(ctx, svc)
	return err
}

// DeleteService removes a catalog entry. Repairs keep their own price
// snapshots, so deleting from the catalog never touches history.
func (s *Shop) DeleteService(ctx context.Context, id string) error {
	res, err := s.services.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repair.ErrNotFound
	}
	return nil
}
