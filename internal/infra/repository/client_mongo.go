package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/models"
)

func (s *Shop) ListClients(ctx context.Context) ([]models.Client, error) {
	cursor, err := s.clients.Find(ctx, bson.M{}, byCreatedAtDesc())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *Shop) GetClient(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := s.clients.FindOne(ctx, bson.M{"_id": id}).Decode(&client)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &client, nil
}

// FindClientByEmail resolves the client profile linked to an account.
// When duplicates exist the newest record wins, matching the dedup rule
// used everywhere else.
func (s *Shop) FindClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	opts := byCreatedAtDesc()
	cursor, err := s.clients.Find(ctx, bson.M{"email": email}, opts.SetLimit(1))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, nil
	}
	return &clients[0], nil
}

func (s *Shop) CreateClient(ctx context.Context, c *models.Client) error {
	if c.ID == "" {
		c.ID = newID()
	}
	ts := now()
	c.CreatedAt = &ts
	_, err := s.clients.InsertOne(ctx, c)
	return err
}

func (s *Shop) UpdateClient(ctx context.Context, c *models.Client) error {
	ts := now()
	c.UpdatedAt = &ts
	res, err := s.clients.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repair.ErrNotFound
	}
	return nil
}

func (s *Shop) DeleteClient(ctx context.Context, id string) error {
	res, err := s.clients.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repair.ErrNotFound
	}
	return nil
}
