package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/models"
)

func (s *Shop) ListRepairs(ctx context.Context) ([]models.Repair, error) {
	cursor, err := s.repairs.Find(ctx, bson.M{}, byCreatedAtDesc())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var repairs []models.Repair
	if err := cursor.All(ctx, &repairs); err != nil {
		return nil, err
	}
	for i := range repairs {
		normalizeRepair(&repairs[i])
	}
	return repairs, nil
}

func (s *Shop) GetRepair(ctx context.Context, id string) (*models.Repair, error) {
	var r models.Repair
	err := s.repairs.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if err != nil {
		return nil, mapNotFound(err)
	}
	normalizeRepair(&r)
	return &r, nil
}

func (s *Shop) CreateRepair(ctx context.Context, r *models.Repair) error {
	if r.ID == "" {
		r.ID = newID()
	}
	r.CreatedAt = now()
	_, err := s.repairs.InsertOne(ctx, r)
	return err
}

func (s *Shop) UpdateRepair(ctx context.Context, r *models.Repair) error {
	ts := now()
	r.UpdatedAt = &ts
	res, err := s.repairs.ReplaceOne(ctx, bson.M{"_id": r.ID}, r)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repair.ErrNotFound
	}
	return nil
}

// UpdateStatus persists a workflow transition as a single-field write,
// the same shape the UI used, so concurrent edits of other fields are
// not clobbered by a status click.
func (s *Shop) UpdateStatus(ctx context.Context, id string, status repair.Status, updatedAt models.Timestamp) error {
	res, err := s.repairs.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":    string(status),
			"updatedAt": updatedAt,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repair.ErrNotFound
	}
	return nil
}

func (s *Shop) DeleteRepair(ctx context.Context, id string) error {
	res, err := s.repairs.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repair.ErrNotFound
	}
	return nil
}

// normalizeRepair coerces what the schemaless store returns into the
// shapes the rest of the code assumes. This is the single deserialization
// boundary: legacy Bulgarian status labels become codes here and nowhere
// else.
func normalizeRepair(r *models.Repair) {
	r.Status = string(repair.ParseStatus(r.Status))
}
