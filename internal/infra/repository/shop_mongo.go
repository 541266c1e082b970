// Package repository implements the shop's document stores on MongoDB.
// Documents keep the field names and {seconds, nanoseconds} timestamps of
// the historical Firestore export, so legacy data imports unchanged.
package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ivcho02/mechanic-api/internal/domain/repair"
	"github.com/ivcho02/mechanic-api/internal/models"
)

const (
	clientsCollection  = "clients"
	servicesCollection = "services"
	repairsCollection  = "repairs"
)

// Shop gives access to the clients, services and repairs collections.
// It satisfies repair.Repository plus the store interfaces the CRUD
// handlers declare.
type Shop struct {
	clients  *mongo.Collection
	services *mongo.Collection
	repairs  *mongo.Collection
}

func NewShop(db *mongo.Database) *Shop {
	return &Shop{
		clients:  db.Collection(clientsCollection),
		services: db.Collection(servicesCollection),
		repairs:  db.Collection(repairsCollection),
	}
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

func now() models.Timestamp {
	return models.NewTimestamp(time.Now())
}

// byCreatedAtDesc matches the ordering every read path in the source
// system used.
func byCreatedAtDesc() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt.seconds", Value: -1}})
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repair.ErrNotFound
	}
	return err
}
