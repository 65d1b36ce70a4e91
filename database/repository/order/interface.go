package orderRepo

import (
	"context"

	"sohoconnect/database"
	"sohoconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository persists webstore orders.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (string, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByEmail(ctx context.Context, email string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status, paymentID string) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns a new OrderRepository instance using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database("sohoconnect")
	return &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
}
