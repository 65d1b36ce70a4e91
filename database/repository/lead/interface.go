package leadRepo

import (
	"context"

	"sohoconnect/database"
	"sohoconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LeadRepository persists captured leads.
type LeadRepository interface {
	Create(ctx context.Context, lead models.Lead) (string, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	GetByEmail(ctx context.Context, email string) (*models.Lead, error)
	GetByTier(ctx context.Context, tier models.LeadTier) ([]models.Lead, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo returns a new LeadRepository instance using MongoDB.
func NewMongoLeadRepo() LeadRepository {
	db := database.MongoClient.Database("sohoconnect")
	return &mongoLeadRepo{
		coll: db.Collection("leads"),
	}
}
