package leadRepo

import (
	"context"
	"errors"
	"time"

	"sohoconnect/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new lead and returns its ID.
func (r *mongoLeadRepo) Create(ctx context.Context, lead models.Lead) (string, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	lead.CreatedAt = time.Now()
	lead.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return "", err
	}
	return lead.ID, nil
}

// GetByID returns a lead by its ID.
func (r *mongoLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByEmail returns the most recent lead for an email address.
func (r *mongoLeadRepo) GetByEmail(ctx context.Context, email string) (*models.Lead, error) {
	var lead models.Lead
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&lead)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByTier fetches all leads in a given tier.
func (r *mongoLeadRepo) GetByTier(ctx context.Context, tier models.LeadTier) ([]models.Lead, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"score.tier": tier})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// DeleteByID removes a lead by ID.
func (r *mongoLeadRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("lead not found")
	}
	return nil
}
