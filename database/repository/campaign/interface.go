package campaignRepo

import (
	"context"

	"sohoconnect/database"
	"sohoconnect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CampaignRepository persists campaign leads and send logs.
type CampaignRepository interface {
	UpsertLeads(ctx context.Context, leads []models.CampaignLead) (int, error)
	GetLeadsBySegment(ctx context.Context, segment string) ([]models.CampaignLead, error)
	CreateLog(ctx context.Context, entry models.CampaignLog) (string, error)
	GetLogsByCampaign(ctx context.Context, campaign string) ([]models.CampaignLog, error)
}

type mongoCampaignRepo struct {
	leads *mongo.Collection
	logs  *mongo.Collection
}

// NewMongoCampaignRepo returns a new CampaignRepository instance using MongoDB.
func NewMongoCampaignRepo() CampaignRepository {
	db := database.MongoClient.Database("sohoconnect")
	return &mongoCampaignRepo{
		leads: db.Collection("campaign_leads"),
		logs:  db.Collection("campaign_logs"),
	}
}
