package campaignRepo

import (
	"context"
	"time"

	"sohoconnect/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertLeads inserts or refreshes a batch of campaign leads keyed by email.
// Returns the number of leads written.
func (r *mongoCampaignRepo) UpsertLeads(ctx context.Context, leads []models.CampaignLead) (int, error) {
	written := 0
	for _, lead := range leads {
		if lead.ID == "" {
			lead.ID = uuid.New().String()
		}
		lead.CreatedAt = time.Now()

		opts := options.Replace().SetUpsert(true)
		_, err := r.leads.ReplaceOne(ctx, bson.M{"email": lead.Email}, lead, opts)
		if err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// GetLeadsBySegment fetches campaign leads, optionally filtered by segment.
func (r *mongoCampaignRepo) GetLeadsBySegment(ctx context.Context, segment string) ([]models.CampaignLead, error) {
	filter := bson.M{}
	if segment != "" {
		filter["segment"] = segment
	}
	cursor, err := r.leads.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.CampaignLead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// CreateLog inserts a campaign send log entry and returns its ID.
func (r *mongoCampaignRepo) CreateLog(ctx context.Context, entry models.CampaignLog) (string, error) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()

	_, err := r.logs.InsertOne(ctx, entry)
	if err != nil {
		return "", err
	}
	return entry.ID, nil
}

// GetLogsByCampaign fetches all send logs for a campaign.
func (r *mongoCampaignRepo) GetLogsByCampaign(ctx context.Context, campaign string) ([]models.CampaignLog, error) {
	cursor, err := r.logs.Find(ctx, bson.M{"campaign": campaign})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.CampaignLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
