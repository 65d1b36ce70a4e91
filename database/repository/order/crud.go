package orderRepo

import (
	"context"
	"errors"
	"time"

	"sohoconnect/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new order and returns its ID.
func (r *mongoOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return order.ID, nil
}

// GetByID returns an order by its ID.
func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByEmail fetches all orders placed with an email address.
func (r *mongoOrderRepo) GetByEmail(ctx context.Context, email string) ([]models.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"customer.email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus transitions an order's status, recording the payment ID when set.
func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, id, status, paymentID string) error {
	update := bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}
	if paymentID != "" {
		update["paymentId"] = paymentID
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("order not found")
	}
	return nil
}

// nextOrderNumber is a helper kept here so order numbers stay repository-local.
func nextOrderNumber() string {
	return "SOHO-" + time.Now().Format("20060102") + "-" + uuid.New().String()[:8]
}

// EnsureOrderNumber fills in a generated order number when missing.
func EnsureOrderNumber(order *models.Order) {
	if order.OrderNumber == "" {
		order.OrderNumber = nextOrderNumber()
	}
}
