package order

import (
	"context"

	orderRepo "sohoconnect/database/repository/order"
	"sohoconnect/models"
	"sohoconnect/services/cart"
	"sohoconnect/services/notification"

	"go.uber.org/zap"
)

// CheckoutRequest is a checkout submission for the current cart.
type CheckoutRequest struct {
	CartID         string                `json:"cartId"`
	Customer       models.CustomerInfo   `json:"customer"`
	DeliveryMethod models.DeliveryMethod `json:"deliveryMethod"`
	PaymentMethod  string                `json:"paymentMethod"` // ecocash, card, bank_transfer, cash
}

// CheckoutResult returns the created order plus, for card payments, the
// Stripe client secret the frontend completes payment with.
type CheckoutResult struct {
	Order        models.Order `json:"order"`
	ClientSecret string       `json:"clientSecret,omitempty"`
}

// OrderService turns carts into persisted orders.
type OrderService interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ConfirmPayment(ctx context.Context, orderID, paymentID string) error
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	Repo     orderRepo.OrderRepository
	Cart     cart.CartService
	Rules    cart.Rules
	Payments PaymentHandler
	Email    notification.EmailService
	Logger   *zap.Logger
}
