package order

import (
	"context"
	"fmt"

	orderRepo "sohoconnect/database/repository/order"
	"sohoconnect/models"

	"go.uber.org/zap"
)

// Checkout validates the cart, derives totals with the jurisdiction rules,
// persists the order, and initiates payment for card checkouts. The VAT
// figure is disclosed on the order but not folded into the total.
func (s *DefaultOrderService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if req.Customer.Email == "" || req.Customer.FirstName == "" || req.Customer.LastName == "" {
		return nil, fmt.Errorf("first name, last name, and email are required")
	}

	current := s.Cart.GetCart(ctx, req.CartID)
	if len(current.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	if req.DeliveryMethod == "" {
		req.DeliveryMethod = models.DeliveryCourier
	}

	deliveryFee := s.Rules.CalculateDeliveryFee(current.Subtotal, req.DeliveryMethod)

	order := models.Order{
		Customer:       req.Customer,
		Items:          current.Items,
		Subtotal:       current.Subtotal,
		GovtLevy:       current.GovtLevy,
		VAT:            s.Rules.CalculateVAT(current.Subtotal),
		DeliveryFee:    deliveryFee,
		Total:          current.Total + deliveryFee,
		DeliveryMethod: req.DeliveryMethod,
		PaymentMethod:  req.PaymentMethod,
		Status:         "pending",
	}
	orderRepo.EnsureOrderNumber(&order)

	result := &CheckoutResult{}
	if req.PaymentMethod == "card" {
		intentID, clientSecret, err := s.Payments.CreateIntent(ctx, order.Total, order.OrderNumber)
		if err != nil {
			return nil, err
		}
		order.PaymentID = intentID
		result.ClientSecret = clientSecret
	}

	id, err := s.Repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	order.ID = id
	result.Order = order

	if err := s.Cart.ClearCart(ctx, req.CartID); err != nil {
		s.Logger.Warn("failed to clear cart after checkout", zap.String("cartID", req.CartID), zap.Error(err))
	}
	if err := s.Email.SendOrderConfirmation(ctx, order); err != nil {
		s.Logger.Warn("order confirmation email failed", zap.String("orderID", order.ID), zap.Error(err))
	}

	return result, nil
}

// GetOrder fetches an order by ID.
func (s *DefaultOrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Repo.GetByID(ctx, id)
}

// ConfirmPayment marks an order paid once the payment settles.
func (s *DefaultOrderService) ConfirmPayment(ctx context.Context, orderID, paymentID string) error {
	if err := s.Repo.UpdateStatus(ctx, orderID, "confirmed", paymentID); err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}
	s.Logger.Info("order confirmed", zap.String("orderID", orderID))
	return nil
}
