package cart

import (
	"context"

	"sohoconnect/models"
)

// CartService manages a client cart over the storage port. Every mutation
// reads the current collection, computes the new one, and writes it back in
// a single assignment so rapid successive actions never lose updates.
type CartService interface {
	GetCart(ctx context.Context, cartID string) models.Cart
	AddItem(ctx context.Context, cartID string, product models.Product) (models.Cart, error)
	UpdateQuantity(ctx context.Context, cartID, slug string, quantity int) (models.Cart, error)
	RemoveItem(ctx context.Context, cartID, slug string) (models.Cart, error)
	ClearCart(ctx context.Context, cartID string) error
}

// DefaultCartService is the production implementation.
type DefaultCartService struct {
	Store Store
	Rules Rules
}
