package cart

import (
	"context"
	"time"

	"sohoconnect/models"
)

// GetCart loads the persisted items and derives fresh totals.
func (s *DefaultCartService) GetCart(ctx context.Context, cartID string) models.Cart {
	items := s.Store.Load(ctx, cartID)
	return s.withTotals(items)
}

// AddItem appends a product or increments its quantity. Exceeding the
// product's stock is a no-op returning the prior state with ErrStockExceeded.
func (s *DefaultCartService) AddItem(ctx context.Context, cartID string, product models.Product) (models.Cart, error) {
	items := s.Store.Load(ctx, cartID)

	for i, item := range items {
		if item.Product.Slug == product.Slug {
			next := item.Quantity + 1
			if product.StockCount > 0 && next > product.StockCount {
				return s.withTotals(items), ErrStockExceeded
			}
			updated := make([]models.CartItem, len(items))
			copy(updated, items)
			updated[i].Quantity = next
			if err := s.Store.Save(ctx, cartID, updated); err != nil {
				return s.withTotals(items), err
			}
			return s.withTotals(updated), nil
		}
	}

	if product.StockCount == 0 && !product.InStock {
		return s.withTotals(items), ErrStockExceeded
	}

	updated := append(append([]models.CartItem{}, items...), models.CartItem{
		Product:  product,
		Quantity: 1,
		AddedAt:  time.Now(),
	})
	if err := s.Store.Save(ctx, cartID, updated); err != nil {
		return s.withTotals(items), err
	}
	return s.withTotals(updated), nil
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line;
// exceeding stock is a rejected no-op returning the prior state.
func (s *DefaultCartService) UpdateQuantity(ctx context.Context, cartID, slug string, quantity int) (models.Cart, error) {
	items := s.Store.Load(ctx, cartID)

	idx := -1
	for i, item := range items {
		if item.Product.Slug == slug {
			idx = i
			break
		}
	}
	if idx == -1 {
		return s.withTotals(items), ErrItemNotFound
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, cartID, slug)
	}

	stock := items[idx].Product.StockCount
	if stock > 0 && quantity > stock {
		return s.withTotals(items), ErrStockExceeded
	}

	updated := make([]models.CartItem, len(items))
	copy(updated, items)
	updated[idx].Quantity = quantity
	if err := s.Store.Save(ctx, cartID, updated); err != nil {
		return s.withTotals(items), err
	}
	return s.withTotals(updated), nil
}

// RemoveItem drops a line from the cart.
func (s *DefaultCartService) RemoveItem(ctx context.Context, cartID, slug string) (models.Cart, error) {
	items := s.Store.Load(ctx, cartID)

	updated := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.Slug != slug {
			updated = append(updated, item)
		}
	}
	if err := s.Store.Save(ctx, cartID, updated); err != nil {
		return s.withTotals(items), err
	}
	return s.withTotals(updated), nil
}

// ClearCart empties the persisted cart.
func (s *DefaultCartService) ClearCart(ctx context.Context, cartID string) error {
	return s.Store.Clear(ctx, cartID)
}

func (s *DefaultCartService) withTotals(items []models.CartItem) models.Cart {
	return models.Cart{
		Items:      items,
		CartTotals: s.Rules.CalculateCartTotals(items),
	}
}
