package models

import "time"

// Product is a webstore item. Stock figures come from the store configuration.
type Product struct {
	ID         string  `json:"id"`
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Image      string  `json:"image,omitempty"`
	InStock    bool    `json:"inStock"`
	StockCount int     `json:"stockCount"`
	SKU        string  `json:"sku,omitempty"`
}

// CartItem is a single cart line. Quantity is always >= 1; a quantity
// update to zero removes the line instead.
type CartItem struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	AddedAt  time.Time `json:"addedAt"`
}

// CartTotals is derived from the cart lines on every read; it is never
// stored independently of the items.
// Invariant: GovtLevy = round(Subtotal * levyRate, 2); Total = Subtotal + GovtLevy.
type CartTotals struct {
	Subtotal  float64 `json:"subtotal"`
	GovtLevy  float64 `json:"govtLevy"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// Cart is the full client cart as persisted and returned to callers.
type Cart struct {
	Items []CartItem `json:"items"`
	CartTotals
}
