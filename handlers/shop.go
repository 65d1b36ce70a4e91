package handlers

import (
	"errors"
	"net/http"

	"sohoconnect/models"
	"sohoconnect/services/cart"
	"sohoconnect/services/order"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// cartIDHeader identifies the client cart. The server issues an ID on first
// contact and the client echoes it on every subsequent cart request.
const cartIDHeader = "X-Cart-ID"

// ShopHandler exposes the webstore cart and checkout endpoints.
type ShopHandler struct {
	Cart   cart.CartService
	Orders order.OrderService
}

func NewShopHandler(cartSvc cart.CartService, orderSvc order.OrderService) *ShopHandler {
	return &ShopHandler{Cart: cartSvc, Orders: orderSvc}
}

func (h *ShopHandler) cartID(c *gin.Context) string {
	id := c.GetHeader(cartIDHeader)
	if id == "" {
		id = uuid.New().String()
	}
	c.Header(cartIDHeader, id)
	return id
}

// GetCartHandler returns the current cart with derived totals.
func (h *ShopHandler) GetCartHandler(c *gin.Context) {
	id := h.cartID(c)
	c.JSON(http.StatusOK, gin.H{"cartId": id, "cart": h.Cart.GetCart(c.Request.Context(), id)})
}

// AddCartItemHandler adds a product to the cart. Exceeding available stock
// leaves the cart unchanged and reports a warning instead of failing.
func (h *ShopHandler) AddCartItemHandler(c *gin.Context) {
	var input struct {
		Product models.Product `json:"product"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Product.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product slug is required"})
		return
	}

	id := h.cartID(c)
	updated, err := h.Cart.AddItem(c.Request.Context(), id, input.Product)
	if errors.Is(err, cart.ErrStockExceeded) {
		c.JSON(http.StatusOK, gin.H{"cartId": id, "cart": updated, "warning": "requested quantity exceeds available stock"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cartId": id, "cart": updated})
}

// UpdateCartItemHandler sets the quantity of a cart line. Zero or negative
// quantities remove the line.
func (h *ShopHandler) UpdateCartItemHandler(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id := h.cartID(c)
	updated, err := h.Cart.UpdateQuantity(c.Request.Context(), id, c.Param("slug"), input.Quantity)
	if errors.Is(err, cart.ErrStockExceeded) {
		c.JSON(http.StatusOK, gin.H{"cartId": id, "cart": updated, "warning": "requested quantity exceeds available stock"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cartId": id, "cart": updated})
}

// RemoveCartItemHandler drops a line from the cart. Removing an absent line
// is a no-op, so repeated clicks stay safe.
func (h *ShopHandler) RemoveCartItemHandler(c *gin.Context) {
	id := h.cartID(c)
	updated, err := h.Cart.RemoveItem(c.Request.Context(), id, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cartId": id, "cart": updated})
}

// ClearCartHandler empties the cart.
func (h *ShopHandler) ClearCartHandler(c *gin.Context) {
	id := h.cartID(c)
	if err := h.Cart.ClearCart(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear cart", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cartId": id, "cart": h.Cart.GetCart(c.Request.Context(), id)})
}

// CheckoutHandler turns the cart into an order.
func (h *ShopHandler) CheckoutHandler(c *gin.Context) {
	var req order.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.CartID == "" {
		req.CartID = c.GetHeader(cartIDHeader)
	}
	if req.CartID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart ID is required"})
		return
	}

	result, err := h.Orders.Checkout(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetOrderHandler fetches an order by ID.
func (h *ShopHandler) GetOrderHandler(c *gin.Context) {
	ord, err := h.Orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": ord})
}

// ConfirmPaymentHandler marks an order paid after the payment settles.
func (h *ShopHandler) ConfirmPaymentHandler(c *gin.Context) {
	var input struct {
		PaymentID string `json:"paymentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Orders.ConfirmPayment(c.Request.Context(), c.Param("id"), input.PaymentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}
