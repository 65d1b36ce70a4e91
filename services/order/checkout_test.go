package order

import (
	"context"
	"errors"
	"testing"

	"sohoconnect/models"
	"sohoconnect/services/cart"
	"sohoconnect/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var checkoutRules = cart.Rules{
	GovtLevyRate:          0.02,
	VATRate:               0.15,
	DeliveryFeeFlat:       5.0,
	FreeDeliveryThreshold: 100.0,
	USDToZWLRate:          25000.0,
}

type fakeOrderRepo struct {
	orders map[string]models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]models.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order models.Order) (string, error) {
	id := "order-1"
	r.orders[id] = order
	return id, nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	return &order, nil
}

func (r *fakeOrderRepo) GetByEmail(_ context.Context, _ string) ([]models.Order, error) {
	return nil, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id, status, paymentID string) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	order.Status = status
	if paymentID != "" {
		order.PaymentID = paymentID
	}
	r.orders[id] = order
	return nil
}

type fakePayments struct {
	calls int
	err   error
}

func (p *fakePayments) CreateIntent(_ context.Context, _ float64, _ string) (string, string, error) {
	p.calls++
	if p.err != nil {
		return "", "", p.err
	}
	return "pi_test", "secret_test", nil
}

type confirmationEmailService struct {
	confirmed []models.Order
}

func (e *confirmationEmailService) SendEmail(_ context.Context, _ notification.EmailMessage) (string, error) {
	return "msg-1", nil
}

func (e *confirmationEmailService) CreateContact(_ context.Context, _ string, _ map[string]string) error {
	return nil
}

func (e *confirmationEmailService) NotifySalesOfLead(_ context.Context, _ models.Lead) error {
	return nil
}

func (e *confirmationEmailService) SendOrderConfirmation(_ context.Context, order models.Order) error {
	e.confirmed = append(e.confirmed, order)
	return nil
}

func newCheckoutFixture(t *testing.T) (*DefaultOrderService, cart.CartService, *fakeOrderRepo, *fakePayments, *confirmationEmailService) {
	t.Helper()
	cartService := &cart.DefaultCartService{
		Store: cart.NewMemoryStore(),
		Rules: checkoutRules,
	}
	repo := newFakeOrderRepo()
	payments := &fakePayments{}
	email := &confirmationEmailService{}
	svc := &DefaultOrderService{
		Repo:     repo,
		Cart:     cartService,
		Rules:    checkoutRules,
		Payments: payments,
		Email:    email,
		Logger:   zap.NewNop(),
	}
	return svc, cartService, repo, payments, email
}

func fillCart(t *testing.T, cartService cart.CartService, cartID string, price float64) {
	t.Helper()
	_, err := cartService.AddItem(context.Background(), cartID, models.Product{
		ID: "mug", Slug: "mug", Name: "Branded Mug", Price: price, Currency: "USD", InStock: true, StockCount: 10,
	})
	require.NoError(t, err)
}

func checkoutCustomer() models.CustomerInfo {
	return models.CustomerInfo{
		FirstName: "Nyasha",
		LastName:  "Moyo",
		Email:     "nyasha@example.com",
		Phone:     "+263772000000",
		Address:   "12 Samora Machel Ave",
		City:      "Harare",
	}
}

func TestCheckoutEcocashOrder(t *testing.T) {
	svc, cartService, repo, payments, email := newCheckoutFixture(t)
	ctx := context.Background()
	fillCart(t, cartService, "c1", 40)

	result, err := svc.Checkout(ctx, CheckoutRequest{
		CartID:         "c1",
		Customer:       checkoutCustomer(),
		DeliveryMethod: models.DeliveryCourier,
		PaymentMethod:  "ecocash",
	})

	require.NoError(t, err)
	order := result.Order
	assert.Equal(t, "order-1", order.ID)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Equal(t, 40.0, order.Subtotal)
	assert.Equal(t, 0.8, order.GovtLevy)
	assert.Equal(t, 6.0, order.VAT, "VAT is disclosed separately")
	assert.Equal(t, 5.0, order.DeliveryFee)
	// Total = subtotal + levy + delivery; VAT is never folded in.
	assert.InDelta(t, 45.8, order.Total, 1e-9)
	assert.Equal(t, "pending", order.Status)
	assert.Empty(t, result.ClientSecret)
	assert.Equal(t, 0, payments.calls, "non-card methods bypass the payment handler")

	// Checkout clears the cart and confirms by email.
	assert.Empty(t, cartService.GetCart(ctx, "c1").Items)
	require.Len(t, email.confirmed, 1)
	_, err = repo.GetByID(ctx, "order-1")
	assert.NoError(t, err)
}

func TestCheckoutCardOrderCreatesIntent(t *testing.T) {
	svc, cartService, _, payments, _ := newCheckoutFixture(t)
	fillCart(t, cartService, "c1", 150)

	result, err := svc.Checkout(context.Background(), CheckoutRequest{
		CartID:        "c1",
		Customer:      checkoutCustomer(),
		PaymentMethod: "card",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, payments.calls)
	assert.Equal(t, "secret_test", result.ClientSecret)
	assert.Equal(t, "pi_test", result.Order.PaymentID)
	assert.Equal(t, 0.0, result.Order.DeliveryFee, "free delivery above the threshold")
}

func TestCheckoutPickupHasNoDeliveryFee(t *testing.T) {
	svc, cartService, _, _, _ := newCheckoutFixture(t)
	fillCart(t, cartService, "c1", 40)

	result, err := svc.Checkout(context.Background(), CheckoutRequest{
		CartID:         "c1",
		Customer:       checkoutCustomer(),
		DeliveryMethod: models.DeliveryPickup,
		PaymentMethod:  "cash",
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Order.DeliveryFee)
	assert.InDelta(t, 40.8, result.Order.Total, 1e-9)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _, _, _ := newCheckoutFixture(t)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		CartID:        "empty",
		Customer:      checkoutCustomer(),
		PaymentMethod: "ecocash",
	})

	assert.Error(t, err)
}

func TestCheckoutRequiresCustomerDetails(t *testing.T) {
	svc, cartService, _, _, _ := newCheckoutFixture(t)
	fillCart(t, cartService, "c1", 40)

	customer := checkoutCustomer()
	customer.Email = ""

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		CartID:        "c1",
		Customer:      customer,
		PaymentMethod: "ecocash",
	})

	assert.Error(t, err)
}

func TestCheckoutPaymentFailureAbortsOrder(t *testing.T) {
	svc, cartService, repo, payments, _ := newCheckoutFixture(t)
	payments.err = errors.New("card declined")
	fillCart(t, cartService, "c1", 40)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		CartID:        "c1",
		Customer:      checkoutCustomer(),
		PaymentMethod: "card",
	})

	assert.Error(t, err)
	assert.Empty(t, repo.orders, "no order persists when the intent fails")
	assert.NotEmpty(t, cartService.GetCart(context.Background(), "c1").Items, "cart survives a failed checkout")
}

func TestConfirmPayment(t *testing.T) {
	svc, cartService, repo, _, _ := newCheckoutFixture(t)
	fillCart(t, cartService, "c1", 40)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		CartID:        "c1",
		Customer:      checkoutCustomer(),
		PaymentMethod: "ecocash",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ConfirmPayment(context.Background(), "order-1", "eco-123"))

	order, err := repo.GetByID(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", order.Status)
	assert.Equal(t, "eco-123", order.PaymentID)
}
