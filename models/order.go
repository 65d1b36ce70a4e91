package models

import "time"

// DeliveryMethod selects between courier delivery and store pickup.
type DeliveryMethod string

const (
	DeliveryCourier DeliveryMethod = "delivery"
	DeliveryPickup  DeliveryMethod = "pickup"
)

// CustomerInfo is the checkout contact and shipping block.
type CustomerInfo struct {
	FirstName        string `bson:"firstName" json:"firstName"`
	LastName         string `bson:"lastName" json:"lastName"`
	Email            string `bson:"email" json:"email"`
	Phone            string `bson:"phone" json:"phone"`
	Address          string `bson:"address,omitempty" json:"address,omitempty"`
	City             string `bson:"city,omitempty" json:"city,omitempty"`
	Province         string `bson:"province,omitempty" json:"province,omitempty"`
	PostalCode       string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Company          string `bson:"company,omitempty" json:"company,omitempty"`
	VATNumber        string `bson:"vatNumber,omitempty" json:"vatNumber,omitempty"`
	MarketingConsent bool   `bson:"marketingConsent" json:"marketingConsent"`
}

// Order is a confirmed checkout persisted for fulfilment.
type Order struct {
	ID             string         `bson:"id" json:"id"`
	OrderNumber    string         `bson:"orderNumber" json:"orderNumber"`
	Customer       CustomerInfo   `bson:"customer" json:"customer"`
	Items          []CartItem     `bson:"items" json:"items"`
	Subtotal       float64        `bson:"subtotal" json:"subtotal"`
	GovtLevy       float64        `bson:"govtLevy" json:"govtLevy"`
	VAT            float64        `bson:"vat" json:"vat"` // disclosed separately, not folded into Total
	DeliveryFee    float64        `bson:"deliveryFee" json:"deliveryFee"`
	Total          float64        `bson:"total" json:"total"`
	DeliveryMethod DeliveryMethod `bson:"deliveryMethod" json:"deliveryMethod"`
	PaymentMethod  string         `bson:"paymentMethod" json:"paymentMethod"` // ecocash, card, bank_transfer, cash
	PaymentID      string         `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	Status         string         `bson:"status" json:"status"` // pending, confirmed, cancelled
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt"`
}
