package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Quote calculator endpoints.
	GetServicesHandler    gin.HandlerFunc
	QuoteEstimateHandler  gin.HandlerFunc
	CaptureLeadHandler    gin.HandlerFunc
	GetLeadsByTierHandler gin.HandlerFunc

	// Webstore endpoints.
	GetCartHandler        gin.HandlerFunc
	AddCartItemHandler    gin.HandlerFunc
	UpdateCartItemHandler gin.HandlerFunc
	RemoveCartItemHandler gin.HandlerFunc
	ClearCartHandler      gin.HandlerFunc
	CheckoutHandler       gin.HandlerFunc
	GetOrderHandler       gin.HandlerFunc
	ConfirmPaymentHandler gin.HandlerFunc

	// Consultation endpoints.
	StartConsultationHandler  gin.HandlerFunc
	AnswerConsultationHandler gin.HandlerFunc
	BackConsultationHandler   gin.HandlerFunc
	CancelConsultationHandler gin.HandlerFunc

	// Internal campaign endpoints.
	UploadCampaignLeadsHandler gin.HandlerFunc
	GenerateCampaignHandler    gin.HandlerFunc
	SendCampaignHandler        gin.HandlerFunc
	GetCampaignLogsHandler     gin.HandlerFunc
}
