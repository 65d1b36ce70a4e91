package routes

import (
	"net/http"
	"time"

	"sohoconnect/handlers"
	"sohoconnect/middleware"
	"sohoconnect/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes registers the quote calculator and lead capture endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/services", hb.GetServicesHandler)
	api := r.Group("/api/quote")
	{
		api.POST("/estimate", hb.QuoteEstimateHandler)
	}
	r.POST("/api/leads", hb.CaptureLeadHandler)
}

// RegisterShopRoutes sets up the webstore cart and checkout endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shop")
	{
		api.GET("/cart", hb.GetCartHandler)
		api.POST("/cart/items", hb.AddCartItemHandler)
		api.PUT("/cart/items/:slug", hb.UpdateCartItemHandler)
		api.DELETE("/cart/items/:slug", hb.RemoveCartItemHandler)
		api.DELETE("/cart", hb.ClearCartHandler)

		api.POST("/checkout", hb.CheckoutHandler)
		api.GET("/orders/:id", hb.GetOrderHandler)
		api.POST("/orders/:id/confirm-payment", hb.ConfirmPaymentHandler)
	}
}

// RegisterConsultationRoutes sets up the guided consultation flow endpoints.
func RegisterConsultationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consultation")
	{
		api.POST("/session", hb.StartConsultationHandler)
		api.POST("/session/:sessionID/answer", hb.AnswerConsultationHandler)
		api.POST("/session/:sessionID/back", hb.BackConsultationHandler)
		api.DELETE("/session/:sessionID", hb.CancelConsultationHandler)
	}
}

// RegisterInternalRoutes sets up staff-only endpoints. These require a valid
// staff token.
func RegisterInternalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/internal")
	{
		api.Use(middleware.JWTAuthStaffMiddleware())
		api.GET("/leads/:tier", hb.GetLeadsByTierHandler)
		api.POST("/campaigns/leads", hb.UploadCampaignLeadsHandler)
		api.POST("/campaigns/generate", hb.GenerateCampaignHandler)
		api.POST("/campaigns/send", hb.SendCampaignHandler)
		api.GET("/campaigns/:campaign/logs", hb.GetCampaignLogsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Cart-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuoteRoutes(r, hb)
	RegisterShopRoutes(r, hb)
	RegisterConsultationRoutes(r, hb)
	RegisterInternalRoutes(r, hb)
	RegisterHealthRoute(r)
}
