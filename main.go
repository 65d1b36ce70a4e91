// File: sohoconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sohoconnect/config"
	"sohoconnect/cron"
	"sohoconnect/database"
	campaignRepoPkg "sohoconnect/database/repository/campaign"
	leadRepoPkg "sohoconnect/database/repository/lead"
	orderRepoPkg "sohoconnect/database/repository/order"
	"sohoconnect/handlers"
	"sohoconnect/middleware"
	"sohoconnect/routes"
	campaignSvc "sohoconnect/services/campaign"
	cartSvc "sohoconnect/services/cart"
	"sohoconnect/services/consultation"
	ai "sohoconnect/services/intelligence"
	leadSvc "sohoconnect/services/lead"
	"sohoconnect/services/notification"
	orderSvc "sohoconnect/services/order"
	"sohoconnect/services/quote"
	"sohoconnect/services/scoring"
	"sohoconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	limiterStore := middleware.NewRateLimiterStore(config.AppConfig.MaxRequestsPerMin)
	router.Use(middleware.RateLimitMiddleware(limiterStore))

	// Repositories.
	leadRepo := leadRepoPkg.NewMongoLeadRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	campaignRepo := campaignRepoPkg.NewMongoCampaignRepo()

	// External collaborators.
	emailService := notification.NewBrevoEmailService(
		config.AppConfig.BrevoAPIKey,
		config.AppConfig.BrevoSenderMail,
		config.AppConfig.BrevoSenderName,
		config.AppConfig.SalesEmail,
		logger,
	)

	var generator ai.TextGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Warn("Gemini client unavailable, AI features degraded", zap.Error(err))
		} else {
			generator = gemini
		}
	}

	// Lead scoring falls back to pure rule-based when no AI collaborator
	// is configured.
	var scorer scoring.Strategy = scoring.RuleBasedStrategy{}
	if generator != nil {
		scorer = &scoring.AIEnhancedStrategy{
			Generator: generator,
			Logger:    logger,
		}
	}

	// Services.
	quoteService := &quote.DefaultQuoteService{
		Rules: quote.RulesFromConfig(),
	}

	leadService := &leadSvc.DefaultLeadService{
		Repo:   leadRepo,
		Scorer: scorer,
		Email:  emailService,
		Logger: logger,
	}

	pricingRules := cartSvc.RulesFromConfig()
	cartService := &cartSvc.DefaultCartService{
		Store: cartSvc.NewRedisStore(utils.GetCartCacheClient(), utils.CartTTL),
		Rules: pricingRules,
	}

	orderService := &orderSvc.DefaultOrderService{
		Repo:     orderRepo,
		Cart:     cartService,
		Rules:    pricingRules,
		Payments: &orderSvc.StripePaymentHandler{Logger: logger},
		Email:    emailService,
		Logger:   logger,
	}

	consultationService := &consultation.DefaultConsultationService{
		Sessions: consultation.NewRedisSessionStore(utils.GetSessionCacheClient()),
	}

	campaignQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCampaignQDB,
	})
	defer campaignQueue.Close()

	campaignService := &campaignSvc.DefaultCampaignService{
		Repo:      campaignRepo,
		Email:     emailService,
		Generator: generator,
		Queue:     campaignQueue,
		Limiter:   rate.NewLimiter(rate.Every(time.Second), 5),
		Logger:    logger,
	}

	cron.InitFollowUpWorker(emailService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCartCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Handlers.
	quoteHandler := handlers.NewQuoteHandler(quoteService, leadService)
	shopHandler := handlers.NewShopHandler(cartService, orderService)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Quote calculator endpoints.
		GetServicesHandler:    quoteHandler.GetServicesHandler,
		QuoteEstimateHandler:  quoteHandler.QuoteEstimateHandler,
		CaptureLeadHandler:    quoteHandler.CaptureLeadHandler,
		GetLeadsByTierHandler: quoteHandler.GetLeadsByTierHandler,

		// Webstore endpoints.
		GetCartHandler:        shopHandler.GetCartHandler,
		AddCartItemHandler:    shopHandler.AddCartItemHandler,
		UpdateCartItemHandler: shopHandler.UpdateCartItemHandler,
		RemoveCartItemHandler: shopHandler.RemoveCartItemHandler,
		ClearCartHandler:      shopHandler.ClearCartHandler,
		CheckoutHandler:       shopHandler.CheckoutHandler,
		GetOrderHandler:       shopHandler.GetOrderHandler,
		ConfirmPaymentHandler: shopHandler.ConfirmPaymentHandler,

		// Consultation endpoints.
		StartConsultationHandler:  consultationHandler.StartConsultationHandler,
		AnswerConsultationHandler: consultationHandler.AnswerConsultationHandler,
		BackConsultationHandler:   consultationHandler.BackConsultationHandler,
		CancelConsultationHandler: consultationHandler.CancelConsultationHandler,

		// Internal campaign endpoints.
		UploadCampaignLeadsHandler: campaignHandler.UploadCampaignLeadsHandler,
		GenerateCampaignHandler:    campaignHandler.GenerateCampaignHandler,
		SendCampaignHandler:        campaignHandler.SendCampaignHandler,
		GetCampaignLogsHandler:     campaignHandler.GetCampaignLogsHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Soho Connect server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("server exited")
}
