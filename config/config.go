package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCartDB      int    `mapstructure:"REDIS_CART_DB"`
	RedisSessionDB   int    `mapstructure:"REDIS_SESSION_DB"`
	RedisCampaignQDB int    `mapstructure:"REDIS_CAMPAIGN_QUEUE_DB"`

	// External collaborators.
	GeminiAPIKey    string `mapstructure:"GEMINI_API_KEY"`
	BrevoAPIKey     string `mapstructure:"BREVO_API_KEY"`
	BrevoSenderMail string `mapstructure:"BREVO_SENDER_EMAIL"`
	BrevoSenderName string `mapstructure:"BREVO_SENDER_NAME"`
	SalesEmail      string `mapstructure:"SALES_EMAIL"`
	StripeKey       string `mapstructure:"STRIPE_KEY"`

	// Pricing rules (Zimbabwe compliance). Rates are configuration, never computed.
	GovtLevyRate          float64 `mapstructure:"GOVT_LEVY_RATE"`
	VATRate               float64 `mapstructure:"VAT_RATE"`
	DeliveryFeeFlat       float64 `mapstructure:"DELIVERY_FEE_FLAT"`
	FreeDeliveryThreshold float64 `mapstructure:"FREE_DELIVERY_THRESHOLD"`
	USDToZWLRate          float64 `mapstructure:"USD_TO_ZWL_RATE"`

	// Quote calculator rules.
	ROIMultiplier        float64 `mapstructure:"ROI_MULTIPLIER"`
	BundleDiscountPair   float64 `mapstructure:"BUNDLE_DISCOUNT_PAIR"`
	BundleDiscountTriple float64 `mapstructure:"BUNDLE_DISCOUNT_TRIPLE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CART_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_CAMPAIGN_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("BREVO_API_KEY", "")
	viper.SetDefault("BREVO_SENDER_EMAIL", "hello@sohoconnect.co.zw")
	viper.SetDefault("BREVO_SENDER_NAME", "Soho Connect")
	viper.SetDefault("SALES_EMAIL", "sales@sohoconnect.co.zw")
	viper.SetDefault("STRIPE_KEY", "")

	// Zimbabwe pricing rules (RBZ/ZIMRA figures as of 2025).
	viper.SetDefault("GOVT_LEVY_RATE", 0.02)
	viper.SetDefault("VAT_RATE", 0.15)
	viper.SetDefault("DELIVERY_FEE_FLAT", 5.0)
	viper.SetDefault("FREE_DELIVERY_THRESHOLD", 100.0)
	viper.SetDefault("USD_TO_ZWL_RATE", 25000.0)

	viper.SetDefault("ROI_MULTIPLIER", 3.5)
	viper.SetDefault("BUNDLE_DISCOUNT_PAIR", 0.10)
	viper.SetDefault("BUNDLE_DISCOUNT_TRIPLE", 0.15)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
