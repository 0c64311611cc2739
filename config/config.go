package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	Port               string

	// PayNow merchant settings
	PayNowProxyType  string // "mobile" or "uen"
	PayNowProxyValue string
	MerchantName     string
	MerchantCity     string
	AmountEditable   bool
	QRExpiry         string // optional YYYYMMDD

	// Sale policy
	SurchargePercent float64
	ReferenceStyle   string // "template" or "token"
	Timezone         string

	// Optional card-payment fallback; disabled when empty
	StripeAPIKey        string
	StripeWebhookSecret string
	SalesChannelID      string
}

func LoadConfig() *Config {
	// Missing .env is fine; the real environment wins either way.
	_ = godotenv.Load()

	cfg := &Config{
		SlackBotToken:       os.Getenv("SLACK_BOT_TOKEN"),
		SlackSigningSecret:  os.Getenv("SLACK_SIGNING_SECRET"),
		Port:                os.Getenv("PORT"),
		PayNowProxyType:     os.Getenv("PAYNOW_PROXY_TYPE"),
		PayNowProxyValue:    os.Getenv("PAYNOW_PROXY_VALUE"),
		MerchantName:        os.Getenv("MERCHANT_NAME"),
		MerchantCity:        os.Getenv("MERCHANT_CITY"),
		QRExpiry:            os.Getenv("QR_EXPIRY"),
		ReferenceStyle:      os.Getenv("REFERENCE_STYLE"),
		Timezone:            os.Getenv("TIMEZONE"),
		StripeAPIKey:        os.Getenv("STRIPE_API_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		SalesChannelID:      os.Getenv("SALES_CHANNEL_ID"),
	}

	if cfg.SlackBotToken == "" {
		log.Fatal("SLACK_BOT_TOKEN environment variable not set.")
	}
	if cfg.SlackSigningSecret == "" {
		log.Fatal("SLACK_SIGNING_SECRET environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("PORT environment variable not set, defaulting to %s", cfg.Port)
	}
	if cfg.PayNowProxyType == "" {
		cfg.PayNowProxyType = "uen"
	}
	if cfg.PayNowProxyValue == "" {
		log.Fatal("PAYNOW_PROXY_VALUE environment variable not set.")
	}
	if cfg.MerchantName == "" {
		log.Fatal("MERCHANT_NAME environment variable not set.")
	}
	if cfg.MerchantCity == "" {
		cfg.MerchantCity = "Singapore"
	}
	if cfg.ReferenceStyle == "" {
		cfg.ReferenceStyle = "template"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Singapore"
	}
	if cfg.StripeAPIKey == "" {
		log.Printf("STRIPE_API_KEY not set, card payment links disabled")
	}

	cfg.AmountEditable = os.Getenv("AMOUNT_EDITABLE") == "true"

	if raw := os.Getenv("SURCHARGE_PERCENT"); raw != "" {
		pct, err := strconv.ParseFloat(raw, 64)
		if err != nil || pct < 0 {
			log.Fatalf("SURCHARGE_PERCENT %q is not a valid percentage.", raw)
		}
		cfg.SurchargePercent = pct
	}

	return cfg
}
