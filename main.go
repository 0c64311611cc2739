package main

import (
	"log"
	"net/http"
	"time"

	"github.com/slack-go/slack"

	"paynowbot/config"
	"paynowbot/handlers"
	"paynowbot/models"
	"paynowbot/payment"
	"paynowbot/paynow"
	"paynowbot/services"
	"paynowbot/txnref"
)

func main() {
	cfg := config.LoadConfig()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid TIMEZONE %q: %v", cfg.Timezone, err)
	}

	allocator := txnref.NewAllocator(loc)
	sales := services.NewSaleService(allocator, cfg.SurchargePercent, models.ReferenceStyle(cfg.ReferenceStyle))

	proxyType := paynow.ProxyUEN
	if cfg.PayNowProxyType == "mobile" {
		proxyType = paynow.ProxyMobile
	}
	sales.RegisterGenerator(models.ProviderPayNow, payment.NewPayNowGenerator(payment.PayNowConfig{
		ProxyType:    proxyType,
		ProxyValue:   cfg.PayNowProxyValue,
		MerchantName: cfg.MerchantName,
		MerchantCity: cfg.MerchantCity,
		Editable:     cfg.AmountEditable,
		Expiry:       cfg.QRExpiry,
	}))
	if cfg.StripeAPIKey != "" {
		sales.RegisterGenerator(models.ProviderStripe, payment.NewStripeGenerator(cfg.StripeAPIKey))
	}

	client := slack.New(cfg.SlackBotToken)
	receipts := services.NewReceiptService(client, cfg.MerchantName)
	slackService := services.NewSlackService(cfg, client, sales, receipts)
	slackHandler := handlers.NewSlackHandler(slackService)

	http.HandleFunc("/slack/commands", slackHandler.HandleSlackCommands)
	http.HandleFunc("/slack/interactions", slackHandler.HandleSlackInteractions)

	if cfg.StripeWebhookSecret != "" {
		webhookHandler := handlers.NewStripeWebhookHandler(cfg.StripeWebhookSecret, slackService, cfg.SalesChannelID)
		http.HandleFunc("/stripe/webhook", webhookHandler.HandleWebhook)
	}

	log.Printf("Starting PayNow bot server on :%s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, nil))
}
