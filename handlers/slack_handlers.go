package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"paynowbot/models"
	"paynowbot/services"
	"paynowbot/utils"

	"github.com/slack-go/slack"
)

type SlackHandler struct {
	service *services.SlackService
}

func NewSlackHandler(svc *services.SlackService) *SlackHandler {
	return &SlackHandler{service: svc}
}

func (sh *SlackHandler) HandleSlackCommands(w http.ResponseWriter, r *http.Request) {
	log.Printf("Received Slack command request: method=%s, url=%s, remote=%s", r.Method, r.URL.String(), r.RemoteAddr)
	verifier, err := slack.NewSecretsVerifier(r.Header, sh.service.GetSigningSecret())
	if err != nil {
		log.Printf("Error creating verifier: %v", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	r.Body = io.NopCloser(io.TeeReader(r.Body, &verifier))
	sCmd, err := slack.SlashCommandParse(r)
	if err != nil {
		log.Printf("Error parsing slash command: %v", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err = verifier.Ensure(); err != nil {
		log.Printf("Error verifying request: %v", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	log.Printf("Parsed Slack command: command=%s, text=%s, user_id=%s, channel_id=%s", sCmd.Command, sCmd.Text, sCmd.UserID, sCmd.ChannelID)

	var provider models.PaymentProvider
	switch sCmd.Command {
	case "/paynow-qr":
		provider = models.ProviderPayNow
	case "/card-link":
		provider = models.ProviderStripe
	case "/sale-receipt":
		txnID := strings.TrimSpace(sCmd.Text)
		if txnID == "" {
			respondToSlack(w, "Usage: /sale-receipt <transaction id>")
			return
		}
		if err := sh.service.PostReceipt(sCmd.ChannelID, txnID); err != nil {
			log.Printf("Error posting receipt: %v", err)
			respondToSlack(w, fmt.Sprintf("Error: %v", err))
			return
		}
		w.WriteHeader(http.StatusOK)
		return
	case "/sales-summary":
		if err := sh.service.PostDaySummary(sCmd.ChannelID); err != nil {
			log.Printf("Error posting sales summary: %v", err)
			respondToSlack(w, fmt.Sprintf("Error: %v", err))
			return
		}
		w.WriteHeader(http.StatusOK)
		return
	default:
		respondToSlack(w, fmt.Sprintf("Unknown command: %s", sCmd.Command))
		return
	}

	if !sh.service.HasProvider(provider) {
		respondToSlack(w, fmt.Sprintf("%s payments are not configured.", provider))
		return
	}

	// Inline arguments skip the modal entirely.
	if strings.TrimSpace(sCmd.Text) != "" {
		req, err := utils.ParseSaleArguments(sCmd.Text)
		if err != nil {
			usage := "Usage: " + sCmd.Command + " <amount> <operator> \"<customer or table>\" [company]"
			respondToSlack(w, fmt.Sprintf("*%v*\n%s", err, usage))
			return
		}
		if err := sh.service.CreateAndPostSale(sCmd.UserID, sCmd.ChannelID, *req, provider); err != nil {
			respondToSlack(w, fmt.Sprintf("Error creating sale: %v", err))
			return
		}
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := sh.service.OpenSaleModal(sCmd.TriggerID, provider, sCmd.ChannelID); err != nil {
		log.Printf("Error opening modal: %v", err)
		respondToSlack(w, "Error opening sale form. Please try again.")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (sh *SlackHandler) HandleSlackInteractions(w http.ResponseWriter, r *http.Request) {
	log.Printf("Received Slack interaction request: method=%s, url=%s, remote=%s", r.Method, r.URL.String(), r.RemoteAddr)
	payload := r.FormValue("payload")
	var interaction slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &interaction); err != nil {
		log.Printf("Error parsing interaction payload: %v", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	switch interaction.Type {
	case slack.InteractionTypeViewSubmission:
		sh.service.ProcessModalSubmission(w, &interaction)
	default:
		log.Printf("Unhandled interaction type: %s", interaction.Type)
		w.WriteHeader(http.StatusOK)
	}
}

func respondToSlack(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"text": text})
}
