package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"paynowbot/config"
	"paynowbot/models"

	"github.com/slack-go/slack"
)

type SlackService struct {
	client        *slack.Client
	signingSecret string
	sales         *SaleService
	receipts      *ReceiptService
}

func NewSlackService(cfg *config.Config, client *slack.Client, sales *SaleService, receipts *ReceiptService) *SlackService {
	return &SlackService{
		client:        client,
		signingSecret: cfg.SlackSigningSecret,
		sales:         sales,
		receipts:      receipts,
	}
}

func (s *SlackService) GetSigningSecret() string {
	return s.signingSecret
}

// HasProvider reports whether the sale workflow can serve provider.
func (s *SlackService) HasProvider(provider models.PaymentProvider) bool {
	return s.sales.HasProvider(provider)
}

func (s *SlackService) OpenSaleModal(triggerID string, provider models.PaymentProvider, channelID string) error {
	log.Printf("Opening sale modal for provider: %s", provider)
	modalView := BuildSaleModalView(provider, channelID)
	_, err := s.client.OpenView(triggerID, modalView)
	if err != nil {
		log.Printf("Error opening modal: %v", err)
		return fmt.Errorf("failed to open modal: %w", err)
	}
	return nil
}

func (s *SlackService) ProcessModalSubmission(w http.ResponseWriter, interaction *slack.InteractionCallback) {
	log.Printf("Handling modal submission for callback ID: %s", interaction.View.CallbackID)

	// Extract provider from callback ID
	callbackParts := strings.Split(interaction.View.CallbackID, "_")
	provider := models.PaymentProvider(callbackParts[len(callbackParts)-1])

	values := interaction.View.State.Values
	amountStr := values["amount_block"]["amount_input"].Value
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil || amount <= 0 {
		respondWithError(w, "amount_block", "Please enter a valid positive amount")
		return
	}
	operator := strings.TrimSpace(values["operator_block"]["operator_input"].Value)
	if operator == "" {
		operator = interaction.User.Name
	}
	customer := strings.TrimSpace(values["customer_block"]["customer_input"].Value)
	if customer == "" {
		respondWithError(w, "customer_block", "Customer or table name cannot be empty")
		return
	}

	company := ""
	if companyBlock, ok := values["company_block"]; ok {
		if elem, ok := companyBlock["company_select"]; ok {
			company = elem.SelectedOption.Value
		}
	}

	req := models.SaleRequest{
		BaseAmount:   amount,
		OperatorName: operator,
		CustomerName: customer,
		Company:      company,
	}

	sale, pr, err := s.sales.CreateSale(req, provider)
	if err != nil {
		log.Printf("Error creating %s sale: %v", provider, err)
		respondWithError(w, "amount_block", fmt.Sprintf("Error creating sale: %v", err))
		return
	}
	s.receipts.Record(sale)

	channelID := interaction.View.PrivateMetadata
	if channelID == "" {
		channelID = interaction.Channel.ID
	}

	s.SendPaymentRequestMessage(interaction.User.ID, channelID, sale, pr)
	w.WriteHeader(http.StatusOK)
}

// CreateAndPostSale runs the inline slash-command path where all arguments
// were supplied with the command itself.
func (s *SlackService) CreateAndPostSale(userID, channelID string, req models.SaleRequest, provider models.PaymentProvider) error {
	sale, pr, err := s.sales.CreateSale(req, provider)
	if err != nil {
		return err
	}
	s.receipts.Record(sale)
	s.SendPaymentRequestMessage(userID, channelID, sale, pr)
	return nil
}

// SendPaymentRequestMessage posts the payment request to the channel: the
// QR image for PayNow, a plain link message for card providers.
func (s *SlackService) SendPaymentRequestMessage(userID, channelID string, sale *models.Sale, pr *models.PaymentRequest) {
	switch pr.Provider {
	case models.ProviderPayNow:
		comment := fmt.Sprintf(
			"<@%s> PayNow QR for *%s* (Amount: $%.2f)\nReference: `%s`\nScan with any PayNow banking app.",
			userID, sale.TransactionID, sale.Amount, sale.DisplayReference,
		)
		uploadParams := slack.FileUploadParameters{
			Reader:         bytes.NewReader(pr.QRImage),
			Filename:       fmt.Sprintf("paynow_%s.png", sale.TransactionID),
			Title:          fmt.Sprintf("PayNow %s", sale.TransactionID),
			Filetype:       "png",
			Channels:       []string{channelID},
			InitialComment: comment,
		}
		if _, err := s.client.UploadFile(uploadParams); err != nil {
			log.Printf("Error uploading QR image to channel %s: %v", channelID, err)
		}
	default:
		msg := fmt.Sprintf(
			"<@%s> Here is the payment link for *%s* (Amount: $%.2f):\n%s",
			userID, sale.TransactionID, sale.Amount, pr.Link,
		)
		if _, _, err := s.client.PostMessage(channelID, slack.MsgOptionText(msg, false)); err != nil {
			log.Printf("Error sending payment link message: %v", err)
		}
	}
}

// PostPaymentConfirmation announces a completed card payment.
func (s *SlackService) PostPaymentConfirmation(channelID, sessionID string, amount float64) {
	msg := fmt.Sprintf(":white_check_mark: Card payment received: $%.2f (session `%s`)", amount, sessionID)
	if _, _, err := s.client.PostMessage(channelID, slack.MsgOptionText(msg, false)); err != nil {
		log.Printf("Error posting payment confirmation: %v", err)
	}
}

// PostReceipt renders and uploads the PDF receipt for a recorded sale.
func (s *SlackService) PostReceipt(channelID, txnID string) error {
	return s.receipts.SendReceiptToSlack(channelID, txnID)
}

// PostDaySummary uploads the CSV summary of the sales recorded so far.
func (s *SlackService) PostDaySummary(channelID string) error {
	return s.receipts.SendDaySummary(channelID)
}

func respondWithError(w http.ResponseWriter, blockID, message string) {
	w.Header().Set("Content-Type", "application/json")
	response := map[string]interface{}{
		"response_action": "errors",
		"errors": map[string]string{
			blockID: message,
		},
	}
	json.NewEncoder(w).Encode(response)
}
