package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"paynowbot/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/slack-go/slack"
)

// ReceiptService renders receipts and summaries for sales completed during
// the current process lifetime. It keeps an in-memory log only; durable
// storage of sales lives outside the bot.
type ReceiptService struct {
	slackClient  *slack.Client
	merchantName string

	mu    sync.Mutex
	sales []*models.Sale
}

func NewReceiptService(slackClient *slack.Client, merchantName string) *ReceiptService {
	return &ReceiptService{
		slackClient:  slackClient,
		merchantName: merchantName,
	}
}

// Record adds a completed sale to the in-memory log.
func (rs *ReceiptService) Record(sale *models.Sale) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.sales = append(rs.sales, sale)
}

// find returns the recorded sale with the given transaction id, newest
// first so a re-used id after a counter reset resolves to the latest sale.
func (rs *ReceiptService) find(txnID string) *models.Sale {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for i := len(rs.sales) - 1; i >= 0; i-- {
		if rs.sales[i].TransactionID == txnID {
			return rs.sales[i]
		}
	}
	return nil
}

// GenerateReceiptPDF renders a single-page PDF receipt for the sale.
func (rs *ReceiptService) GenerateReceiptPDF(sale *models.Sale) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 8, rs.merchantName)
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 24)
	pdf.Cell(0, 10, "RECEIPT")
	pdf.Ln(15)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(60, 6, fmt.Sprintf("Transaction: %s", sale.TransactionID))
	pdf.Cell(60, 6, fmt.Sprintf("Date: %s", sale.CreatedAt.Format("January 2, 2006 15:04")))
	pdf.Ln(6)
	pdf.Cell(60, 6, fmt.Sprintf("Reference: %s", sale.DisplayReference))
	pdf.Ln(6)
	pdf.Cell(60, 6, fmt.Sprintf("Operator: %s", sale.Request.OperatorName))
	pdf.Cell(60, 6, fmt.Sprintf("Customer: %s", sale.Request.CustomerName))
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.Cell(100, 8, "Description")
	pdf.Cell(40, 8, "Amount (SGD)")
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(100, 6, "Base amount")
	pdf.Cell(40, 6, fmt.Sprintf("$%.2f", sale.Request.BaseAmount))
	pdf.Ln(6)
	if sale.Amount > sale.Request.BaseAmount {
		pdf.Cell(100, 6, "Surcharge")
		pdf.Cell(40, 6, fmt.Sprintf("$%.2f", sale.Amount-sale.Request.BaseAmount))
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(100, 12, "Total Paid:")
	pdf.SetTextColor(0, 100, 0)
	pdf.Cell(40, 12, fmt.Sprintf("$%.2f", sale.Amount))
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(12)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// SendReceiptToSlack renders the receipt for txnID and uploads it to the
// channel.
func (rs *ReceiptService) SendReceiptToSlack(channelID, txnID string) error {
	sale := rs.find(txnID)
	if sale == nil {
		return fmt.Errorf("no sale recorded with transaction id %s", txnID)
	}

	pdfBytes, err := rs.GenerateReceiptPDF(sale)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(
		"🧾 *Receipt %s*\n*Amount:* $%.2f\n*Reference:* `%s`",
		sale.TransactionID, sale.Amount, sale.DisplayReference,
	)
	uploadParams := slack.FileUploadParameters{
		Reader:         bytes.NewReader(pdfBytes),
		Filename:       fmt.Sprintf("Receipt_%s.pdf", sale.TransactionID),
		Title:          fmt.Sprintf("Receipt %s", sale.TransactionID),
		Filetype:       "pdf",
		Channels:       []string{channelID},
		InitialComment: message,
	}
	if _, err := rs.slackClient.UploadFile(uploadParams); err != nil {
		log.Printf("Error uploading receipt to channel %s: %v", channelID, err)
		return fmt.Errorf("failed to upload receipt: %w", err)
	}
	return nil
}

// DaySummaryCSV renders every recorded sale as CSV rows.
func (rs *ReceiptService) DaySummaryCSV() ([]byte, error) {
	rs.mu.Lock()
	sales := make([]*models.Sale, len(rs.sales))
	copy(sales, rs.sales)
	rs.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"transaction_id", "company", "operator", "customer", "base_amount", "amount", "reference", "created_at"}); err != nil {
		return nil, err
	}
	for _, sale := range sales {
		row := []string{
			sale.TransactionID,
			sale.Request.Company,
			sale.Request.OperatorName,
			sale.Request.CustomerName,
			strconv.FormatFloat(sale.Request.BaseAmount, 'f', 2, 64),
			strconv.FormatFloat(sale.Amount, 'f', 2, 64),
			sale.DisplayReference,
			sale.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SendDaySummary uploads the CSV summary of recorded sales to the channel.
func (rs *ReceiptService) SendDaySummary(channelID string) error {
	rs.mu.Lock()
	count := len(rs.sales)
	rs.mu.Unlock()
	if count == 0 {
		return fmt.Errorf("no sales recorded yet")
	}

	csvBytes, err := rs.DaySummaryCSV()
	if err != nil {
		return fmt.Errorf("failed to render sales summary: %w", err)
	}

	uploadParams := slack.FileUploadParameters{
		Reader:         bytes.NewReader(csvBytes),
		Filename:       fmt.Sprintf("sales_%s.csv", time.Now().Format("2006-01-02")),
		Title:          "Sales summary",
		Filetype:       "csv",
		Channels:       []string{channelID},
		InitialComment: fmt.Sprintf("Sales summary: %d sale(s) recorded.", count),
	}
	if _, err := rs.slackClient.UploadFile(uploadParams); err != nil {
		log.Printf("Error uploading sales summary to channel %s: %v", channelID, err)
		return fmt.Errorf("failed to upload sales summary: %w", err)
	}
	return nil
}
