package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tuitionhub/config"
	"tuitionhub/models"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// GenerateInvoice creates the invoice row for a completed payment on the
// given transaction handle. PDF rendering is best-effort: a rendering
// failure leaves the row without a pdf_url but never fails the payment.
func GenerateInvoice(tx *gorm.DB, payment *models.Payment) (*models.Invoice, error) {
	invoice := models.Invoice{
		PaymentID:     payment.ID,
		InvoiceNumber: newInvoiceNumber(),
		IssuedDate:    time.Now(),
	}

	if err := tx.Create(&invoice).Error; err != nil {
		return nil, err
	}

	path, err := writeInvoicePDF(&invoice, payment)
	if err != nil {
		log.Printf("Failed to render invoice PDF %s: %v", invoice.InvoiceNumber, err)
		return &invoice, nil
	}

	invoice.PDFURL = path
	if err := tx.Save(&invoice).Error; err != nil {
		return nil, err
	}

	return &invoice, nil
}

func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
}

func writeInvoicePDF(invoice *models.Invoice, payment *models.Payment) (string, error) {
	dir := config.AppConfig.InvoiceDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Tuition Hub Invoice")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Invoice Number: "+invoice.InvoiceNumber)
	pdf.Ln(8)
	pdf.Cell(0, 8, "Issued: "+invoice.IssuedDate.Format("2 Jan 2006"))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Transaction: "+payment.TransactionID)
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Amount: %.2f BDT", payment.Amount))
	pdf.Ln(8)
	pdf.Cell(0, 8, "Gateway: "+payment.Gateway)

	path := filepath.Join(dir, invoice.InvoiceNumber+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
