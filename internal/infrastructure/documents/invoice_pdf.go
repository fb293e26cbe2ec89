// Package documents renders vendor invoices and lead exports.
package documents

import (
	"bytes"
	"fmt"
	"time"

	"tradequote/internal/domain/entities"
	"tradequote/internal/usecase/interfaces"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// InvoicePDF renders invoices with the core Helvetica font, so text goes
// through a cp1252 translator.
type InvoicePDF struct {
	issuer string
	now    func() time.Time
}

var _ interfaces.IInvoiceRenderer = (*InvoicePDF)(nil)

func NewInvoicePDF(issuer string) *InvoicePDF {
	return &InvoicePDF{issuer: issuer, now: time.Now}
}

func (g *InvoicePDF) RenderInvoice(vendorEmail string, invoiceNumber string, items []entities.QuoteImpression) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Invoice "+invoiceNumber, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Lead Invoice"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Invoice %s - %s", invoiceNumber, g.now().UTC().Format("2006-01-02"))))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr("Bill to: "+vendorEmail))
	pdf.Ln(6)
	if g.issuer != "" {
		pdf.Cell(0, 6, tr("From: "+g.issuer))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(25, 7, "Date", "B", 0, "", false, 0, "")
	pdf.CellFormat(55, 7, "Project", "B", 0, "", false, 0, "")
	pdf.CellFormat(45, 7, "Segment", "B", 0, "", false, 0, "")
	pdf.CellFormat(35, 7, "Location", "B", 0, "", false, 0, "")
	pdf.CellFormat(30, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	total := decimal.Zero
	for _, it := range items {
		amount := decimal.NewFromFloat(it.AmountCharged).Round(2)
		total = total.Add(amount)

		pdf.CellFormat(25, 6, it.CreatedAt.UTC().Format("2006-01-02"), "", 0, "", false, 0, "")
		pdf.CellFormat(55, 6, tr(trim(it.ProjectName, 32)), "", 0, "", false, 0, "")
		pdf.CellFormat(45, 6, tr(trim(it.Segment, 26)), "", 0, "", false, 0, "")
		pdf.CellFormat(35, 6, tr(trim(it.ProjectLocation, 20)), "", 0, "", false, 0, "")
		pdf.CellFormat(30, 6, "$"+amount.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(160, 7, fmt.Sprintf("Total (%d leads)", len(items)), "T", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, "$"+total.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
