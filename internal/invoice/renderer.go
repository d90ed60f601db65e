// Package invoice renders a customer's weekly ledger as a PDF statement.
//
// The layout is fixed: a bold centered title, a week-start line, a
// four-column bordered table (Day, Total, Received, Balance), and a bold
// pending-balance footer. Text content is produced by the exported
// helpers so the wording can be checked without parsing PDF output.
package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/parceldesk/parceldesk/internal/domain"
)

// DefaultCurrency prefixes every amount unless the renderer overrides it.
const DefaultCurrency = "₹"

// fallbackCurrency stands in when the PDF code page cannot encode the
// configured currency. The built-in fonts are CP1252, which has no ₹.
const fallbackCurrency = "Rs "

// MIMEType is the content type of rendered invoices.
const MIMEType = "application/pdf"

// Layout geometry in millimetres on an A4 portrait page.
const (
	cellW = 40
	cellH = 10
	gapH  = 5
)

// Renderer builds invoice PDFs. The zero value uses the default currency
// and wall-clock document timestamps; pin Now for reproducible bytes.
type Renderer struct {
	Currency string
	Now      func() time.Time
}

// Render draws the invoice for one customer week and returns the PDF
// bytes. Balances are drawn as given; the save path recomputes them, so
// rows read back from the store are already consistent. The built-in
// fonts cover CP1252 only, so a currency the code page cannot encode
// (the ₹ default included) is drawn as "Rs ".
func (r *Renderer) Render(customerName string, weekStart time.Time, rows []domain.PaymentRow) ([]byte, error) {
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetCompression(false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	currency := drawCurrency(r.currency(), tr)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, cellH, tr(Title(customerName)), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(gapH)
	pdf.CellFormat(0, cellH, tr(WeekLine(weekStart)), "", 1, "", false, 0, "")
	pdf.Ln(gapH)

	pdf.SetFont("Arial", "B", 12)
	for _, h := range []string{"Day", "Total", "Received", "Balance"} {
		pdf.CellFormat(cellW, cellH, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 12)
	for _, row := range rows {
		pdf.CellFormat(cellW, cellH, tr(row.Day), "1", 0, "", false, 0, "")
		pdf.CellFormat(cellW, cellH, tr(amountWith(currency, row.Total)), "1", 0, "", false, 0, "")
		pdf.CellFormat(cellW, cellH, tr(amountWith(currency, row.Received)), "1", 0, "", false, 0, "")
		pdf.CellFormat(cellW, cellH, tr(amountWith(currency, row.Balance)), "1", 0, "", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(gapH)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, cellH, tr(footerWith(currency, domain.PendingTotal(rows))), "", 1, "", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ─── Text Helpers ───────────────────────────────────────────────────────────

// Title returns the heading line, e.g. "Invoice for Ravi".
func Title(customerName string) string {
	return "Invoice for " + customerName
}

// WeekLine returns the subheading, e.g. "Week Starting: 2024-06-03".
func WeekLine(weekStart time.Time) string {
	return "Week Starting: " + domain.FormatWeek(weekStart)
}

// Amount formats a money value with the currency symbol, e.g. "₹60.00".
func (r *Renderer) Amount(d decimal.Decimal) string {
	return amountWith(r.currency(), d)
}

// FooterLine returns the closing total, e.g. "Total Pending Balance: ₹60.00".
func (r *Renderer) FooterLine(pending decimal.Decimal) string {
	return footerWith(r.currency(), pending)
}

func (r *Renderer) currency() string {
	if r.Currency == "" {
		return DefaultCurrency
	}
	return r.Currency
}

func amountWith(currency string, d decimal.Decimal) string {
	return currency + d.StringFixed(2)
}

func footerWith(currency string, pending decimal.Decimal) string {
	return "Total Pending Balance: " + amountWith(currency, pending)
}

// drawCurrency returns the currency label for PDF text. The cp1252
// translator draws any rune outside the code page as ".", so a currency
// it cannot encode falls back to the ASCII label.
func drawCurrency(currency string, tr func(string) string) string {
	for _, rn := range currency {
		if rn >= 0x80 && tr(string(rn)) == "." {
			return fallbackCurrency
		}
	}
	return currency
}

// Filename names the download, e.g. "Invoice_Ravi_2024-06-03.pdf".
func Filename(customerName string, weekStart time.Time) string {
	return fmt.Sprintf("Invoice_%s_%s.pdf", customerName, domain.FormatWeek(weekStart))
}
