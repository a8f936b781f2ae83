package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/itplanet/retail-backend/internal/ledger"
)

// Store address blocks printed under the letterhead, keyed by location.
var addresses = map[string]string{
	"Nanded": "Shop No. 5, Sharda Complex, Opp. Bus Stand, Nanded - 431601",
	"Latur":  "Near Ganj Golai, Main Road, Latur - 413512",
}

// Document carries everything a printable invoice or quotation needs.
type Document struct {
	Kind         string // "Invoice" or "Quotation"
	Number       string
	Date         time.Time
	PartyLabel   string // "Client", "Customer"
	PartyName    string
	MobileNumber string
	Location     string
	Items        []ledger.Item
	Total        float64
	Paid         float64
	Due          float64
	ShowPayments bool
}

// FileName derives the download name from the party, e.g.
// "Rahul Traders_invoice.pdf".
func FileName(party, kind string) string {
	return fmt.Sprintf("%s_%s.pdf", strings.TrimSpace(party), strings.ToLower(kind))
}

var rupees = message.NewPrinter(language.English)

func amount(v float64) string {
	return rupees.Sprintf("%.2f", v)
}

// PDF renders the document as an A4 portrait page with the IT Planet
// letterhead and a ruled item table.
func PDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, "IT Planet", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	if addr, ok := addresses[doc.Location]; ok {
		pdf.CellFormat(0, 5, addr, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, strings.ToUpper(doc.Kind), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("%s: %s", doc.PartyLabel, doc.PartyName), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("%s No: %s", doc.Kind, doc.Number), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Mobile: %s", doc.MobileNumber), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, fmt.Sprintf("Date: %s", doc.Date.Format("02-01-2006")), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	widths := []float64{12, 58, 50, 20, 25, 25}
	headers := []string{"#", "Product", "Description", "Qty", "Price", "Sub Total"}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, it := range doc.Items {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, it.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, it.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 7, rupees.Sprintf("%v", it.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 7, amount(it.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, amount(it.Subtotal), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	labelWidth := widths[0] + widths[1] + widths[2] + widths[3] + widths[4]
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelWidth, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(widths[5], 8, amount(doc.Total), "1", 1, "R", false, 0, "")
	if doc.ShowPayments {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(labelWidth, 7, "Paid", "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, amount(doc.Paid), "1", 1, "R", false, 0, "")
		pdf.CellFormat(labelWidth, 7, "Due", "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 7, amount(doc.Due), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
