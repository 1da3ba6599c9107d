package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/gourmethaven/restaurant-backend/models"
)

// BillTotals is the tax breakdown printed on a bill. The stored order total
// is treated as GST-inclusive at 5%, split into two 2.5% components; the
// grand total is re-derived and may differ from the stored total by
// floating-point rounding.
type BillTotals struct {
	Subtotal   float64
	CGST       float64
	SGST       float64
	GrandTotal float64
}

// CalculateBillTotals reverse-computes the tax breakdown from a
// GST-inclusive total.
func CalculateBillTotals(total float64) BillTotals {
	subtotal := total / 1.05
	cgst := subtotal * 0.025
	sgst := subtotal * 0.025
	return BillTotals{
		Subtotal:   subtotal,
		CGST:       cgst,
		SGST:       sgst,
		GrandTotal: subtotal + cgst + sgst,
	}
}

// GenerateBillPDF renders an A4 tax invoice for a persisted order. It is a
// presentation-only artifact and never mutates stored state.
func GenerateBillPDF(order *models.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Letterhead
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(231, 76, 60)
	pdf.CellFormat(0, 10, "GOURMET HAVEN", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 6, "Fine Dining Excellence", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 5, "123 Culinary Street, Food District, Gourmet City, GC 12345", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Phone: +91 98765 43210 | Email: info@gourmethaven.com", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "GSTIN: 29AABCU9603R1ZX", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetDrawColor(231, 76, 60)
	pdf.SetLineWidth(0.7)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(0, 8, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Order metadata
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	metaRow(pdf, "Order ID:", "#"+order.ShortID(), "Date:", order.CreatedAt.Format("02/01/2006"))
	metaRow(pdf, "Type:", order.OrderType, "Time:", order.CreatedAt.Format("03:04 PM"))

	if order.OrderType == models.OrderTypeOnline {
		metaRow(pdf, "Phone:", orDefault(order.CustomerPhone), "", "")
		metaRow(pdf, "Address:", orDefault(order.DeliveryAddress), "", "")
	} else {
		token := ""
		tokenLabel := ""
		if order.Token != "" {
			tokenLabel = "Token:"
			token = order.Token
		}
		metaRow(pdf, "Table:", orDefault(order.Table), tokenLabel, token)
	}
	if order.Customer != "" {
		metaRow(pdf, "Customer:", order.Customer, "", "")
	}
	if order.Instructions != "" {
		metaRow(pdf, "Instructions:", order.Instructions, "", "")
	}
	pdf.Ln(5)

	// Items table
	pdf.SetDrawColor(221, 221, 221)
	pdf.SetLineWidth(0.3)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(44, 62, 80)
	pdf.CellFormat(90, 7, "Item Name", "", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "", 0, "C", false, 0, "")
	pdf.CellFormat(35, 7, "Price", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Amount", "", 1, "R", false, 0, "")
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	for _, item := range order.Items {
		name := item.Name
		if name == "" {
			name = "Unknown Item"
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		pdf.CellFormat(90, 7, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", qty), "", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("Rs. %.2f", item.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("Rs. %.2f", float64(qty)*item.Price), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(3)

	// Totals
	totals := CalculateBillTotals(order.Total)
	totalsRow(pdf, "Subtotal:", totals.Subtotal)
	totalsRow(pdf, "CGST (2.5%):", totals.CGST)
	totalsRow(pdf, "SGST (2.5%):", totals.SGST)

	pdf.SetDrawColor(231, 76, 60)
	pdf.SetLineWidth(0.7)
	pdf.Line(120, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(231, 76, 60)
	pdf.CellFormat(145, 8, "GRAND TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("Rs. %.2f", totals.GrandTotal), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetDrawColor(221, 221, 221)
	pdf.SetLineWidth(0.3)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	// Footer
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(39, 174, 96)
	pdf.CellFormat(0, 6, "Thank you for dining with us!", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 6, "Visit again soon!", "", 1, "C", false, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(153, 153, 153)
	pdf.CellFormat(0, 5, "This is a computer-generated invoice and does not require a signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func metaRow(pdf *fpdf.Fpdf, leftLabel, leftValue, rightLabel, rightValue string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(28, 6, leftLabel, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(62, 6, leftValue, "", 0, "L", false, 0, "")
	if rightLabel != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(28, 6, rightLabel, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(62, 6, rightValue, "", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func totalsRow(pdf *fpdf.Fpdf, label string, amount float64) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(145, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("Rs. %.2f", amount), "", 1, "R", false, 0, "")
}

func orDefault(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
