package cart

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	receiptTitle   = "Clothify - Order Receipt"
	receiptRule    = "------------------------------------------------"
	pageBreakLimit = 270 // mm, A4 portrait
)

// WriteReceipt renders the printable receipt: one line per item with its
// line total, the cart total, and a trailing thank-you page. Long carts
// paginate.
func WriteReceipt(w io.Writer, items []Item, total float64) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Text(20, 20, receiptTitle)

	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(20, 30, receiptRule)
	pdf.Text(20, 40, "Items:")

	y := 50.0
	for _, item := range items {
		if y > pageBreakLimit {
			pdf.AddPage()
			y = 20
		}
		pdf.Text(20, y, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
		pdf.Text(150, y, fmt.Sprintf("$%.2f", item.Price*float64(item.Quantity)))
		y += 10
	}

	if y > pageBreakLimit {
		pdf.AddPage()
		y = 20
	}
	pdf.Text(20, y, receiptRule)
	y += 10
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, y, fmt.Sprintf("Total: $%.2f", total))
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, y, receiptRule)
	y += 10
	pdf.Text(20, y, "Thank you for shopping with us!")

	pdf.AddPage()
	pdf.Text(20, 20, "Clothify - Thank You!")
	pdf.Text(20, 40, "Visit our store again soon!")

	return pdf.Output(w)
}
