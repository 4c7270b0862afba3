// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/checkout"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
	tmpl   *template.Template
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string { return "$" + d.StringFixed(2) },
		"price": func(f float64) string { return "$" + decimal.NewFromFloat(f).StringFixed(2) },
		"percent": func(d decimal.Decimal) string {
			return d.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
		},
	}

	return &Service{
		config: cfg,
		tmpl:   template.Must(template.New("receipt").Funcs(funcs).Parse(receiptTemplate)),
	}
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	Order   *checkout.Confirmation
	Company CompanyInfo
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string
	Email   string
	Website string
}

// RenderReceiptHTML renders the receipt page for an order
func (s *Service) RenderReceiptHTML(order *checkout.Confirmation) (string, error) {
	data := ReceiptData{
		Order: order,
		Company: CompanyInfo{
			Name:    s.config.App.CompanyName,
			Email:   s.config.App.CompanyEmail,
			Website: s.config.App.CompanyURL,
		},
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GenerateReceipt converts the receipt page to PDF. Requires the
// wkhtmltopdf binary on PATH.
func (s *Service) GenerateReceipt(order *checkout.Confirmation) (*bytes.Buffer, error) {
	htmlContent, err := s.RenderReceiptHTML(order)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.Order.OrderNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        .header { display: flex; justify-content: space-between; border-bottom: 2px solid #eee; padding-bottom: 20px; margin-bottom: 30px; }
        .title { font-size: 28px; font-weight: bold; color: #2563eb; }
        .items { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
        .items th, .items td { border: 1px solid #ddd; padding: 10px 8px; text-align: left; }
        .items th { background-color: #f8f9fa; }
        .num { text-align: right; }
        .totals { float: right; width: 300px; }
        .totals td { padding: 6px; }
        .total-row { font-size: 18px; font-weight: bold; border-top: 2px solid #333; }
        .footer { clear: both; margin-top: 50px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <div>
            <h1>{{.Company.Name}}</h1>
            <p>{{.Company.Email}}</p>
            <p>{{.Company.Website}}</p>
        </div>
        <div>
            <div class="title">RECEIPT</div>
            <p><strong>Order #:</strong> {{.Order.OrderNumber}}</p>
            <p><strong>Date:</strong> {{.Order.PlacedAt.Format "January 2, 2006"}}</p>
            <p><strong>Paid with card ending:</strong> {{.Order.CardLast4}}</p>
        </div>
    </div>

    <h3>Ship to</h3>
    <p>{{.Order.Name}}<br>{{.Order.ShippingAddress.Address}}<br>{{.Order.ShippingAddress.City}}, {{.Order.ShippingAddress.State}} {{.Order.ShippingAddress.ZipCode}}</p>

    <table class="items">
        <tr><th>Item</th><th>Category</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Total</th></tr>
        {{range .Order.Items}}
        <tr><td>{{.Name}}</td><td>{{.Category}}</td><td class="num">{{.Quantity}}</td><td class="num">{{price .Price}}</td><td class="num">{{money .LineTotal}}</td></tr>
        {{end}}
    </table>

    <table class="totals">
        <tr><td>Subtotal ({{.Order.Summary.TotalQuantity}} items)</td><td class="num">{{money .Order.Summary.SubTotal}}</td></tr>
        {{if .Order.Summary.Savings.IsPositive}}<tr><td>You saved</td><td class="num">{{money .Order.Summary.Savings}}</td></tr>{{end}}
        <tr><td>Shipping</td><td class="num">Free</td></tr>
        <tr><td>Tax ({{percent .Order.Summary.TaxRate}})</td><td class="num">{{money .Order.Summary.TaxAmount}}</td></tr>
        <tr class="total-row"><td>Total</td><td class="num">{{money .Order.Summary.TotalAmount}}</td></tr>
    </table>

    <div class="footer">
        <p>Thank you for shopping with {{.Company.Name}}. Free shipping and 30-day returns on every order.</p>
    </div>
</body>
</html>`
