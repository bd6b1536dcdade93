package infra

// pdf.go — Daily report PDF generation using go-pdf/fpdf.
// Renders an A4 summary with:
//   - Business name header and report date
//   - Cash totals (opening, closing, sales, expenses, net income)
//   - Sales-by-category table
//   - Top products ranking
//   - Payment method breakdown

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/manu1624/saborovejero/internal/model"

	"github.com/go-pdf/fpdf"
)

// BuildReportPDF renders a daily report to PDF bytes.
func BuildReportPDF(report *model.DailyReport, business string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, business, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW, 6, "Reporte diario de ventas", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, report.Date, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Cash totals ───────────────────────────────────────────────────────────
	labelW := contentW * 0.6
	valueW := contentW * 0.4

	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(labelW, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}

	row("Monto de apertura", "$"+report.OpeningAmount.StringFixed(2), false)
	row("Monto de cierre", "$"+report.ClosingAmount.StringFixed(2), false)
	row("Total ventas", "$"+report.TotalSales.StringFixed(2), false)
	row("Total gastos", "$"+report.TotalExpenses.StringFixed(2), false)
	row("Ingreso neto", "$"+report.NetIncome.StringFixed(2), true)
	pdf.Ln(4)

	// ── Sales by category ─────────────────────────────────────────────────────
	salesByCategory := report.SalesByCategory.Data()
	if len(salesByCategory) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Ventas por categoría", "", 1, "L", false, 0, "")

		col1 := contentW * 0.5
		col2 := contentW * 0.2
		col3 := contentW * 0.3

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, 6, "Categoría", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "Cantidad", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "Ingresos", "B", 1, "R", false, 0, "")

		categories := make([]string, 0, len(salesByCategory))
		for c := range salesByCategory {
			categories = append(categories, c)
		}
		sort.Strings(categories)

		pdf.SetFont("Helvetica", "", 9)
		for _, c := range categories {
			agg := salesByCategory[c]
			pdf.CellFormat(col1, 6, c, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 6, fmt.Sprintf("%d", agg.Quantity), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 6, "$"+agg.Revenue.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	// ── Top products ──────────────────────────────────────────────────────────
	topProducts := report.TopProducts.Data()
	if len(topProducts) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Productos más vendidos", "", 1, "L", false, 0, "")

		col1 := contentW * 0.5
		col2 := contentW * 0.2
		col3 := contentW * 0.3

		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(col1, 6, "Producto", "B", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, "Cantidad", "B", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "Ingresos", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, tp := range topProducts {
			name := tp.Name
			if len(name) > 40 {
				name = name[:39] + "…"
			}
			pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", tp.Quantity), "", 0, "C", false, 0, "")
			pdf.CellFormat(col3, 6, "$"+tp.Revenue.StringFixed(2), "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	// ── Payment methods ───────────────────────────────────────────────────────
	paymentMethods := report.PaymentMethods.Data()
	if len(paymentMethods) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Métodos de pago", "", 1, "L", false, 0, "")

		methods := make([]string, 0, len(paymentMethods))
		for m := range paymentMethods {
			methods = append(methods, m)
		}
		sort.Strings(methods)

		pdf.SetFont("Helvetica", "", 9)
		for _, m := range methods {
			pdf.CellFormat(labelW, 6, m, "", 0, "L", false, 0, "")
			pdf.CellFormat(valueW, 6, "$"+paymentMethods[m].StringFixed(2), "", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
