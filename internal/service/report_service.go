package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/infra"
	"github.com/manu1624/saborovejero/internal/model"
	"github.com/manu1624/saborovejero/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const topProductsLimit = 5

// ReportService builds and delivers daily reports. A report is a derived
// snapshot of a closed session's day: regenerating for the same date replaces
// the previous report, it never accumulates.
type ReportService interface {
	// Generate builds the report for a YYYY-MM-DD date. Returns (nil, nil)
	// when no closed session exists for that date.
	Generate(ctx context.Context, date string) (*dto.ReportResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error)
	GetByDate(ctx context.Context, date string) (*dto.ReportResponse, error)
	List(ctx context.Context, page, limit int) ([]dto.ReportResponse, int64, error)
	// Send renders the report as PDF and emails it. Delivery failure is
	// recorded as status "failed" on the report, not retried.
	Send(ctx context.Context, id uuid.UUID, email string) (*dto.SendReportResponse, error)

	// Worker entry points.
	GenerateDailyReport(ctx context.Context, date string) (uuid.UUID, error)
	SendDailyReport(ctx context.Context, reportID uuid.UUID, email string) error
}

type reportService struct {
	reports  repository.ReportRepository
	cash     repository.CashRepository
	sales    repository.SaleRepository
	menu     repository.MenuRepository
	mailer   infra.Mailer
	business string
	pdfPath  string
}

func NewReportService(
	reports repository.ReportRepository,
	cash repository.CashRepository,
	sales repository.SaleRepository,
	menu repository.MenuRepository,
	mailer infra.Mailer,
	business string,
	pdfPath string,
) ReportService {
	return &reportService{
		reports:  reports,
		cash:     cash,
		sales:    sales,
		menu:     menu,
		mailer:   mailer,
		business: business,
		pdfPath:  pdfPath,
	}
}

func (s *reportService) Generate(ctx context.Context, date string) (*dto.ReportResponse, error) {
	session, err := s.cash.FindClosedSessionByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if session == nil {
		// Nothing to report on: generation is a no-op without a closed session.
		return nil, nil
	}

	sales, err := s.sales.ListCompletedByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	movements, err := s.cash.ListMovements(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	totalSales := decimal.Zero
	salesByCategory := map[string]model.CategorySales{}
	paymentMethods := map[string]decimal.Decimal{}
	byProduct := map[uuid.UUID]*model.TopProduct{}
	categoryCache := map[uuid.UUID]string{}

	for i := range sales {
		sale := &sales[i]
		totalSales = totalSales.Add(sale.Total)
		paymentMethods[sale.PaymentMethod] = paymentMethods[sale.PaymentMethod].Add(sale.Total)

		for _, item := range sale.Items {
			category := s.categoryOf(ctx, categoryCache, item.MenuItemID)
			agg := salesByCategory[category]
			agg.Quantity += item.Quantity
			agg.Revenue = agg.Revenue.Add(item.Total)
			salesByCategory[category] = agg

			// Ranking is per menu item, not per name: the name is only the
			// display snapshot and may repeat across distinct items.
			top, ok := byProduct[item.MenuItemID]
			if !ok {
				top = &model.TopProduct{Name: item.MenuItemName}
				byProduct[item.MenuItemID] = top
			}
			top.Quantity += item.Quantity
			top.Revenue = top.Revenue.Add(item.Total)
		}
	}

	// Operating expenses only. Withdrawals move capital out of the drawer but
	// are not a cost of doing business, so net income ignores them.
	totalExpenses := decimal.Zero
	for _, m := range movements {
		if m.Type == MovementExpense {
			totalExpenses = totalExpenses.Add(m.Amount)
		}
	}
	netIncome := totalSales.Sub(totalExpenses)

	topProducts := make([]model.TopProduct, 0, len(byProduct))
	for _, tp := range byProduct {
		topProducts = append(topProducts, *tp)
	}
	sort.Slice(topProducts, func(i, j int) bool {
		if topProducts[i].Quantity != topProducts[j].Quantity {
			return topProducts[i].Quantity > topProducts[j].Quantity
		}
		return topProducts[i].Name < topProducts[j].Name
	})
	if len(topProducts) > topProductsLimit {
		topProducts = topProducts[:topProductsLimit]
	}

	closing := decimal.Zero
	if session.ClosingAmount != nil {
		closing = *session.ClosingAmount
	}

	report := &model.DailyReport{
		ID:              uuid.New(),
		Date:            date,
		CashRegisterID:  session.ID,
		OpeningAmount:   session.OpeningAmount,
		ClosingAmount:   closing,
		TotalSales:      totalSales,
		TotalExpenses:   totalExpenses,
		NetIncome:       netIncome,
		SalesByCategory: datatypes.NewJSONType(salesByCategory),
		TopProducts:     datatypes.NewJSONType(topProducts),
		PaymentMethods:  datatypes.NewJSONType(paymentMethods),
		Status:          "pending",
	}
	if err := s.reports.Upsert(ctx, report); err != nil {
		return nil, err
	}
	return reportToResponse(report), nil
}

// categoryOf resolves a menu item's category, falling back to "Sin categoría"
// when the item was deleted after the sale.
func (s *reportService) categoryOf(ctx context.Context, cache map[uuid.UUID]string, menuItemID uuid.UUID) string {
	if c, ok := cache[menuItemID]; ok {
		return c
	}
	category := "Sin categoría"
	if item, err := s.menu.FindByID(ctx, menuItemID); err == nil && item.Category != "" {
		category = item.Category
	}
	cache[menuItemID] = category
	return category
}

func (s *reportService) Get(ctx context.Context, id uuid.UUID) (*dto.ReportResponse, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("reporte no encontrado")
	}
	return reportToResponse(report), nil
}

func (s *reportService) GetByDate(ctx context.Context, date string) (*dto.ReportResponse, error) {
	report, err := s.reports.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, nil
	}
	return reportToResponse(report), nil
}

func (s *reportService) List(ctx context.Context, page, limit int) ([]dto.ReportResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	reports, total, err := s.reports.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, *reportToResponse(&reports[i]))
	}
	return out, total, nil
}

func (s *reportService) Send(ctx context.Context, id uuid.UUID, email string) (*dto.SendReportResponse, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("reporte no encontrado")
	}

	pdf, err := infra.BuildReportPDF(report, s.business)
	if err != nil {
		return nil, err
	}

	// Keep a copy on disk for later download. Best effort.
	if s.pdfPath != "" {
		if err := os.MkdirAll(s.pdfPath, 0755); err == nil {
			name := fmt.Sprintf("reporte_%s.pdf", report.Date)
			if werr := os.WriteFile(filepath.Join(s.pdfPath, name), pdf, 0644); werr != nil {
				log.Warn().Err(werr).Str("date", report.Date).Msg("could not store report PDF copy")
			}
		}
	}

	if err := s.mailer.SendReport(ctx, email, report.Date, pdf); err != nil {
		log.Error().Err(err).Str("report_id", id.String()).Str("email", email).
			Msg("daily report email delivery failed")
		if uerr := s.reports.UpdateStatus(ctx, id, "failed", nil); uerr != nil {
			return nil, uerr
		}
		return &dto.SendReportResponse{ReportID: id.String(), Status: "failed"}, nil
	}

	now := time.Now()
	if err := s.reports.UpdateStatus(ctx, id, "sent", &now); err != nil {
		return nil, err
	}
	return &dto.SendReportResponse{ReportID: id.String(), Status: "sent"}, nil
}

func (s *reportService) GenerateDailyReport(ctx context.Context, date string) (uuid.UUID, error) {
	resp, err := s.Generate(ctx, date)
	if err != nil || resp == nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(resp.ID)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (s *reportService) SendDailyReport(ctx context.Context, reportID uuid.UUID, email string) error {
	_, err := s.Send(ctx, reportID, email)
	return err
}

func reportToResponse(r *model.DailyReport) *dto.ReportResponse {
	resp := &dto.ReportResponse{
		ID:              r.ID.String(),
		Date:            r.Date,
		CashRegisterID:  r.CashRegisterID.String(),
		OpeningAmount:   r.OpeningAmount,
		ClosingAmount:   r.ClosingAmount,
		TotalSales:      r.TotalSales,
		TotalExpenses:   r.TotalExpenses,
		NetIncome:       r.NetIncome,
		SalesByCategory: r.SalesByCategory.Data(),
		TopProducts:     r.TopProducts.Data(),
		PaymentMethods:  r.PaymentMethods.Data(),
		Status:          r.Status,
	}
	if r.EmailSentAt != nil {
		t := r.EmailSentAt.UTC().Format(time.RFC3339)
		resp.EmailSentAt = &t
	}
	return resp
}
