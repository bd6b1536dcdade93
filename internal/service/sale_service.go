package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/infra"
	"github.com/manu1624/saborovejero/internal/model"
	"github.com/manu1624/saborovejero/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type SaleService interface {
	// RecordSale validates, numbers and commits a sale, depletes recipe
	// ingredients and posts the income movement to the open session.
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleService struct {
	repo     repository.SaleRepository
	menu     MenuService
	stock    StockService
	cash     CashService
	printer  infra.ReceiptPrinter
	business string
}

func NewSaleService(
	repo repository.SaleRepository,
	menu MenuService,
	stock StockService,
	cash CashService,
	printer infra.ReceiptPrinter,
	business string,
) SaleService {
	return &saleService{
		repo:     repo,
		menu:     menu,
		stock:    stock,
		cash:     cash,
		printer:  printer,
		business: business,
	}
}

// ── RecordSale ────────────────────────────────────────────────────────────────
// Flow:
//  1. guard: open session, non-empty items, feasible recipes, cash coverage
//  2. assign the date-scoped sale number (YYYYMMDD-NNN, derived counter)
//  3. deplete ingredients via the stock ledger — always completes; a clamped
//     line marks the sale with a stock warning instead of failing
//  4. persist the sale with price/name snapshots
//  5. post one income movement to the open session
//  6. hand the receipt to the printer (best-effort, never blocks)
//
// There is no transactional atomicity across 3–5: depletion and movement
// posting are separate mutations, accepted as-is because the stock ledger
// floors at zero instead of erroring.
func (s *saleService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptySale
	}

	current, err := s.cash.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNoOpenRegister
	}

	// Resolve menu items and snapshot price/name.
	type resolvedLine struct {
		menuItemID uuid.UUID
		name       string
		unitPrice  decimal.Decimal
		quantity   int
		total      decimal.Decimal
	}
	var lines []resolvedLine
	subtotal := decimal.Zero

	for _, item := range req.Items {
		mid, err := uuid.Parse(item.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("menu_item_id inválido: %w", err)
		}
		menuItem, err := s.menu.Get(ctx, mid)
		if err != nil {
			return nil, err
		}
		if !menuItem.IsAvailable {
			return nil, ErrMenuItemUnavailable
		}
		if !s.menu.CanFulfill(ctx, mid, item.Quantity) {
			return nil, ErrInsufficientStock
		}
		lineTotal := menuItem.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		lines = append(lines, resolvedLine{
			menuItemID: mid,
			name:       menuItem.Name,
			unitPrice:  menuItem.Price,
			quantity:   item.Quantity,
			total:      lineTotal,
		})
	}

	tax := decimal.Zero // sin impuestos por ahora
	total := subtotal.Add(tax)

	var change *decimal.Decimal
	if req.PaymentMethod == "efectivo" {
		if req.ReceivedAmount == nil || req.ReceivedAmount.LessThan(total) {
			return nil, ErrInsufficientCash
		}
		c := req.ReceivedAmount.Sub(total)
		change = &c
	}

	saleNumber, err := s.nextSaleNumber(ctx)
	if err != nil {
		return nil, err
	}

	saleID := uuid.New()

	// Deplete ingredients. Depletion always completes for every line even if
	// an individual product floors at zero — the warning is surfaced, not
	// turned into a failure.
	stockWarning := false
	for _, line := range lines {
		demands, err := s.menu.RequiredConsumption(ctx, line.menuItemID, line.quantity)
		if err != nil {
			return nil, err
		}
		for _, d := range demands {
			clamped, err := s.stock.Adjust(ctx, StockAdjustment{
				ProductID:     d.ProductID,
				Quantity:      d.Quantity,
				Direction:     StockSubtract,
				Type:          "venta",
				Reason:        "Venta #" + saleNumber,
				RelatedSaleID: &saleID,
			})
			if err != nil {
				return nil, fmt.Errorf("error descontando stock: %w", err)
			}
			if clamped {
				stockWarning = true
			}
		}
	}

	sale := &model.Sale{
		ID:            saleID,
		SaleNumber:    saleNumber,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
		Status:        "completed",
		StockWarning:  stockWarning,
	}
	for _, line := range lines {
		sale.Items = append(sale.Items, model.SaleItem{
			SaleID:       saleID,
			MenuItemID:   line.menuItemID,
			MenuItemName: line.name,
			Quantity:     line.quantity,
			UnitPrice:    line.unitPrice,
			Total:        line.total,
		})
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	if err := s.cash.PostSaleIncome(ctx, saleID, saleNumber, req.PaymentMethod, total); err != nil {
		return nil, err
	}

	// Receipt printing is best-effort: a dead printer never blocks the sale.
	receipt := infra.Receipt{
		Business:      s.business,
		SaleNumber:    saleNumber,
		Subtotal:      subtotal,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		Received:      req.ReceivedAmount,
		Change:        change,
	}
	for _, line := range lines {
		receipt.Lines = append(receipt.Lines, infra.ReceiptLine{
			Name:      line.name,
			Quantity:  line.quantity,
			UnitPrice: line.unitPrice,
			Total:     line.total,
		})
	}
	if s.printer != nil {
		if err := s.printer.Print(ctx, receipt); err != nil {
			log.Warn().Err(err).Str("sale_number", saleNumber).Msg("receipt printing failed")
		}
	}

	resp := saleToResponse(sale)
	resp.Change = change
	return resp, nil
}

// nextSaleNumber derives the daily-reset sequential number from the highest
// same-day number: 20260831-001, -002, … The counter is never persisted, so
// deleting a sale leaves a gap; numbers are never reissued within the day.
func (s *saleService) nextSaleNumber(ctx context.Context) (string, error) {
	prefix := time.Now().Format("20060102")
	last, err := s.repo.LastNumberByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	seq := 0
	if last != "" {
		if _, serr := fmt.Sscanf(last, prefix+"-%d", &seq); serr != nil {
			return "", fmt.Errorf("número de venta malformado %q: %w", last, serr)
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, seq+1), nil
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("venta no encontrada")
	}
	return saleToResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		data = append(data, *saleToResponse(&sales[i]))
	}
	return &dto.SaleListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *saleService) Cancel(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("venta no encontrada")
	}
	if sale.Status == "cancelled" {
		return errors.New("la venta ya está cancelada")
	}
	return s.repo.UpdateStatus(ctx, id, "cancelled")
}

func (s *saleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func saleToResponse(v *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, dto.SaleItemResponse{
			MenuItemID:   item.MenuItemID.String(),
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Total:        item.Total,
		})
	}
	return &dto.SaleResponse{
		ID:            v.ID.String(),
		SaleNumber:    v.SaleNumber,
		Items:         items,
		Subtotal:      v.Subtotal,
		Tax:           v.Tax,
		Total:         v.Total,
		PaymentMethod: v.PaymentMethod,
		CustomerName:  v.CustomerName,
		Status:        v.Status,
		StockWarning:  v.StockWarning,
		CreatedAt:     v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
