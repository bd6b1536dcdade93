package service

import (
	"context"
	"errors"

	"github.com/manu1624/saborovejero/internal/model"
	"github.com/manu1624/saborovejero/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock adjustment directions.
const (
	StockAdd      = "add"
	StockSubtract = "subtract"
)

// StockAdjustment describes one stock change request.
type StockAdjustment struct {
	ProductID     uuid.UUID
	Quantity      decimal.Decimal // always positive; Direction decides the sign
	Direction     string          // StockAdd | StockSubtract
	Type          string          // "venta" | "ajuste_manual" | "merma"
	Reason        string
	RelatedSaleID *uuid.UUID
}

// StockService is the stock ledger. Subtraction saturates at zero: requesting
// more than is available silently floors the stock and reports clamped=true
// instead of failing — callers that already checked feasibility upstream are
// never blocked by depletion.
type StockService interface {
	// Adjust applies the adjustment and records an audit movement.
	// clamped is true when a subtract floored at zero.
	Adjust(ctx context.Context, adj StockAdjustment) (clamped bool, err error)
	Movements(ctx context.Context, productID uuid.UUID, limit int) ([]model.StockMovement, error)
	RecentMovements(ctx context.Context, limit int) ([]model.StockMovement, error)
}

type stockService struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
}

func NewStockService(products repository.ProductRepository, movements repository.StockMovementRepository) StockService {
	return &stockService{products: products, movements: movements}
}

func (s *stockService) Adjust(ctx context.Context, adj StockAdjustment) (bool, error) {
	if adj.Quantity.IsNegative() {
		return false, errors.New("la cantidad debe ser positiva")
	}

	p, err := s.products.FindByID(ctx, adj.ProductID)
	if err != nil {
		return false, errors.New("producto no encontrado")
	}

	before := p.CurrentStock
	var after decimal.Decimal
	var signed decimal.Decimal
	clamped := false

	switch adj.Direction {
	case StockAdd:
		after = before.Add(adj.Quantity)
		signed = adj.Quantity
	case StockSubtract:
		after = before.Sub(adj.Quantity)
		if after.IsNegative() {
			// Saturating subtraction: stock never goes negative.
			after = decimal.Zero
			clamped = true
		}
		signed = after.Sub(before) // actual delta, not the requested one
	default:
		return false, errors.New("operación inválida: debe ser add o subtract")
	}

	if err := s.products.SetStock(ctx, adj.ProductID, after); err != nil {
		return false, err
	}

	mov := &model.StockMovement{
		ProductID:     adj.ProductID,
		Type:          adj.Type,
		Quantity:      signed,
		StockBefore:   before,
		StockAfter:    after,
		Clamped:       clamped,
		Reason:        adj.Reason,
		RelatedSaleID: adj.RelatedSaleID,
	}
	if err := s.movements.Create(ctx, mov); err != nil {
		return clamped, err
	}
	return clamped, nil
}

func (s *stockService) Movements(ctx context.Context, productID uuid.UUID, limit int) ([]model.StockMovement, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	return s.movements.ListByProduct(ctx, productID, limit)
}

func (s *stockService) RecentMovements(ctx context.Context, limit int) ([]model.StockMovement, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}
	return s.movements.ListRecent(ctx, limit)
}
