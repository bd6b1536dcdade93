package repository

import (
	"context"

	"github.com/manu1624/saborovejero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StockMovementRepository is the append-only audit trail for stock changes.
type StockMovementRepository interface {
	Create(ctx context.Context, m *model.StockMovement) error
	ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]model.StockMovement, error)
	ListRecent(ctx context.Context, limit int) ([]model.StockMovement, error)
}

type stockMovementRepo struct{ db *gorm.DB }

func NewStockMovementRepository(db *gorm.DB) StockMovementRepository {
	return &stockMovementRepo{db: db}
}

func (r *stockMovementRepo) Create(ctx context.Context, m *model.StockMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *stockMovementRepo) ListByProduct(ctx context.Context, productID uuid.UUID, limit int) ([]model.StockMovement, error) {
	var movs []model.StockMovement
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").Limit(limit).
		Find(&movs).Error
	return movs, err
}

func (r *stockMovementRepo) ListRecent(ctx context.Context, limit int) ([]model.StockMovement, error) {
	var movs []model.StockMovement
	err := r.db.WithContext(ctx).Preload("Product").
		Order("created_at DESC").Limit(limit).
		Find(&movs).Error
	return movs, err
}
