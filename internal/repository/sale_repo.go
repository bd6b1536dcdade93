package repository

import (
	"context"
	"errors"

	"github.com/manu1624/saborovejero/internal/dto"
	"github.com/manu1624/saborovejero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error)
	// LastNumberByPrefix returns the highest sale_number starting with the
	// given date prefix, or "" when the day has no sales yet. The daily-reset
	// counter is derived from it, never persisted.
	LastNumberByPrefix(ctx context.Context, prefix string) (string, error)
	// ListCompletedByDate returns completed sales created on a YYYY-MM-DD date,
	// with items, for report aggregation.
	ListCompletedByDate(ctx context.Context, date string) ([]model.Sale, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&s, id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var sales []model.Sale
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if filter.Status != "" && filter.Status != "all" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Date != "" {
		q = q.Where("DATE(created_at) = ?", filter.Date)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepo) LastNumberByPrefix(ctx context.Context, prefix string) (string, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Where("sale_number LIKE ?", prefix+"%").
		Order("sale_number DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return s.SaleNumber, err
}

func (r *saleRepo) ListCompletedByDate(ctx context.Context, date string) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Preload("Items").
		Where("status = 'completed' AND DATE(created_at) = ?", date).
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Sale{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *saleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Items").Delete(&model.Sale{ID: id}).Error
}
