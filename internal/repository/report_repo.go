package repository

import (
	"context"
	"errors"
	"time"

	"github.com/manu1624/saborovejero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportRepository interface {
	// Upsert replaces any existing report for the same date — regeneration is
	// idempotent, the collection holds at most one report per date.
	Upsert(ctx context.Context, r *model.DailyReport) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DailyReport, error)
	FindByDate(ctx context.Context, date string) (*model.DailyReport, error)
	List(ctx context.Context, page, limit int) ([]model.DailyReport, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, sentAt *time.Time) error
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) Upsert(ctx context.Context, report *model.DailyReport) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date = ?", report.Date).
			Delete(&model.DailyReport{}).Error; err != nil {
			return err
		}
		return tx.Create(report).Error
	})
}

func (r *reportRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DailyReport, error) {
	var report model.DailyReport
	err := r.db.WithContext(ctx).First(&report, id).Error
	return &report, err
}

func (r *reportRepo) FindByDate(ctx context.Context, date string) (*model.DailyReport, error) {
	var report model.DailyReport
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) List(ctx context.Context, page, limit int) ([]model.DailyReport, int64, error) {
	var reports []model.DailyReport
	var total int64

	q := r.db.WithContext(ctx).Model(&model.DailyReport{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := q.Order("date DESC").Offset(offset).Limit(limit).Find(&reports).Error
	return reports, total, err
}

func (r *reportRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, sentAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if sentAt != nil {
		updates["email_sent_at"] = *sentAt
	}
	return r.db.WithContext(ctx).Model(&model.DailyReport{}).
		Where("id = ?", id).Updates(updates).Error
}
