package repository

import (
	"context"
	"errors"

	"github.com/manu1624/saborovejero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CashRepository is the ledger store: the mutable collection of register
// sessions plus the append-only collection of cash movements. Movements have
// no Update/Delete — they are immutable once written.
type CashRepository interface {
	CreateSession(ctx context.Context, s *model.CashRegister) error
	// FindOpenSession returns the single store-wide open session, or nil when
	// the register is closed.
	FindOpenSession(ctx context.Context) (*model.CashRegister, error)
	FindSessionByID(ctx context.Context, id uuid.UUID) (*model.CashRegister, error)
	// FindClosedSessionByDate backs report generation: one closed session per
	// business date.
	FindClosedSessionByDate(ctx context.Context, date string) (*model.CashRegister, error)
	UpdateSession(ctx context.Context, s *model.CashRegister) error
	ListSessions(ctx context.Context, page, limit int) ([]model.CashRegister, int64, error)
	CreateMovement(ctx context.Context, m *model.CashMovement) error
	ListMovements(ctx context.Context, registerID uuid.UUID) ([]model.CashMovement, error)
}

type cashRepo struct{ db *gorm.DB }

func NewCashRepository(db *gorm.DB) CashRepository { return &cashRepo{db: db} }

func (r *cashRepo) CreateSession(ctx context.Context, s *model.CashRegister) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *cashRepo) FindOpenSession(ctx context.Context) (*model.CashRegister, error) {
	var s model.CashRegister
	err := r.db.WithContext(ctx).Where("status = 'open'").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *cashRepo) FindSessionByID(ctx context.Context, id uuid.UUID) (*model.CashRegister, error) {
	var s model.CashRegister
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *cashRepo) FindClosedSessionByDate(ctx context.Context, date string) (*model.CashRegister, error) {
	var s model.CashRegister
	err := r.db.WithContext(ctx).
		Where("date = ? AND status = 'closed'", date).
		Order("closing_time DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *cashRepo) UpdateSession(ctx context.Context, s *model.CashRegister) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *cashRepo) ListSessions(ctx context.Context, page, limit int) ([]model.CashRegister, int64, error) {
	var sessions []model.CashRegister
	var total int64

	q := r.db.WithContext(ctx).Model(&model.CashRegister{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := q.Order("opening_time DESC").Offset(offset).Limit(limit).Find(&sessions).Error
	return sessions, total, err
}

func (r *cashRepo) CreateMovement(ctx context.Context, m *model.CashMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *cashRepo) ListMovements(ctx context.Context, registerID uuid.UUID) ([]model.CashMovement, error) {
	var movs []model.CashMovement
	err := r.db.WithContext(ctx).
		Where("cash_register_id = ?", registerID).
		Order("created_at ASC").
		Find(&movs).Error
	return movs, err
}
