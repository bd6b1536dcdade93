package repository

import (
	"context"

	"github.com/manu1624/saborovejero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UtensilRepository interface {
	Create(ctx context.Context, u *model.Utensil) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Utensil, error)
	List(ctx context.Context) ([]model.Utensil, error)
	Update(ctx context.Context, u *model.Utensil) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByCategory(ctx context.Context, category string) (int64, error)
}

type utensilRepo struct{ db *gorm.DB }

func NewUtensilRepository(db *gorm.DB) UtensilRepository { return &utensilRepo{db: db} }

func (r *utensilRepo) Create(ctx context.Context, u *model.Utensil) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *utensilRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Utensil, error) {
	var u model.Utensil
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *utensilRepo) List(ctx context.Context) ([]model.Utensil, error) {
	var utensils []model.Utensil
	err := r.db.WithContext(ctx).Order("code ASC").Find(&utensils).Error
	return utensils, err
}

func (r *utensilRepo) Update(ctx context.Context, u *model.Utensil) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *utensilRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Utensil{}, id).Error
}

func (r *utensilRepo) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Utensil{}).
		Where("category = ?", category).Count(&count).Error
	return count, err
}
