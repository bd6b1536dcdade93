package repository

import (
	"context"

	"github.com/manu1624/saborovejero/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuRepository interface {
	Create(ctx context.Context, m *model.MenuItem) error
	// FindByID preloads the recipe — resolvers always need it.
	FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	Update(ctx context.Context, m *model.MenuItem) error
	// ReplaceRecipe swaps the full ingredient list for a menu item.
	ReplaceRecipe(ctx context.Context, menuItemID uuid.UUID, recipe []model.RecipeIngredient) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuRepo struct{ db *gorm.DB }

func NewMenuRepository(db *gorm.DB) MenuRepository { return &menuRepo{db: db} }

func (r *menuRepo) Create(ctx context.Context, m *model.MenuItem) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *menuRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	var m model.MenuItem
	err := r.db.WithContext(ctx).Preload("Recipe").First(&m, id).Error
	return &m, err
}

func (r *menuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).Preload("Recipe").Order("name ASC").Find(&items).Error
	return items, err
}

func (r *menuRepo) Update(ctx context.Context, m *model.MenuItem) error {
	return r.db.WithContext(ctx).Omit("Recipe").Save(m).Error
}

func (r *menuRepo) ReplaceRecipe(ctx context.Context, menuItemID uuid.UUID, recipe []model.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", menuItemID).
			Delete(&model.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(recipe) == 0 {
			return nil
		}
		for i := range recipe {
			recipe[i].MenuItemID = menuItemID
		}
		return tx.Create(&recipe).Error
	})
}

func (r *menuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Recipe").Delete(&model.MenuItem{ID: id}).Error
}
