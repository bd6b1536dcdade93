package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a sellable product with a recipe (bill of materials).
// Recipe quantities are per single unit sold: a sale of N units consumes
// ingredient.Quantity × N of each referenced product.
type MenuItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string          `gorm:"index;not null"`
	Category    string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string
	IsAvailable bool `gorm:"not null;default:true"`
	// PreparationTime in minutes
	PreparationTime int `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Recipe []RecipeIngredient `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
}

// RecipeIngredient links a menu item to one raw material it consumes.
type RecipeIngredient struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity   decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Unit       string          `gorm:"not null"`
}

// TableName overrides GORM's pluralization (recipe_ingredients is fine,
// but menu_items needs the underscore kept).
func (MenuItem) TableName() string { return "menu_items" }
