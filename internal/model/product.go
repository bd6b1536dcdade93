package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a raw material / ingredient consumed by menu item recipes.
// CurrentStock is never negative: depletion clamps at zero.
type Product struct {
	ID       uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code     string           `gorm:"uniqueIndex;not null"` // category-prefixed, sequential: PIZ-001
	Name     string           `gorm:"index;not null"`
	Category string           `gorm:"not null"`
	Price    decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Cost     *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Unit     string           `gorm:"not null;default:'unidad'"`
	// Stock quantities are decimal: recipes consume fractional units (0.15 kg).
	CurrentStock   decimal.Decimal  `gorm:"type:decimal(12,3);not null;default:0"`
	MinStock       decimal.Decimal  `gorm:"type:decimal(12,3);not null;default:0"`
	MaxStock       *decimal.Decimal `gorm:"type:decimal(12,3)"`
	Location       *string
	Supplier       *string
	ExpirationDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
