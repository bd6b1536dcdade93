package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Utensil is non-consumable equipment tracked by quantity and condition.
// Condition: "excelente" | "bueno" | "regular" | "malo" | "dañado"
type Utensil struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code            string          `gorm:"uniqueIndex;not null"` // COC-001, SER-001, …
	Name            string          `gorm:"not null"`
	Category        string          `gorm:"not null"`
	PurchasePrice   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CurrentQuantity int             `gorm:"not null;default:0"`
	MinQuantity     int             `gorm:"not null;default:0"`
	Condition       string          `gorm:"type:varchar(20);not null;default:'bueno'"`
	Location        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
