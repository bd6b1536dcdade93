package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is a completed transaction. Line items snapshot menu item name and
// price at sale time and are never retroactively updated.
// Estado: "pending" | "completed" | "cancelled"
type Sale struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	// SaleNumber is date-prefixed with a daily-reset counter: 20260831-001.
	// The counter is derived from the same-day sale count, not persisted, so
	// gaps appear if sales are deleted.
	SaleNumber    string          `gorm:"uniqueIndex;not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tax           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(30);not null"`
	CustomerName  *string
	CustomerPhone *string
	Notes         *string
	Status        string `gorm:"type:varchar(20);not null;default:'completed'"`
	// StockWarning flags that at least one ingredient depletion clamped at zero.
	StockWarning bool `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// SaleItem is one line of a sale. MenuItemName and UnitPrice are snapshots.
type SaleItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	MenuItemID   uuid.UUID       `gorm:"type:uuid;not null"`
	MenuItemName string          `gorm:"not null"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Total        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
