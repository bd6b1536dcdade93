package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockMovement records every stock change on a product, whether manual or
// sale-driven. Quantity is signed: positive = entrada, negative = salida.
// Type: "venta" | "ajuste_manual" | "merma"
type StockMovement struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type        string          `gorm:"not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	StockBefore decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	StockAfter  decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	// Clamped marks a salida that requested more than was available and
	// floored the stock at zero.
	Clamped bool `gorm:"not null;default:false"`
	Reason  string
	// RelatedSaleID is set for sale-driven depletion.
	RelatedSaleID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// TableName keeps the table name singular-noun plural.
func (StockMovement) TableName() string { return "stock_movements" }
