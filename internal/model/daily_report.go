package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gorm.io/datatypes"
)

// CategorySales aggregates quantity and revenue for one menu category.
type CategorySales struct {
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// TopProduct is one row of the top-N-by-quantity ranking.
type TopProduct struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// DailyReport is a derived, point-in-time snapshot of a closed session's day.
// Regenerating for the same date replaces the prior report.
// Status: "pending" | "sent" | "failed"
type DailyReport struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date           string          `gorm:"type:varchar(10);uniqueIndex;not null"`
	CashRegisterID uuid.UUID       `gorm:"type:uuid;not null"`
	OpeningAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ClosingAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalSales     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// TotalExpenses counts "expense" movements only — withdrawals and deposits
	// are capital movements, not operating costs. This is asymmetric with the
	// close-time expected-amount formula on purpose.
	TotalExpenses decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NetIncome     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	// Aggregations are stored as JSONB — reports are read-only snapshots,
	// never queried by their inner fields.
	SalesByCategory datatypes.JSONType[map[string]CategorySales]   `gorm:"type:jsonb"`
	TopProducts     datatypes.JSONType[[]TopProduct]               `gorm:"type:jsonb"`
	PaymentMethods  datatypes.JSONType[map[string]decimal.Decimal] `gorm:"type:jsonb"`
	Status          string                                         `gorm:"type:varchar(10);not null;default:'pending'"`
	EmailSentAt     *time.Time
	CreatedAt       time.Time
}
