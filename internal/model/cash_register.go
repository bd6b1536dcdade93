package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashRegister represents one open/close cycle of the register — the unit of
// reconciliation. At most one register is open store-wide at any time.
// Status: "open" | "closed". A closed session is terminal: never reopened.
type CashRegister struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Date          string           `gorm:"type:varchar(10);index;not null"` // YYYY-MM-DD business date
	OpeningAmount decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	OpeningTime   time.Time        `gorm:"not null"`
	OpenedBy      string           `gorm:"not null"`
	ClosingAmount *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ClosingTime   *time.Time
	ClosedBy      *string
	// ExpectedAmount is ledger-derived at close: income+deposit − expense−withdrawal.
	ExpectedAmount *decimal.Decimal `gorm:"type:decimal(12,2)"`
	// Difference = counted closing amount − expected. Positive = surplus.
	Difference *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status     string           `gorm:"type:varchar(10);not null;default:'open'"`
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Movements []CashMovement `gorm:"foreignKey:CashRegisterID"`
}

// CashMovement is an immutable ledger entry tied to exactly one session.
// Type: "income" | "expense" | "withdrawal" | "deposit". Amount is always
// positive — the effect on the balance comes from the type, never the sign.
// Movements are NEVER modified or deleted.
type CashMovement struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CashRegisterID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Type           string          `gorm:"type:varchar(20);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description    string          `gorm:"not null"`
	Category       string          `gorm:"not null"`
	// RelatedSaleID links back to the originating sale for income movements.
	RelatedSaleID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
}
