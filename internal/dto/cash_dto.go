package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OpenRegisterRequest struct {
	OpeningAmount decimal.Decimal `json:"opening_amount" validate:"min=0"`
	Notes         *string         `json:"notes"`
}

type CloseRegisterRequest struct {
	ClosingAmount decimal.Decimal `json:"closing_amount" validate:"min=0"`
	Notes         *string         `json:"notes"`
}

type ManualMovementRequest struct {
	Type        string          `json:"type"        validate:"required,oneof=income expense withdrawal deposit"`
	Amount      decimal.Decimal `json:"amount"      validate:"required,gt=0"`
	Description string          `json:"description" validate:"required,min=3"`
	Category    string          `json:"category"    validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RegisterResponse struct {
	ID             string           `json:"id"`
	Date           string           `json:"date"`
	OpeningAmount  decimal.Decimal  `json:"opening_amount"`
	OpeningTime    string           `json:"opening_time"`
	OpenedBy       string           `json:"opened_by"`
	ClosingAmount  *decimal.Decimal `json:"closing_amount,omitempty"`
	ClosingTime    *string          `json:"closing_time,omitempty"`
	ClosedBy       *string          `json:"closed_by,omitempty"`
	ExpectedAmount *decimal.Decimal `json:"expected_amount,omitempty"`
	Difference     *decimal.Decimal `json:"difference,omitempty"`
	Status         string           `json:"status"`
	Notes          *string          `json:"notes,omitempty"`
}

type MovementResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	RelatedSaleID *string         `json:"related_sale_id,omitempty"`
	CreatedAt     string          `json:"created_at"`
}

// BalanceResponse is the live ledger-derived balance of the open session.
type BalanceResponse struct {
	RegisterID string          `json:"register_id"`
	Balance    decimal.Decimal `json:"balance"`
}

type RegisterListResponse struct {
	Data  []RegisterResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
