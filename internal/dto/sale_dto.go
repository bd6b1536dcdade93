package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
	Quantity   int    `json:"quantity"     validate:"required,gt=0"`
}

type RecordSaleRequest struct {
	Items         []SaleItemRequest `json:"items"          validate:"required,min=1,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=efectivo tarjeta transferencia"`
	// ReceivedAmount is required for cash: must cover the total.
	ReceivedAmount *decimal.Decimal `json:"received_amount"`
	CustomerName   *string          `json:"customer_name"`
	CustomerPhone  *string          `json:"customer_phone"`
	Notes          *string          `json:"notes"`
}

type SaleFilter struct {
	Date   string
	Status string
	Page   int
	Limit  int
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	MenuItemID   string          `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Total        decimal.Decimal `json:"total"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	SaleNumber    string             `json:"sale_number"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Change        *decimal.Decimal   `json:"change,omitempty"`
	CustomerName  *string            `json:"customer_name,omitempty"`
	Status        string             `json:"status"`
	// StockWarning is set when ingredient depletion clamped at zero on any line.
	StockWarning bool   `json:"stock_warning"`
	CreatedAt    string `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
