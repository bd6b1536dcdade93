package dto

import (
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name         string           `json:"name"     validate:"required,min=2"`
	Category     string           `json:"category" validate:"required"`
	Price        decimal.Decimal  `json:"price"    validate:"min=0"`
	Cost         *decimal.Decimal `json:"cost"`
	Unit         string           `json:"unit"     validate:"required"`
	CurrentStock decimal.Decimal  `json:"current_stock" validate:"min=0"`
	MinStock     decimal.Decimal  `json:"min_stock"     validate:"min=0"`
	MaxStock     *decimal.Decimal `json:"max_stock"`
	Location     *string          `json:"location"`
	Supplier     *string          `json:"supplier"`
}

type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Cost     *decimal.Decimal `json:"cost"`
	Unit     *string          `json:"unit"`
	MinStock *decimal.Decimal `json:"min_stock"`
	MaxStock *decimal.Decimal `json:"max_stock"`
	Location *string          `json:"location"`
	Supplier *string          `json:"supplier"`
}

// StockAdjustRequest is a manual stock movement (entrada/salida).
type StockAdjustRequest struct {
	Quantity  decimal.Decimal `json:"quantity"  validate:"required"`
	Operation string          `json:"operation" validate:"required,oneof=add subtract"`
	Reason    string          `json:"reason"    validate:"required,min=3"`
}

type ProductFilter struct {
	Category string
	Name     string
	Page     int
	Limit    int
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID           string           `json:"id"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Price        decimal.Decimal  `json:"price"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	Unit         string           `json:"unit"`
	CurrentStock decimal.Decimal  `json:"current_stock"`
	MinStock     decimal.Decimal  `json:"min_stock"`
	MaxStock     *decimal.Decimal `json:"max_stock,omitempty"`
	Location     *string          `json:"location,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
	UpdatedAt    string           `json:"updated_at"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// StockAlertResponse flags a product at or below its minimum threshold.
type StockAlertResponse struct {
	ProductID    string          `json:"product_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinStock     decimal.Decimal `json:"min_stock"`
	Unit         string          `json:"unit"`
}

type StockMovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name,omitempty"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	StockBefore decimal.Decimal `json:"stock_before"`
	StockAfter  decimal.Decimal `json:"stock_after"`
	Clamped     bool            `json:"clamped"`
	Reason      string          `json:"reason,omitempty"`
	CreatedAt   string          `json:"created_at"`
}
