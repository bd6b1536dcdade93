package dto

import "github.com/shopspring/decimal"

type CreateUtensilRequest struct {
	Name            string          `json:"name"             validate:"required,min=2"`
	Category        string          `json:"category"         validate:"required"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"   validate:"min=0"`
	CurrentQuantity int             `json:"current_quantity" validate:"min=0"`
	MinQuantity     int             `json:"min_quantity"     validate:"min=0"`
	Condition       string          `json:"condition"        validate:"required,oneof=excelente bueno regular malo dañado"`
	Location        string          `json:"location"`
}

type UpdateUtensilRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	MinQuantity   *int             `json:"min_quantity"`
	Condition     *string          `json:"condition" validate:"omitempty,oneof=excelente bueno regular malo dañado"`
	Location      *string          `json:"location"`
}

// UtensilAdjustRequest mirrors StockAdjustRequest for equipment counts.
type UtensilAdjustRequest struct {
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
	Operation string `json:"operation" validate:"required,oneof=add subtract"`
}

type UtensilResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	CurrentQuantity int             `json:"current_quantity"`
	MinQuantity     int             `json:"min_quantity"`
	Condition       string          `json:"condition"`
	Location        string          `json:"location"`
	UpdatedAt       string          `json:"updated_at"`
}
