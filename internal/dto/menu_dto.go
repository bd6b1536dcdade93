package dto

import "github.com/shopspring/decimal"

type RecipeIngredientRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity"   validate:"required"`
	Unit      string          `json:"unit"       validate:"required"`
}

type CreateMenuItemRequest struct {
	Name            string                    `json:"name"             validate:"required,min=2"`
	Category        string                    `json:"category"         validate:"required"`
	Price           decimal.Decimal           `json:"price"            validate:"min=0"`
	Description     string                    `json:"description"`
	IsAvailable     bool                      `json:"is_available"`
	PreparationTime int                       `json:"preparation_time" validate:"min=0"`
	Recipe          []RecipeIngredientRequest `json:"recipe"           validate:"dive"`
}

type UpdateMenuItemRequest struct {
	Name            *string                    `json:"name"`
	Category        *string                    `json:"category"`
	Price           *decimal.Decimal           `json:"price"`
	Description     *string                    `json:"description"`
	IsAvailable     *bool                      `json:"is_available"`
	PreparationTime *int                       `json:"preparation_time"`
	Recipe          *[]RecipeIngredientRequest `json:"recipe" validate:"omitempty,dive"`
}

type RecipeIngredientResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
}

type MenuItemResponse struct {
	ID              string                     `json:"id"`
	Name            string                     `json:"name"`
	Category        string                     `json:"category"`
	Price           decimal.Decimal            `json:"price"`
	Description     string                     `json:"description,omitempty"`
	IsAvailable     bool                       `json:"is_available"`
	PreparationTime int                        `json:"preparation_time"`
	Recipe          []RecipeIngredientResponse `json:"recipe"`
}

// FeasibilityResponse answers "can the kitchen make N of this item right now".
type FeasibilityResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	CanFulfill bool   `json:"can_fulfill"`
}
