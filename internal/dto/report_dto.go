package dto

import (
	"github.com/manu1624/saborovejero/internal/model"

	"github.com/shopspring/decimal"
)

type SendReportRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ReportResponse struct {
	ID              string                         `json:"id"`
	Date            string                         `json:"date"`
	CashRegisterID  string                         `json:"cash_register_id"`
	OpeningAmount   decimal.Decimal                `json:"opening_amount"`
	ClosingAmount   decimal.Decimal                `json:"closing_amount"`
	TotalSales      decimal.Decimal                `json:"total_sales"`
	TotalExpenses   decimal.Decimal                `json:"total_expenses"`
	NetIncome       decimal.Decimal                `json:"net_income"`
	SalesByCategory map[string]model.CategorySales `json:"sales_by_category"`
	TopProducts     []model.TopProduct             `json:"top_products"`
	PaymentMethods  map[string]decimal.Decimal     `json:"payment_methods"`
	Status          string                         `json:"status"`
	EmailSentAt     *string                        `json:"email_sent_at,omitempty"`
}

type SendReportResponse struct {
	ReportID string `json:"report_id"`
	Status   string `json:"status"` // sent | failed
}
