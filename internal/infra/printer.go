package infra

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ReceiptLine is one printable line item.
type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Receipt is the fully-formed payload handed to the printer. The core does
// not depend on the hardware protocol — the sink is opaque.
type Receipt struct {
	Business      string
	SaleNumber    string
	Lines         []ReceiptLine
	Subtotal      decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Received      *decimal.Decimal
	Change        *decimal.Decimal
}

// ReceiptPrinter is the hardware sink. Printing failures must never block
// sale recording — callers log and move on.
type ReceiptPrinter interface {
	Print(ctx context.Context, r Receipt) error
}

// LogPrinter is the default sink: it logs the receipt instead of driving
// real hardware. Swap in a real driver behind the same interface.
type LogPrinter struct{}

func NewLogPrinter() *LogPrinter { return &LogPrinter{} }

func (p *LogPrinter) Print(_ context.Context, r Receipt) error {
	log.Info().
		Str("sale_number", r.SaleNumber).
		Str("payment_method", r.PaymentMethod).
		Str("total", r.Total.StringFixed(2)).
		Int("lines", len(r.Lines)).
		Msg("receipt sent to printer")
	return nil
}
