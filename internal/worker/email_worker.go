package worker

// email_worker.go
// Processes report delivery jobs from QueueEmail. Renders the daily report
// as PDF and mails it to the configured address via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the job envelope sent to QueueEmail.
type EmailJobPayload struct {
	ReportID string `json:"report_id"`
	Email    string `json:"email"`
}

// ReportSender delivers a generated report by email. Delivery failure is
// recorded on the report itself, so the sender returns nil for SMTP errors.
type ReportSender interface {
	SendDailyReport(ctx context.Context, reportID uuid.UUID, email string) error
}

type EmailWorker struct {
	sender ReportSender
}

func NewEmailWorker(sender ReportSender) *EmailWorker {
	return &EmailWorker{sender: sender}
}

func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("email_worker: invalid payload: %w", err)
	}
	if payload.Email == "" {
		log.Warn().Msg("email_worker: empty email, skipping")
		return nil
	}
	reportID, err := uuid.Parse(payload.ReportID)
	if err != nil {
		return fmt.Errorf("email_worker: invalid report_id %q", payload.ReportID)
	}

	if err := w.sender.SendDailyReport(ctx, reportID, payload.Email); err != nil {
		return fmt.Errorf("email_worker: delivery failed for report %s: %w", payload.ReportID, err)
	}
	log.Info().Str("report_id", payload.ReportID).Str("to", payload.Email).Msg("email_worker: report delivered")
	return nil
}
