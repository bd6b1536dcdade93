package worker

// report_worker.go
// Processes daily report jobs from QueueReports. Enqueued on register close,
// so the close endpoint returns immediately and the report materializes
// shortly after. If a delivery address is configured, a follow-up email job
// is enqueued once the report exists.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ReportJobPayload is the job envelope sent to QueueReports.
type ReportJobPayload struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// ReportGenerator builds the daily report for a business date.
// Returns uuid.Nil when no closed session exists for the date.
type ReportGenerator interface {
	GenerateDailyReport(ctx context.Context, date string) (uuid.UUID, error)
}

type ReportWorker struct {
	generator   ReportGenerator
	dispatcher  *Dispatcher
	reportEmail string
}

// NewReportWorker wires the report generation worker. reportEmail may be
// empty, in which case generated reports stay pending until sent manually.
func NewReportWorker(generator ReportGenerator, dispatcher *Dispatcher, reportEmail string) *ReportWorker {
	return &ReportWorker{generator: generator, dispatcher: dispatcher, reportEmail: reportEmail}
}

func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ReportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("report_worker: invalid payload: %w", err)
	}
	if payload.Date == "" {
		return fmt.Errorf("report_worker: empty date")
	}

	reportID, err := w.generator.GenerateDailyReport(ctx, payload.Date)
	if err != nil {
		return fmt.Errorf("report_worker: generation failed for %s: %w", payload.Date, err)
	}
	if reportID == uuid.Nil {
		log.Warn().Str("date", payload.Date).Msg("report_worker: no closed session for date, nothing to report")
		return nil
	}
	log.Info().Str("date", payload.Date).Str("report_id", reportID.String()).Msg("report_worker: daily report generated")

	if w.reportEmail != "" {
		emailJob := EmailJobPayload{ReportID: reportID.String(), Email: w.reportEmail}
		if err := w.dispatcher.EnqueueReportEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("report_id", reportID.String()).Msg("report_worker: failed to enqueue email job")
		}
	}
	return nil
}
